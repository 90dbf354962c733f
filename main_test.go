package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	config, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	want := defaultConfig()
	if config != want {
		t.Errorf("config = %+v, want the defaults %+v", config, want)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	config, err := parseFlags([]string{"-scene", "cornell", "-sample-count", "32", "-down-scale", "4"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if config.Scene != "cornell" || config.SampleCount != 32 || config.DownScale != 4 {
		t.Errorf("flag values not applied: %+v", config)
	}
	if config.MaxDepth != 50 {
		t.Errorf("untouched flags must keep defaults, got max depth %d", config.MaxDepth)
	}
}

func TestParseFlagsConfigFile(t *testing.T) {
	path := writeConfigFile(t, "scene: smoke\nmax-depth: 12\nsample-count: 64\n")

	config, err := parseFlags([]string{"-config", path})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if config.Scene != "smoke" || config.MaxDepth != 12 || config.SampleCount != 64 {
		t.Errorf("file values not applied: %+v", config)
	}
	if config.DownScale != 10 {
		t.Errorf("unset file fields must keep defaults, got down-scale %d", config.DownScale)
	}
}

// Explicit flags win over the config file
func TestParseFlagsPrecedence(t *testing.T) {
	path := writeConfigFile(t, "scene: smoke\nsample-count: 64\n")

	config, err := parseFlags([]string{"-config", path, "-scene", "earth"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if config.Scene != "earth" {
		t.Errorf("scene = %q, want the flag to win", config.Scene)
	}
	if config.SampleCount != 64 {
		t.Errorf("sample count = %d, want the file value", config.SampleCount)
	}
}

func TestParseFlagsRejectsBadDownScale(t *testing.T) {
	if _, err := parseFlags([]string{"-down-scale", "0"}); err == nil {
		t.Error("expected an error for down-scale 0")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("/does/not/exist.yaml", defaultConfig()); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfigFile(t, "scene: [unterminated")
	if _, err := loadConfig(path, defaultConfig()); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
