package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KaminariOS/ray-tracing/pkg/loaders"
	"github.com/KaminariOS/ray-tracing/pkg/renderer"
	"github.com/KaminariOS/ray-tracing/pkg/scene"
)

// Nominal output resolution before down-scaling
const (
	nominalWidth  = 1920
	nominalHeight = 1080
)

// Config holds the rendering parameters. Values can come from flags or from
// a YAML file; flags given explicitly on the command line win.
type Config struct {
	MaxDepth    int    `yaml:"max-depth"`
	SampleCount int    `yaml:"sample-count"`
	DownScale   int    `yaml:"down-scale"`
	Scene       string `yaml:"scene"`
	Assets      string `yaml:"assets"`
	Output      string `yaml:"output"`
	Seed        int64  `yaml:"seed"`
}

// defaultConfig returns the built-in rendering parameters
func defaultConfig() Config {
	return Config{
		MaxDepth:    50,
		SampleCount: 100,
		DownScale:   10,
		Scene:       "random",
		Assets:      "static",
		Output:      "screenshot.png",
	}
}

func main() {
	config, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	if err := run(config); err != nil {
		log.Fatalf("render failed: %v", err)
	}
}

// parseFlags resolves the configuration from defaults, an optional YAML
// file, and command-line flags, in increasing precedence
func parseFlags(args []string) (Config, error) {
	config := defaultConfig()

	fs := flag.NewFlagSet("ray-tracing", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with rendering parameters")
	fs.IntVar(&config.MaxDepth, "max-depth", config.MaxDepth, "Maximum ray bounce depth")
	fs.IntVar(&config.SampleCount, "sample-count", config.SampleCount, "Samples per pixel")
	fs.IntVar(&config.DownScale, "down-scale", config.DownScale, "Divisor applied to the nominal 1920x1080 resolution")
	fs.StringVar(&config.Scene, "scene", config.Scene, "Scene: random, 2sp, 2psp, earth, simplelight, cornell, smoke, final")
	fs.StringVar(&config.Assets, "assets", config.Assets, "Directory holding texture assets")
	fs.StringVar(&config.Output, "output", config.Output, "Output PNG path")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "Random seed (0 = time-based)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		fileConfig, err := loadConfig(*configPath, defaultConfig())
		if err != nil {
			return Config{}, err
		}
		// Re-apply explicit flags over the file values
		merged := fileConfig
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "max-depth":
				merged.MaxDepth = config.MaxDepth
			case "sample-count":
				merged.SampleCount = config.SampleCount
			case "down-scale":
				merged.DownScale = config.DownScale
			case "scene":
				merged.Scene = config.Scene
			case "assets":
				merged.Assets = config.Assets
			case "output":
				merged.Output = config.Output
			case "seed":
				merged.Seed = config.Seed
			}
		})
		config = merged
	}

	if config.DownScale < 1 {
		return Config{}, fmt.Errorf("down-scale must be at least 1, got %d", config.DownScale)
	}
	return config, nil
}

// loadConfig reads rendering parameters from a YAML file over the given base
func loadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	config := base
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// run renders the configured scene and writes it as a PNG
func run(config Config) error {
	width := nominalWidth / config.DownScale
	height := nominalHeight / config.DownScale

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sc := scene.Select(config.Scene, rng, loaders.FileLoader(config.Assets), log.Default())
	camera := renderer.SelectCamera(float64(width)/float64(height), sc.Label)

	r := renderer.NewRenderer(width, height, sc, camera)
	r.Multisample = config.SampleCount
	r.MaxDepth = config.MaxDepth
	r.Seed = seed

	frame := make([]byte, 4*width*height)
	r.Draw(frame)

	img := &image.RGBA{
		Pix:    frame,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}

	file, err := os.Create(config.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	log.Printf("Render saved as %s", config.Output)
	return nil
}
