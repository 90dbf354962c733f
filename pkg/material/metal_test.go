package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

func TestMetalMirrorReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mirror := NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0)

	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  mirror,
	}
	incoming := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0), 0)

	scatter, ok := mirror.Scatter(incoming, hit, rng)
	if !ok {
		t.Fatal("mirror must scatter a 45° ray upward")
	}
	if !scatter.IsSpecular() {
		t.Fatal("metal scattering is specular")
	}

	want := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("direction = %v, want %v", scatter.Scattered.Direction, want)
	}
	if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
		t.Error("scattered direction must stay unit length")
	}
	if !scatter.Attenuation.Equals(mirror.Albedo) {
		t.Errorf("attenuation = %v, want the albedo", scatter.Attenuation)
	}
}

func TestMetalFuzzStaysAboveSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rough := NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.5)

	hit := &core.HitRecord{
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	incoming := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1), 0)

	for i := 0; i < 1000; i++ {
		scatter, ok := rough.Scatter(incoming, hit, rng)
		if !ok {
			continue // absorbed below the surface
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatal("accepted a scattered ray below the surface")
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
			t.Fatal("fuzzed direction must be renormalized")
		}
	}
}

func TestMetalGrazingAbsorption(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rough := NewMetal(core.NewVec3(1, 1, 1), 1)

	hit := &core.HitRecord{
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	// Near-grazing incidence: heavy fuzz frequently pushes the reflection
	// below the surface
	incoming := core.NewRay(core.NewVec3(-10, 0.01, 0), core.NewVec3(10, -0.01, 0), 0)

	absorbed := 0
	const numSamples = 1000
	for i := 0; i < numSamples; i++ {
		if _, ok := rough.Scatter(incoming, hit, rng); !ok {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Error("expected some grazing rays to be absorbed")
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	if NewMetal(core.Vec3{}, 2).Fuzz != 1 {
		t.Error("fuzz above 1 must clamp to 1")
	}
	if NewMetal(core.Vec3{}, -0.5).Fuzz != 0 {
		t.Error("negative fuzz must clamp to 0")
	}
}
