package material

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

func TestSolidColorIgnoresCoordinates(t *testing.T) {
	color := core.NewVec3(0.1, 0.2, 0.3)
	solid := NewSolidColor(color)

	if !solid.Value(core.NewVec2(0.7, 0.3), core.NewVec3(5, -2, 9)).Equals(color) {
		t.Error("solid color must be constant")
	}
}

func TestCheckerAlternates(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(even, odd)
	uv := core.NewVec2(0, 0)

	// sin(10·0.05)³ > 0: even cell
	if !checker.Value(uv, core.NewVec3(0.05, 0.05, 0.05)).Equals(even) {
		t.Error("expected the even color")
	}
	// One factor negated: odd cell
	if !checker.Value(uv, core.NewVec3(-0.05, 0.05, 0.05)).Equals(odd) {
		t.Error("expected the odd color")
	}
	// Two factors negated: even again
	if !checker.Value(uv, core.NewVec3(-0.05, -0.05, 0.05)).Equals(even) {
		t.Error("expected the even color")
	}
}

func TestImageTextureLookup(t *testing.T) {
	// 2×2 bitmap, stored pre-flipped: row 0 is the image bottom
	bitmap := image.NewRGBA(image.Rect(0, 0, 2, 2))
	set := func(x, y int, r, g, b byte) {
		offset := bitmap.PixOffset(x, y)
		bitmap.Pix[offset], bitmap.Pix[offset+1], bitmap.Pix[offset+2], bitmap.Pix[offset+3] = r, g, b, 255
	}
	set(0, 0, 255, 0, 0) // bottom-left red
	set(1, 0, 0, 255, 0) // bottom-right green
	set(0, 1, 0, 0, 255) // top-left blue
	set(1, 1, 255, 255, 255)

	texture := NewImageTexture(bitmap)
	point := core.Vec3{}

	tests := []struct {
		uv   core.Vec2
		want core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(1, 0, 0)},
		{core.NewVec2(0.99, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec2(0, 0.99), core.NewVec3(0, 0, 1)},
		{core.NewVec2(1, 1), core.NewVec3(1, 1, 1)}, // clamps to the last texel
	}
	for _, tt := range tests {
		got := texture.Value(tt.uv, point)
		if got.Subtract(tt.want).Length() > 1e-9 {
			t.Errorf("Value(%v) = %v, want %v", tt.uv, got, tt.want)
		}
	}

	// Out-of-range coordinates clamp instead of wrapping
	if got := texture.Value(core.NewVec2(-1, 2), point); !got.Equals(texture.Value(core.NewVec2(0, 1), point)) {
		t.Error("out-of-range UV must clamp")
	}
}

func TestImageTextureSentinel(t *testing.T) {
	cyan := core.NewVec3(0, 1, 1)
	if !NewImageTexture(nil).Value(core.NewVec2(0.5, 0.5), core.Vec3{}).Equals(cyan) {
		t.Error("missing bitmap must yield the cyan sentinel")
	}
}

func TestPerlinNoiseDeterministicAndBounded(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))
	same := NewPerlin(rand.New(rand.NewSource(42)))
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := core.RandomVec3Range(-20, 20, rng)
		n := perlin.Noise(p)
		if math.Abs(n) > 2 {
			t.Fatalf("noise %f out of range at %v", n, p)
		}
		if n != same.Noise(p) {
			t.Fatal("noise must be deterministic for a fixed seed")
		}
	}
}

func TestPerlinNoiseVanishesOnLattice(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))

	// On lattice points every interpolation weight collapses
	for _, p := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-4, 7, -1),
	} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("noise at lattice point %v = %f, want 0", p, n)
		}
	}
}

func TestPerlinTurbulence(t *testing.T) {
	perlin := NewPerlin(rand.New(rand.NewSource(42)))
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p := core.RandomVec3Range(-5, 5, rng)
		turb := perlin.Turb(p, 7)
		if turb < 0 {
			t.Fatalf("turbulence %f negative at %v", turb, p)
		}
		if turb > 4 {
			t.Fatalf("turbulence %f unreasonably large at %v", turb, p)
		}
	}
}

func TestNoiseTextureRange(t *testing.T) {
	texture := NewNoiseTexture(NewPerlin(rand.New(rand.NewSource(42))), 4)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		p := core.RandomVec3Range(-5, 5, rng)
		c := texture.Value(core.Vec2{}, p)
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("marble color %v not a gray value in [0,1]", c)
		}
	}
}
