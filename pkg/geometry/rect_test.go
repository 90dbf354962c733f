package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

func TestRectHitYZPlane(t *testing.T) {
	rect := NewRect(RectYZ, 2, -1, -1, 1, 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0)

	hit, ok := rect.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected a hit on the x=2 plane")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("t = %f, want 2", hit.T)
	}
	if math.Abs(hit.UV.X-0.5) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("uv = %v, want (0.5, 0.5)", hit.UV)
	}
	// The +X outward normal is flipped against the ray
	if !hit.Normal.Equals(core.NewVec3(-1, 0, 0)) || hit.FrontFace {
		t.Errorf("normal = %v frontFace=%v, want flipped back face", hit.Normal, hit.FrontFace)
	}
}

func TestRectHitOutsideBounds(t *testing.T) {
	rect := NewRect(RectYZ, 2, -1, -1, 1, 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0), 0)

	if _, ok := rect.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("ray outside the rectangle bounds should miss")
	}
}

func TestRectParallelRayMisses(t *testing.T) {
	rect := NewRect(RectXZ, 1, 0, 0, 2, 2, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0)

	if _, ok := rect.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("ray parallel to the plane should miss")
	}
}

func TestRectZeroExtentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for zero extent")
		}
	}()
	NewRect(RectXY, 0, 1, 0, 1, 5, testMaterial())
}

func TestRectBoundingBoxThickness(t *testing.T) {
	rect := NewRect(RectXZ, 3, 0, 0, 5, 5, testMaterial())

	box, ok := rect.BoundingBox(0, 1)
	if !ok {
		t.Fatal("rect must have a bounding box")
	}
	if box.Max.Y <= box.Min.Y {
		t.Error("box must be inflated along the thin axis")
	}
	if box.Min.Y > 3 || box.Max.Y < 3 {
		t.Errorf("box %v does not straddle the plane y=3", box)
	}
}

func TestRectPDFValue(t *testing.T) {
	// Unit-ish rect centered above the origin at y=1
	rect := NewRect(RectXZ, 1, -1, -1, 1, 1, testMaterial())
	origin := core.NewVec3(0, 0, 0)

	// Straight up: dist²=1, cosθ=1, area=4
	got := rect.PDFValue(origin, core.NewVec3(0, 1, 0), nil)
	want := 1.0 / 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDFValue = %f, want %f", got, want)
	}

	// Direction missing the rect contributes nothing
	if rect.PDFValue(origin, core.NewVec3(0, -1, 0), nil) != 0 {
		t.Error("direction away from the rect should have zero density")
	}
}

func TestRectRandomHitsRect(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rect := NewRect(RectXZ, 1, -1, -1, 1, 1, testMaterial())
	origin := core.NewVec3(0, -1, 0)

	for i := 0; i < 1000; i++ {
		dir := rect.Random(origin, rng)
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("sampled direction %v not unit length", dir)
		}
		if _, ok := rect.Hit(core.NewRay(origin, dir, 0), 0.001, math.Inf(1), rng); !ok {
			t.Fatalf("sampled direction %v misses the rect", dir)
		}
	}
}

func TestFlipFaceInvertsOrientation(t *testing.T) {
	rect := NewRect(RectXZ, 1, -1, -1, 1, 1, testMaterial())
	flipped := NewFlipFace(rect)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0)

	plain, ok := rect.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	wrapped, ok := flipped.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected a hit through the wrapper")
	}

	if wrapped.FrontFace == plain.FrontFace {
		t.Error("FlipFace must invert the front/back orientation")
	}
	if wrapped.T != plain.T {
		t.Error("FlipFace must not change the hit distance")
	}
}

func TestFlipFaceForwardsSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rect := NewRect(RectXZ, 1, -1, -1, 1, 1, testMaterial())
	flipped := NewFlipFace(rect)
	origin := core.NewVec3(0, 0, 0)
	up := core.NewVec3(0, 1, 0)

	if flipped.PDFValue(origin, up, rng) != rect.PDFValue(origin, up, rng) {
		t.Error("FlipFace must forward PDFValue to the inner rect")
	}
}
