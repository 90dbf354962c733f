package geometry

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// FlipFace wraps a primitive and inverts the front/back orientation of its
// hits. Emitters that should shine toward the scene interior (ceiling
// lights) are wrapped in it.
type FlipFace struct {
	Inner core.Hittable
}

// NewFlipFace wraps the given primitive
func NewFlipFace(inner core.Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit delegates to the inner primitive and flips FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, rng)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox delegates to the inner primitive
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(time0, time1)
}

// PDFValue forwards to the inner primitive when it is sampleable
func (f *FlipFace) PDFValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if s, ok := f.Inner.(core.Sampleable); ok {
		return s.PDFValue(origin, direction, rng)
	}
	return 0
}

// Random forwards to the inner primitive when it is sampleable
func (f *FlipFace) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if s, ok := f.Inner.(core.Sampleable); ok {
		return s.Random(origin, rng)
	}
	return core.NewVec3(0, 1, 0)
}
