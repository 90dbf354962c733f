package geometry

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// ConstantMedium is a participating medium of uniform density bounded by a
// convex primitive. A ray entering the boundary scatters after an
// exponentially distributed free path; if the sampled path outruns the
// boundary the ray passes through.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density inside boundary.
// The phase material is expected to scatter isotropically.
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	if density <= 0 {
		panic("geometry: constant medium requires positive density")
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phase,
		negInvDensity: -1 / density,
	}
}

// Hit samples a scattering event between the boundary's entry and exit
// intersections. The normal and UV of the record carry no meaning for a
// medium; any unit vector suffices.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	hit1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return nil, false
	}
	hit2, ok := m.Boundary.Hit(ray, hit1.T+1e-4, math.Inf(1), rng)
	if !ok {
		return nil, false
	}

	tEnter := math.Max(hit1.T, tMin)
	tExit := math.Min(hit2.T, tMax)
	if tEnter >= tExit {
		return nil, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	distanceInside := tExit - tEnter
	hitDistance := m.negInvDensity * math.Log(rng.Float64())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEnter + hitDistance
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox inherits the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
