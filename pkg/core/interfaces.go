package core

import "math/rand"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is the polymorphic ray-intersection interface. The random
// generator is threaded through Hit so that stochastic primitives
// (participating media) stay free of shared state.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, rng *rand.Rand) (*HitRecord, bool)
	// BoundingBox returns the box enclosing the primitive over the shutter
	// interval [time0, time1]. The second return is false when no finite
	// box exists.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Sampleable is implemented by primitives that can be importance-sampled as
// emitter geometry: flat rectangles and lists of them.
type Sampleable interface {
	Hittable
	// PDFValue returns the solid-angle density of sampling direction from origin
	PDFValue(origin, direction Vec3, rng *rand.Rand) float64
	// Random returns a unit direction from origin toward a sampled point on the geometry
	Random(origin Vec3, rng *rand.Rand) Vec3
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, unit length
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface parameterization in [0,1]²
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	outwardNormal = outwardNormal.Normalize()
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Material interface for objects that can scatter rays
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit *HitRecord) Vec3
}

// ScatterRecord contains the result of material scattering. Diffuse
// materials return a PDF for the integrator to sample; specular and
// isotropic materials return the outgoing ray directly.
type ScatterRecord struct {
	Attenuation Vec3 // Color attenuation
	Scattered   Ray  // Outgoing ray when PDF is nil
	PDF         PDF  // Directional density for diffuse scattering
}

// IsSpecular returns true when the scattered ray is followed as-is
func (s ScatterRecord) IsSpecular() bool {
	return s.PDF == nil
}

// PDF is a probability density over unit directions
type PDF interface {
	Value(direction Vec3, rng *rand.Rand) float64
	Generate(rng *rand.Rand) Vec3
}
