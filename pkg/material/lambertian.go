package material

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a lambertian material over a texture
func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianColor creates a lambertian material of a solid color
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return NewLambertian(NewSolidColor(albedo))
}

// Scatter returns a cosine-weighted directional PDF around the surface
// normal for the integrator to sample
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}
