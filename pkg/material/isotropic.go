package material

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Isotropic scatters uniformly over the unit sphere. It serves as the phase
// material of constant-density media.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase material over a texture
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor creates an isotropic phase material of a solid color
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return NewIsotropic(NewSolidColor(albedo))
}

// Scatter emits the ray in a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(rng), rayIn.Time),
	}, true
}
