package material

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// DiffuseLight is a light-emitting material. It absorbs every incoming ray
// and emits only through its front face.
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates an emitter over a texture
func NewDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// NewDiffuseLightColor creates an emitter of uniform radiance
func NewDiffuseLightColor(emission core.Vec3) *DiffuseLight {
	return NewDiffuseLight(NewSolidColor(emission))
}

// Scatter absorbs the ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// Emit returns the emitted radiance for front-face hits and black otherwise
func (d *DiffuseLight) Emit(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emission.Value(hit.UV, hit.Point)
}
