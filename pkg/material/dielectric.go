package material

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material. The index of refraction must
// be positive.
func NewDielectric(refractiveIndex float64) *Dielectric {
	if refractiveIndex <= 0 {
		panic("material: dielectric requires a positive index of refraction")
	}
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the incoming ray. Reflection occurs on total
// internal reflection or stochastically per the Schlick reflectance.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterRecord, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1, 1, 1)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering the material
	} else {
		refractionRatio = d.RefractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rng.Float64() {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.ScatterRecord{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Point, direction, rayIn.Time),
	}, true
}

// refract calculates the refraction of a vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
