package core

import (
	"math"
	"math/rand"
)

// RandomRange returns a uniform value in [min, max)
func RandomRange(min, max float64, rng *rand.Rand) float64 {
	return min + (max-min)*rng.Float64()
}

// RandomVec3Range returns a vector with each component uniform in [min, max)
func RandomVec3Range(min, max float64, rng *rand.Rand) Vec3 {
	return Vec3{
		X: RandomRange(min, max, rng),
		Y: RandomRange(min, max, rng),
		Z: RandomRange(min, max, rng),
	}
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit sphere
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, rng)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit
// disk in the XY plane. Used for thin-lens aperture sampling.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: RandomRange(-1, 1, rng), Y: RandomRange(-1, 1, rng)}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction in the local
// frame where +Z is the axis of the distribution
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := math.Sqrt(1 - r2)

	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)
	return Vec3{
		X: math.Cos(phi) * sqrtR2,
		Y: math.Sin(phi) * sqrtR2,
		Z: z,
	}
}
