package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var mean Vec3
	const numSamples = 10000
	for i := 0; i < numSamples; i++ {
		p := RandomInUnitSphere(rng)
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %v outside the unit sphere", p)
		}
		mean = mean.Add(p)
	}

	// Uniform samples average out near the origin
	mean = mean.Multiply(1.0 / numSamples)
	if mean.Length() > 0.05 {
		t.Errorf("sample mean %v too far from origin", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.Z != 0 {
			t.Fatalf("disk sample %v has a Z component", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("disk sample %v outside the unit disk", p)
		}
	}
}

func TestRandomCosineDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const numSamples = 20000
	var totalCosine float64
	for i := 0; i < numSamples; i++ {
		dir := RandomCosineDirection(rng)

		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("cosine direction %v not unit length", dir)
		}
		if dir.Z < 0 {
			t.Fatalf("cosine direction %v below the hemisphere", dir)
		}
		totalCosine += dir.Z
	}

	// For cosine-weighted sampling the mean cosine tends to 2/3
	avgCosine := totalCosine / numSamples
	if math.Abs(avgCosine-2.0/3.0) > 0.01 {
		t.Errorf("average cosine %f, want 2/3", avgCosine)
	}
}

func TestONBOrthonormality(t *testing.T) {
	axes := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0), // triggers the auxiliary-axis switch
		NewVec3(0.577, 0.577, 0.577),
		NewVec3(-0.95, 0.1, 0.2),
	}

	for _, w := range axes {
		onb := NewONB(w)

		for name, length := range map[string]float64{
			"u": onb.U.Length(), "v": onb.V.Length(), "w": onb.W.Length(),
		} {
			if math.Abs(length-1) > 1e-9 {
				t.Errorf("axis %v: basis vector %s not unit length (%f)", w, name, length)
			}
		}
		if math.Abs(onb.U.Dot(onb.V)) > 1e-9 ||
			math.Abs(onb.V.Dot(onb.W)) > 1e-9 ||
			math.Abs(onb.U.Dot(onb.W)) > 1e-9 {
			t.Errorf("axis %v: basis not orthogonal", w)
		}
		if !onb.W.Equals(w.Normalize()) {
			t.Errorf("axis %v: W = %v, want the normalized axis", w, onb.W)
		}
	}
}

func TestONBLocalPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	onb := NewONB(NewVec3(0.3, -0.8, 0.5))

	for i := 0; i < 100; i++ {
		local := RandomUnitVector(rng)
		world := onb.Local(local)
		if math.Abs(world.Length()-1) > 1e-9 {
			t.Fatalf("Local(%v) = %v, length %f", local, world, world.Length())
		}
	}
}
