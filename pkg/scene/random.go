package scene

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/geometry"
	"github.com/KaminariOS/ray-tracing/pkg/material"
)

// newRandomScene builds the classic random sphere field: a checkered ground
// sphere, a grid of small spheres with randomized materials (diffuse ones
// bob upward over the shutter), and three large feature spheres. The whole
// set is wrapped in a BVH.
func newRandomScene(rng *rand.Rand) core.Hittable {
	var objects []core.Hittable

	const gridRadius = 11
	for a := -gridRadius; a < gridRadius; a++ {
		for b := -gridRadius; b < gridRadius; b++ {
			if sphere := newRandomSphere(a, b, rng); sphere != nil {
				objects = append(objects, sphere)
			}
		}
	}

	ground := material.NewLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return geometry.NewBVHNode(objects, 0, 1, rng)
}

// newRandomSphere places one small sphere in grid cell (a, b), or nothing
// when the cell crowds the large metal sphere
func newRandomSphere(a, b int, rng *rand.Rand) core.Hittable {
	center := core.NewVec3(
		float64(a)+0.9*rng.Float64(),
		0.2,
		float64(b)+0.9*rng.Float64(),
	)
	if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
		return nil
	}

	choose := rng.Float64()
	switch {
	case choose < 0.8:
		albedo := core.RandomVec3Range(0, 1, rng).MultiplyVec(core.RandomVec3Range(0, 1, rng))
		center1 := center.Add(core.NewVec3(0, core.RandomRange(0, 0.5, rng), 0))
		return geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertianColor(albedo))
	case choose < 0.95:
		albedo := core.RandomVec3Range(0.5, 1, rng)
		fuzz := core.RandomRange(0, 0.5, rng)
		return geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz))
	default:
		return geometry.NewSphere(center, 0.2, material.NewDielectric(1.5))
	}
}
