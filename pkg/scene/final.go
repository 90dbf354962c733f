package scene

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/geometry"
	"github.com/KaminariOS/ray-tracing/pkg/loaders"
	"github.com/KaminariOS/ray-tracing/pkg/material"
)

// newFinalScene builds the showcase scene: a green box-field floor, a
// ceiling light, motion-blurred and glass spheres, two participating media,
// the earth, a marble sphere, and a rotated cloud of small white spheres.
func newFinalScene(rng *rand.Rand, load loaders.BinaryLoader, logger core.Logger) (core.Hittable, *geometry.HittableList) {
	ground := material.NewLambertianColor(core.NewVec3(0.48, 0.83, 0.53))

	// Floor of randomly raised boxes, gathered into their own BVH
	const boxesPerSide = 20
	const w = 100.0
	var boxes []core.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			p0 := core.NewVec3(x0, 0, z0)
			p1 := core.NewVec3(x0+w, core.RandomRange(1, 101, rng), z0+w)
			boxes = append(boxes, geometry.NewBox(p0, p1, ground))
		}
	}
	floor := geometry.NewBVHNode(boxes, 0, 1, rng)

	light := geometry.NewFlipFace(geometry.NewRect(geometry.RectXZ, 554, 123, 147, 423, 412,
		material.NewDiffuseLightColor(core.NewVec3(7, 7, 7))))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	movingSphere := geometry.NewMovingSphere(center0, center1, 0, 1, 50,
		material.NewLambertianColor(core.NewVec3(0.7, 0.3, 0.1)))

	glassSphere := geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5))
	metalSphere := geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1))

	// Blue subsurface-looking sphere: glass boundary filled with a dense medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	blueMedium := geometry.NewConstantMedium(boundary, 0.2,
		material.NewIsotropicColor(core.NewVec3(0.2, 0.4, 0.9)))

	// Thin global haze over the whole scene
	hazeBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 500, material.NewDielectric(1.5))
	haze := geometry.NewConstantMedium(hazeBoundary, 1e-5,
		material.NewIsotropicColor(core.NewVec3(1, 1, 1)))

	earth := geometry.NewSphere(core.NewVec3(400, 200, 400), 100,
		material.NewLambertian(loaders.NewImageTexture(load, "earthmap.jpg", logger)))
	marble := geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewLambertian(material.NewNoiseTexture(material.NewPerlin(rng), 0.1)))

	// Cloud of small white spheres, rotated and lifted into the corner
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	var cloud []core.Hittable
	for i := 0; i < 1000; i++ {
		cloud = append(cloud, geometry.NewSphere(core.RandomVec3Range(0, 165, rng), 10, white))
	}
	cloudCluster := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHNode(cloud, 0, 1, rng), 15),
		core.NewVec3(-100, 270, 395))

	world := geometry.NewHittableList(
		floor, light, movingSphere, glassSphere, metalSphere,
		blueMedium, haze, earth, marble, cloudCluster,
	)
	return world, geometry.NewHittableList(light)
}
