package scene

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/geometry"
	"github.com/KaminariOS/ray-tracing/pkg/loaders"
	"github.com/KaminariOS/ray-tracing/pkg/material"
)

// newTwoSpheres builds two large checkered spheres touching at the origin
func newTwoSpheres() core.Hittable {
	checker := material.NewLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
}

// newTwoPerlinSpheres builds a marble ground sphere with a marble sphere
// resting on it
func newTwoPerlinSpheres(rng *rand.Rand) core.Hittable {
	marble := material.NewLambertian(material.NewNoiseTexture(material.NewPerlin(rng), 4))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
}

// newEarthScene builds a single sphere wearing the earth map
func newEarthScene(load loaders.BinaryLoader, logger core.Logger) core.Hittable {
	earth := material.NewLambertian(loaders.NewImageTexture(load, "earthmap.jpg", logger))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth),
	)
}

// newSimpleLight builds the two marble spheres lit by a rectangle off to
// the side. The light faces the camera, so no face flip is needed.
func newSimpleLight(rng *rand.Rand) (core.Hittable, *geometry.HittableList) {
	marble := material.NewLambertian(material.NewNoiseTexture(material.NewPerlin(rng), 4))
	light := geometry.NewRect(geometry.RectXY, -4, 3, 1, 5, 3,
		material.NewDiffuseLightColor(core.NewVec3(4, 4, 4)))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		light,
	)
	return world, geometry.NewHittableList(light)
}
