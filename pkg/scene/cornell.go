package scene

import (
	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/geometry"
	"github.com/KaminariOS/ray-tracing/pkg/material"
)

// cornellWalls builds the five walls of the 555-unit Cornell box plus the
// ceiling light. The light is face-flipped so its front face points down
// into the box.
func cornellWalls(light *geometry.FlipFace) []core.Hittable {
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))

	const length = 555.0
	return []core.Hittable{
		geometry.NewRect(geometry.RectYZ, length, 0, 0, length, length, green),
		geometry.NewRect(geometry.RectYZ, 0, 0, 0, length, length, red),
		light,
		geometry.NewRect(geometry.RectXZ, 0, 0, 0, length, length, white),
		geometry.NewRect(geometry.RectXZ, length, 0, 0, length, length, white),
		geometry.NewRect(geometry.RectXY, length, 0, 0, length, length, white),
	}
}

// cornellBlocks builds the two rotated boxes standing in the Cornell box
func cornellBlocks() (core.Hittable, core.Hittable) {
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
		core.NewVec3(130, 0, 65))

	return tall, short
}

// newCornellBox builds the classic Cornell box with two rotated blocks
func newCornellBox() (core.Hittable, *geometry.HittableList) {
	light := geometry.NewFlipFace(geometry.NewRect(geometry.RectXZ, 554, 213, 227, 343, 332,
		material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))))

	tall, short := cornellBlocks()
	world := geometry.NewHittableList(cornellWalls(light)...)
	world.Add(tall, short)

	return world, geometry.NewHittableList(light)
}

// newCornellSmoke builds the Cornell box with the blocks replaced by dark
// and light constant-density media
func newCornellSmoke() (core.Hittable, *geometry.HittableList) {
	light := geometry.NewFlipFace(geometry.NewRect(geometry.RectXZ, 554, 113, 127, 443, 432,
		material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))))

	tall, short := cornellBlocks()
	world := geometry.NewHittableList(cornellWalls(light)...)
	world.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewIsotropicColor(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewIsotropicColor(core.NewVec3(1, 1, 1))),
	)

	return world, geometry.NewHittableList(light)
}
