package scene

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
	"github.com/KaminariOS/ray-tracing/pkg/geometry"
	"github.com/KaminariOS/ray-tracing/pkg/loaders"
)

// Scene bundles the world geometry, the emitter set for direct sampling,
// and the background radiance for rays that escape. Emitters appear in both
// World and Lights so they stay visible on random hits.
type Scene struct {
	World      core.Hittable
	Lights     *geometry.HittableList
	Background core.Vec3
	Label      string
}

// HasLights reports whether direct light sampling is possible
func (s *Scene) HasLights() bool {
	return s.Lights != nil && !s.Lights.IsEmpty()
}

// Select builds the named catalogue scene. Unknown names fall back to the
// two-spheres scene. Scene construction is the only consumer of the asset
// loader; scenes without image textures ignore it.
func Select(name string, rng *rand.Rand, load loaders.BinaryLoader, logger core.Logger) *Scene {
	if logger != nil {
		logger.Printf("Building scene: %s", name)
	}

	var world core.Hittable
	lights := geometry.NewHittableList()

	switch name {
	case "random":
		world = newRandomScene(rng)
	case "2psp":
		world = newTwoPerlinSpheres(rng)
	case "earth":
		world = newEarthScene(load, logger)
	case "simplelight":
		world, lights = newSimpleLight(rng)
	case "cornell":
		world, lights = newCornellBox()
	case "smoke":
		world, lights = newCornellSmoke()
	case "final":
		world, lights = newFinalScene(rng, load, logger)
	default:
		name = "2sp"
		world = newTwoSpheres()
	}

	background := core.NewVec3(0.7, 0.8, 1.0)
	switch name {
	case "simplelight", "cornell", "smoke", "final":
		background = core.Vec3{}
	}

	return &Scene{
		World:      world,
		Lights:     lights,
		Background: background,
		Label:      name,
	}
}
