package geometry

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Box is an axis-aligned cuboid assembled from six rectangles. All faces
// keep the +axis outward normal of their plane; SetFaceNormal orients them
// against the incoming ray.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a cuboid spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewHittableList(
		NewRect(RectXY, p1.Z, p0.X, p0.Y, p1.X, p1.Y, material),
		NewRect(RectXY, p0.Z, p0.X, p0.Y, p1.X, p1.Y, material),

		NewRect(RectXZ, p1.Y, p0.X, p0.Z, p1.X, p1.Z, material),
		NewRect(RectXZ, p0.Y, p0.X, p0.Z, p1.X, p1.Z, material),

		NewRect(RectYZ, p1.X, p0.Y, p0.Z, p1.Y, p1.Z, material),
		NewRect(RectYZ, p0.X, p0.Y, p0.Z, p1.Y, p1.Z, material),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests the ray against the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, rng)
}

// BoundingBox returns the cuboid extents
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
