package geometry

import (
	"math/rand"
	"sort"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// BVHNode is a binary bounding-volume tree over a primitive set. Interior
// structure mirrors the construction scheme of the book tracers: a random
// split axis, primitives sorted by box minimum, halves recursed.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVHNode builds a BVH over the given primitives for the shutter
// interval [time0, time1]. Every primitive must supply a bounding box;
// an empty input is a construction error.
func NewBVHNode(objects []core.Hittable, time0, time1 float64, rng *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: BVH over empty primitive list")
	}

	// Work on a copy so callers keep their ordering
	objs := make([]core.Hittable, len(objects))
	copy(objs, objects)

	axis := rng.Intn(3)

	node := &BVHNode{}
	switch len(objs) {
	case 1:
		node.Left, node.Right = objs[0], objs[0]
	case 2:
		if boxMin(objs[0], axis) <= boxMin(objs[1], axis) {
			node.Left, node.Right = objs[0], objs[1]
		} else {
			node.Left, node.Right = objs[1], objs[0]
		}
	default:
		sort.Slice(objs, func(i, j int) bool {
			return boxMin(objs[i], axis) < boxMin(objs[j], axis)
		})
		mid := len(objs) / 2
		node.Left = NewBVHNode(objs[:mid], time0, time1, rng)
		node.Right = NewBVHNode(objs[mid:], time0, time1, rng)
	}

	leftBox, okL := node.Left.BoundingBox(time0, time1)
	rightBox, okR := node.Right.BoundingBox(time0, time1)
	if !okL || !okR {
		panic("geometry: BVH child without bounding box")
	}
	node.Box = leftBox.Union(rightBox)

	return node
}

// boxMin returns the minimum coordinate of a primitive's box along an axis
func boxMin(object core.Hittable, axis int) float64 {
	box, ok := object.BoundingBox(0, 0)
	if !ok {
		panic("geometry: BVH child without bounding box")
	}
	return box.Min.Axis(axis)
}

// Hit tests the node box, then finds the nearer of the two child hits. The
// second child is only searched up to the first child's hit distance.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, okL := n.Left.Hit(ray, tMin, tMax, rng)
	if okL {
		tMax = hitLeft.T
	}

	hitRight, okR := n.Right.Hit(ray, tMin, tMax, rng)
	if okR {
		return hitRight, true
	}
	return hitLeft, okL
}

// BoundingBox returns the precomputed surrounding box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
