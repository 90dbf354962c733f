package geometry

import (
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// HittableList is a flat collection of primitives searched linearly for the
// closest hit. The scene's emitter set is a HittableList as well, sampled
// through PDFValue/Random.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given primitives
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a primitive to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// IsEmpty reports whether the list holds no primitives
func (l *HittableList) IsEmpty() bool {
	return len(l.Objects) == 0
}

// Hit returns the closest intersection among all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, rng); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the surrounding box of all members
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = box.Union(objectBox)
		}
	}

	return box, true
}

// PDFValue averages the densities of the sampleable members
func (l *HittableList) PDFValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if s, ok := object.(core.Sampleable); ok {
			sum += weight * s.PDFValue(origin, direction, rng)
		}
	}
	return sum
}

// Random draws a direction from a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(0, 1, 0)
	}

	object := l.Objects[rng.Intn(len(l.Objects))]
	if s, ok := object.(core.Sampleable); ok {
		return s.Random(origin, rng)
	}
	return core.NewVec3(0, 1, 0)
}
