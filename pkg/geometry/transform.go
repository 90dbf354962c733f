package geometry

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Translate shifts a primitive by a constant offset. The ray is moved into
// object space, the hit point back out; the normal is unchanged.
type Translate struct {
	Inner  core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps the given primitive with a translation
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit tests the offset ray against the inner primitive
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	moved := core.Ray{
		Origin:    ray.Origin.Subtract(t.Offset),
		Direction: ray.Direction,
		Time:      ray.Time,
	}

	hit, ok := t.Inner.Hit(moved, tMin, tMax, rng)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates a primitive about the world Y axis. The bounding box is
// cached at construction over the [0,1] shutter interval from the eight
// rotated corners of the child box.
type RotateY struct {
	Inner    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps the given primitive with a rotation of angle degrees
// about the Y axis
func NewRotateY(inner core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := inner.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.Max.X + float64(1-i)*childBox.Min.X
				y := float64(j)*childBox.Max.Y + float64(1-j)*childBox.Min.Y
				z := float64(k)*childBox.Max.Z + float64(1-k)*childBox.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	r.box = core.NewAABB(min, max)
	return r
}

// rotate applies the forward rotation to a vector
func (r *RotateY) rotate(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// rotateInverse applies the inverse rotation to a vector
func (r *RotateY) rotateInverse(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit transforms the ray into object space, queries the inner primitive,
// and transforms point and normal back to world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	rotated := core.Ray{
		Origin:    r.rotateInverse(ray.Origin),
		Direction: r.rotateInverse(ray.Direction),
		Time:      ray.Time,
	}

	hit, ok := r.Inner.Hit(rotated, tMin, tMax, rng)
	if !ok {
		return nil, false
	}

	hit.Point = r.rotate(hit.Point)
	hit.Normal = r.rotate(hit.Normal)
	return hit, true
}

// BoundingBox returns the cached rotated box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}
