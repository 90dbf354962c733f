package geometry

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// RectAxis selects the plane a rectangle lies in
type RectAxis int

const (
	RectXY RectAxis = iota // plane of constant Z
	RectXZ                 // plane of constant Y
	RectYZ                 // plane of constant X
)

// axes returns the two in-plane axis indices and the plane normal index
func (a RectAxis) axes() (int, int, int) {
	switch a {
	case RectXY:
		return 0, 1, 2
	case RectXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// normal returns the +1 outward normal of the plane
func (a RectAxis) normal() core.Vec3 {
	switch a {
	case RectXY:
		return core.NewVec3(0, 0, 1)
	case RectXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Rect is an axis-aligned rectangle in the plane axis=K, spanning
// [U0,U1]×[V0,V1] over the two remaining axes. Rects double as emitter
// geometry: they implement PDFValue and Random for direct light sampling.
type Rect struct {
	Axis     RectAxis
	K        float64
	U0, V0   float64
	U1, V1   float64
	Material core.Material
}

// NewRect creates an axis-aligned rectangle. Zero extent along either
// in-plane axis is a construction error.
func NewRect(axis RectAxis, k, u0, v0, u1, v1 float64, material core.Material) *Rect {
	if u0 >= u1 || v0 >= v1 {
		panic("geometry: rect requires u0 < u1 and v0 < v1")
	}
	return &Rect{Axis: axis, K: k, U0: u0, V0: v0, U1: u1, V1: v1, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	ai, bi, ki := r.Axis.axes()

	t := (r.K - ray.Origin.Axis(ki)) / ray.Direction.Axis(ki)
	if t < tMin || t > tMax || math.IsNaN(t) {
		return nil, false
	}

	point := ray.At(t)
	a := point.Axis(ai)
	b := point.Axis(bi)
	if a < r.U0 || a > r.U1 || b < r.V0 || b > r.V1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:     t,
		Point: point,
		UV: core.NewVec2(
			(a-r.U0)/(r.U1-r.U0),
			(b-r.V0)/(r.V1-r.V0),
		),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, r.Axis.normal())

	return hit, true
}

// Padding on the thin axis so the box never degenerates
const rectThickness = 1e-4

// BoundingBox returns a box inflated slightly along the plane normal
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	ai, bi, ki := r.Axis.axes()

	var min, max [3]float64
	min[ai], max[ai] = r.U0, r.U1
	min[bi], max[bi] = r.V0, r.V1
	min[ki], max[ki] = r.K-rectThickness, r.K+rectThickness

	return core.NewAABB(
		core.NewVec3(min[0], min[1], min[2]),
		core.NewVec3(max[0], max[1], max[2]),
	), true
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return (r.U1 - r.U0) * (r.V1 - r.V0)
}

// PDFValue returns the solid-angle density of sampling the given direction
// from origin uniformly over the rectangle's area
func (r *Rect) PDFValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction, 0), 1e-3, math.Inf(1), rng)
	if !ok {
		return 0
	}

	// PDF_solid_angle = dist² / (|cosθ| · area)
	distanceSquared := hit.T * hit.T
	cosine := math.Abs(direction.Normalize().Dot(r.Axis.normal()))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.Area())
}

// Random returns a unit direction from origin toward a uniformly sampled
// point on the rectangle
func (r *Rect) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	ai, bi, ki := r.Axis.axes()

	var p [3]float64
	p[ai] = core.RandomRange(r.U0, r.U1, rng)
	p[bi] = core.RandomRange(r.V0, r.V1, rng)
	p[ki] = r.K

	target := core.NewVec3(p[0], p[1], p[2])
	return target.Subtract(origin).Normalize()
}
