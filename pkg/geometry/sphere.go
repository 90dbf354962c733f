package geometry

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Sphere represents a sphere shape, optionally with a center moving linearly
// across a shutter interval for motion blur
type Sphere struct {
	Center0  core.Vec3
	Center1  core.Vec3
	Time0    float64
	Time1    float64
	Radius   float64
	Material core.Material

	moving bool
}

// NewSphere creates a static sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center0:  center,
		Center1:  center,
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 at time0
// to center1 at time1. The interval must not be degenerate.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *Sphere {
	if time0 == time1 {
		panic("geometry: moving sphere requires time0 != time1")
	}
	return &Sphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
		moving:   true,
	}
}

// Center returns the sphere center at the given shutter time
func (s *Sphere) Center(time float64) core.Vec3 {
	if !s.moving {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic in t, half-b form
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	hit := &core.HitRecord{
		T:        root,
		Point:    point,
		UV:       SphereUV(outwardNormal),
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// SphereUV maps a point on the unit sphere to (u, v) in [0,1]².
// The parameterization degenerates at the poles where φ is undefined;
// texture lookups clamp, so pole texels smear.
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)                // Angle from the bottom pole, [0, π]
	phi := math.Atan2(-p.Z, p.X) + math.Pi // Angle around the equator, [0, 2π]
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the box enclosing the sphere over the shutter interval
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	if !s.moving {
		return core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius)), true
	}

	box0 := core.NewAABB(s.Center(time0).Subtract(radius), s.Center(time0).Add(radius))
	box1 := core.NewAABB(s.Center(time1).Subtract(radius), s.Center(time1).Add(radius))
	return box0.Union(box1), true
}
