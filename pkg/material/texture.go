package material

import (
	"math"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// Texture provides spatially-varying colors for materials. UV drives image
// textures, the 3D point drives procedural ones.
type Texture interface {
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor is a uniform texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform texture of the given color
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker of two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker of two solid colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks one of the two textures based on the sign of a sine product
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}
