package material

import (
	"math"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

// NoiseTexture renders a marble band: a sine along Z phase-shifted by
// turbulence of the Perlin lattice
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture at the given frequency scale
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value returns a grayscale marble color at the point
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	t := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turb(point, 7)))
	return core.NewVec3(1, 1, 1).Multiply(t)
}
