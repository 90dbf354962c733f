package material

import (
	"math"
	"math/rand"

	"github.com/KaminariOS/ray-tracing/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient-noise lattice: 256 random unit gradients indexed by
// three independent permutation tables, one per axis, combined with XOR.
type Perlin struct {
	ranVec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin creates a noise lattice from the given generator
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranVec {
		p.ranVec[i] = core.RandomVec3Range(-1, 1, rng).Normalize()
	}
	p.permX = perlinGeneratePerm(rng)
	p.permY = perlinGeneratePerm(rng)
	p.permZ = perlinGeneratePerm(rng)
	return p
}

func perlinGeneratePerm(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := rng.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns gradient noise at the point, in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				index := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.ranVec[index]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// perlinInterp trilinearly interpolates gradient dot products with
// smoothstep-weighted coordinates
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb returns turbulence: summed absolute noise over depth octaves at
// doubling frequencies and halving weights
func (p *Perlin) Turb(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	temp := point

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(p.Noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return accum
}
