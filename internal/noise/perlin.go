package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin wraps classic Perlin noise and remaps its signed output to [0,1].
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin creates a Perlin sampler. alpha divides the weight and beta
// multiplies the frequency of each successive octave.
func NewPerlin(seed int64, octaves int, alpha, beta float64) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	if alpha == 0 {
		alpha = 2
	}
	if beta == 0 {
		beta = 2
	}
	return &Perlin{p: perlin.NewPerlin(alpha, beta, int32(octaves), seed)}
}

// Noise2 returns the noise value at (x, y).
func (p *Perlin) Noise2(x, y float64) float64 {
	return clamp01((p.p.Noise2D(x, y) + 1) / 2)
}

// Noise3 returns the noise value at (x, y, z).
func (p *Perlin) Noise3(x, y, z float64) float64 {
	return clamp01((p.p.Noise3D(x, y, z) + 1) / 2)
}
