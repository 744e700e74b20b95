package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Simplex sums octaves of normalized OpenSimplex noise. With one octave it
// is plain simplex noise remapped to [0,1].
type Simplex struct {
	os         opensimplex.Noise
	amplitudes []float64
	total      float64
}

// NewSimplex creates a fractal simplex sampler. Each octave doubles the
// frequency and scales the weight by persistence.
func NewSimplex(seed int64, octaves int, persistence float64) *Simplex {
	if octaves < 1 {
		octaves = 1
	}
	s := &Simplex{
		os:         opensimplex.NewNormalized(seed),
		amplitudes: make([]float64, octaves),
	}
	for i := range s.amplitudes {
		s.amplitudes[i] = math.Pow(persistence, float64(i))
		s.total += s.amplitudes[i]
	}
	return s
}

// Noise2 returns the noise value at (x, y).
func (s *Simplex) Noise2(x, y float64) float64 {
	var sum float64
	for octave, amp := range s.amplitudes {
		f := float64(int(1) << octave)
		sum += amp * s.os.Eval2(x*f, y*f)
	}
	return clamp01(sum / s.total)
}

// Noise3 returns the noise value at (x, y, z).
func (s *Simplex) Noise3(x, y, z float64) float64 {
	var sum float64
	for octave, amp := range s.amplitudes {
		f := float64(int(1) << octave)
		sum += amp * s.os.Eval3(x*f, y*f, z*f)
	}
	return clamp01(sum / s.total)
}
