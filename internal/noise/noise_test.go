package noise

import (
	"errors"
	"math"
	"testing"
)

func samplers(t *testing.T) map[string]Sampler {
	t.Helper()
	out := make(map[string]Sampler)
	for _, backend := range []string{BackendOpenSimplex, BackendPerlin} {
		s, err := New(Config{Backend: backend, Seed: 42, Octaves: 1, Persistence: 0.5, Alpha: 2, Beta: 2})
		if err != nil {
			t.Fatalf("New(%s): %v", backend, err)
		}
		out[backend] = s
	}
	return out
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(Config{Backend: "value"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestNewDefaultsToSimplex(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := s.(*Simplex); !ok {
		t.Errorf("expected *Simplex for empty backend, got %T", s)
	}
}

func TestRange(t *testing.T) {
	for name, s := range samplers(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				for j := 0; j < 50; j++ {
					x, y := float64(i)*0.137, float64(j)*0.219
					if v := s.Noise2(x, y); v < 0 || v > 1 {
						t.Fatalf("Noise2(%g, %g) = %g outside [0,1]", x, y, v)
					}
					if v := s.Noise3(x, y, 3.7); v < 0 || v > 1 {
						t.Fatalf("Noise3(%g, %g, 3.7) = %g outside [0,1]", x, y, v)
					}
				}
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	for name := range samplers(t) {
		t.Run(name, func(t *testing.T) {
			a := samplers(t)[name]
			b := samplers(t)[name]
			for k := 0; k < 100; k++ {
				x, y, z := float64(k)*0.31, float64(k)*0.17, float64(k)*0.05
				if a.Noise2(x, y) != a.Noise2(x, y) {
					t.Fatal("Noise2 differs between identical calls")
				}
				if a.Noise3(x, y, z) != b.Noise3(x, y, z) {
					t.Fatal("Noise3 differs between samplers with the same seed")
				}
			}
		})
	}
}

func TestContinuousOverTime(t *testing.T) {
	const dt = 0.001
	for name, s := range samplers(t) {
		t.Run(name, func(t *testing.T) {
			x, y := 12*0.05, 7*0.05
			prev := s.Noise3(x, y, 0)
			for step := 1; step <= 5000; step++ {
				v := s.Noise3(x, y, float64(step)*dt)
				if d := math.Abs(v - prev); d > 0.02 {
					t.Fatalf("jump of %g at step %d", d, step)
				}
				prev = v
			}
		})
	}
}

func TestNotConstant(t *testing.T) {
	for name, s := range samplers(t) {
		t.Run(name, func(t *testing.T) {
			lo, hi := 1.0, 0.0
			for k := 0; k < 400; k++ {
				v := s.Noise2(float64(k%20)*0.1+0.05, float64(k/20)*0.1+0.05)
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			if hi-lo < 0.1 {
				t.Errorf("noise barely varies: range [%g, %g]", lo, hi)
			}
		})
	}
}

func TestSimplexOctavesNormalized(t *testing.T) {
	s := NewSimplex(7, 4, 0.5)
	if len(s.amplitudes) != 4 {
		t.Fatalf("expected 4 octaves, got %d", len(s.amplitudes))
	}
	if math.Abs(s.total-1.875) > 1e-9 {
		t.Errorf("expected amplitude total 1.875, got %g", s.total)
	}
}
