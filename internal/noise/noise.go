// Package noise provides deterministic coherent noise in [0,1].
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("noise: unknown backend")

// Backend names accepted by New.
const (
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// Sampler produces smooth pseudo-random values in [0,1]. Equal inputs always
// give equal outputs for the same sampler.
type Sampler interface {
	Noise2(x, y float64) float64
	Noise3(x, y, z float64) float64
}

// Config selects a backend and its parameters.
type Config struct {
	Backend     string
	Seed        int64
	Octaves     int
	Persistence float64
	Alpha       float64 // perlin weight divisor between octaves
	Beta        float64 // perlin frequency multiplier between octaves
}

// New builds the sampler named by cfg.Backend. An empty name selects
// opensimplex.
func New(cfg Config) (Sampler, error) {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}

	switch strings.ToLower(cfg.Backend) {
	case "", BackendOpenSimplex:
		return NewSimplex(cfg.Seed, cfg.Octaves, cfg.Persistence), nil
	case BackendPerlin:
		return NewPerlin(cfg.Seed, cfg.Octaves, cfg.Alpha, cfg.Beta), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
