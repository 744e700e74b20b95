package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/noise"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Export formats accepted in ExportConfig.Format.
var exportFormats = []string{"png", "bmp", "tiff"}

// Grid builds the terrain grid described by the terrain section.
func (c *Config) Grid() (terrain.Grid, error) {
	t := c.Terrain
	return terrain.NewGrid(t.Scale, t.Width, t.Height, t.Exponent, t.MinAmplitude, t.MaxAmplitude)
}

// NoiseConfig converts the noise section into sampler settings.
func (c *Config) NoiseConfig() noise.Config {
	return noise.Config{
		Backend:     c.Noise.Backend,
		Seed:        c.Noise.Seed,
		Octaves:     c.Noise.Octaves,
		Persistence: c.Noise.Persistence,
		Alpha:       c.Noise.Alpha,
		Beta:        c.Noise.Beta,
	}
}

// UpdaterOptions converts the terrain frequencies into height pass options.
func (c *Config) UpdaterOptions() terrain.UpdaterOptions {
	return terrain.UpdaterOptions{
		StaticFrequency:   c.Terrain.StaticFrequency,
		AnimatedFrequency: c.Terrain.AnimatedFrequency,
		TimeScale:         c.Terrain.TimeScale,
	}
}

// Validate reports the first setting that cannot produce a working terrain.
func (c *Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return fmt.Errorf("%w: terrain: %w", ErrInvalid, err)
	}

	t := c.Terrain
	if t.StaticFrequency <= 0 || t.AnimatedFrequency <= 0 || t.TimeScale <= 0 {
		return fmt.Errorf("%w: terrain: frequencies and time scale must be positive (static %g, animated %g, time %g)",
			ErrInvalid, t.StaticFrequency, t.AnimatedFrequency, t.TimeScale)
	}

	switch strings.ToLower(c.Noise.Backend) {
	case "", noise.BackendOpenSimplex, noise.BackendPerlin:
	default:
		return fmt.Errorf("%w: noise: %w: %q", ErrInvalid, noise.ErrUnknownBackend, c.Noise.Backend)
	}

	if !c.Window.Headless && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		return fmt.Errorf("%w: window: size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	if c.Export.Enabled && !validFormat(c.Export.Format) {
		return fmt.Errorf("%w: export: unknown format %q (want one of %s)",
			ErrInvalid, c.Export.Format, strings.Join(exportFormats, ", "))
	}

	return nil
}

func validFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range exportFormats {
		if f == format {
			return true
		}
	}
	return false
}
