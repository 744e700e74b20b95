package terrain

import "github.com/Faultbox/terrainwave/internal/noise"

// Sample selects which height pass Update performs. The zero value, Static,
// is the startup pass: 2D noise and no time coordinate. At returns an
// animated pass for a point in time.
type Sample struct {
	animated bool
	seconds  float64
}

// Static is the startup height pass.
var Static Sample

// At returns the animated height pass for the given elapsed seconds.
func At(seconds float64) Sample {
	return Sample{animated: true, seconds: seconds}
}

// UpdaterOptions tunes the noise lookup of a height pass.
type UpdaterOptions struct {
	StaticFrequency   float64 // noise units per cell for the Static pass
	AnimatedFrequency float64 // noise units per cell for animated passes
	TimeScale         float64 // noise units per second
}

// DefaultUpdaterOptions returns the stock lookup: 0.1 per cell at startup,
// 0.05 per cell and half a unit per second when animated.
func DefaultUpdaterOptions() UpdaterOptions {
	return UpdaterOptions{
		StaticFrequency:   0.1,
		AnimatedFrequency: 0.05,
		TimeScale:         0.5,
	}
}

// Updater rewrites the Z coordinate of every mesh vertex from noise scaled by
// the row amplitude profile. X and Y are never touched.
type Updater struct {
	sampler noise.Sampler
	opts    UpdaterOptions

	grid    Grid
	profile []float64
}

// NewUpdater creates an updater drawing from the given sampler.
func NewUpdater(sampler noise.Sampler, opts UpdaterOptions) *Updater {
	return &Updater{
		sampler: sampler,
		opts:    opts,
	}
}

// Update runs one height pass over the mesh and refreshes its normals.
// The pass is a pure function of the sampler, the grid and s, so running it
// twice with the same Sample yields identical heights.
func (u *Updater) Update(m *Mesh, s Sample) {
	g := m.Grid
	if u.profile == nil || u.grid != g {
		u.grid = g
		u.profile = Profile(g)
	}

	freq := u.opts.StaticFrequency
	if s.animated {
		freq = u.opts.AnimatedFrequency
	}
	tz := s.seconds * u.opts.TimeScale

	for j := 0; j < g.Rows; j++ {
		amp := u.profile[j]
		row := m.Vertices[j*g.Cols : (j+1)*g.Cols]
		y := float64(j) * freq

		for i := range row {
			x := float64(i) * freq

			var n float64
			if s.animated {
				n = u.sampler.Noise3(x, y, tz)
			} else {
				n = u.sampler.Noise2(x, y)
			}

			row[i].Position[2] = float32(Map(n, 0, 1, -amp, amp))
		}
	}

	ComputeNormals(m)
}

// Profile returns the cached row amplitudes of the last grid updated.
func (u *Updater) Profile() []float64 {
	return u.profile
}
