// Package lighting holds the single light of the terrain scene.
package lighting

import "math"

// Light is a positional light with Phong colors. Position is in terrain
// model space, so it moves with the terrain transform.
type Light struct {
	Diffuse   [3]float32
	Specular  [3]float32
	Ambient   float32
	Shininess float32
	Position  [3]float32

	// Swing is the height of the vertical oscillation driven by Update.
	Swing float32
}

// New creates a light resting at the model origin.
func New(diffuse, specular [3]float32, ambient, shininess, swing float32) *Light {
	return &Light{
		Diffuse:   diffuse,
		Specular:  specular,
		Ambient:   ambient,
		Shininess: shininess,
		Swing:     swing,
	}
}

// Update moves the light to (0, sin(t)*Swing, 0) for t elapsed seconds.
func (l *Light) Update(seconds float64) {
	l.Position = [3]float32{0, float32(math.Sin(seconds)) * l.Swing, 0}
}
