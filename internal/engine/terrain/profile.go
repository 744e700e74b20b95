package terrain

import "math"

// Amplitude returns the maximum height displacement for row j.
// Row 0 gets MaxAmplitude and the last row approaches MinAmplitude;
// the exponent bends the curve so the drop concentrates near row 0.
func Amplitude(g Grid, j int) float64 {
	t := float64(g.Rows-j) / float64(g.Rows)
	t = math.Pow(t, g.Exponent)
	return t*(g.MaxAmplitude-g.MinAmplitude) + g.MinAmplitude
}

// Profile evaluates Amplitude once for every row.
func Profile(g Grid) []float64 {
	amps := make([]float64, g.Rows)
	for j := range amps {
		amps[j] = Amplitude(g, j)
	}
	return amps
}

// Map linearly remaps v from [inMin, inMax] to [outMin, outMax].
// Values outside the input range are extrapolated, not clamped.
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
