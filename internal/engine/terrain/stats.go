package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reports the spread of the current heights.
func Summarize(m *Mesh) Stats {
	if len(m.Vertices) == 0 {
		return Stats{}
	}

	zs := make([]float64, len(m.Vertices))
	for i := range m.Vertices {
		zs[i] = float64(m.Vertices[i].Position[2])
	}

	mean, std := stat.MeanStdDev(zs, nil)
	return Stats{
		MinZ:    floats.Min(zs),
		MaxZ:    floats.Max(zs),
		MeanZ:   mean,
		StdDevZ: std,
	}
}
