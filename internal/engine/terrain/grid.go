package terrain

import "fmt"

// NewGrid validates the parameters and derives the column and row counts.
// Cols and Rows use integer division, so 1024/6 gives 170.
func NewGrid(scale, width, height int, exponent, minAmplitude, maxAmplitude float64) (Grid, error) {
	if scale <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}

	g := Grid{
		Scale:        scale,
		Width:        width,
		Height:       height,
		Cols:         width / scale,
		Rows:         height / scale,
		Exponent:     exponent,
		MinAmplitude: minAmplitude,
		MaxAmplitude: maxAmplitude,
	}

	if g.Cols < 2 || g.Rows < 2 {
		return Grid{}, fmt.Errorf("%w: %dx%d world units at scale %d gives %dx%d cells",
			ErrDegenerateGrid, width, height, scale, g.Cols, g.Rows)
	}
	if exponent < 0 {
		return Grid{}, fmt.Errorf("%w: got %g", ErrInvalidExponent, exponent)
	}
	if minAmplitude < 0 || minAmplitude > maxAmplitude {
		return Grid{}, fmt.Errorf("%w: min %g, max %g", ErrInvalidAmplitude, minAmplitude, maxAmplitude)
	}

	return g, nil
}

// VertexCount returns Cols*Rows.
func (g Grid) VertexCount() int {
	return g.Cols * g.Rows
}

// IndexCount returns the length of the triangle index buffer,
// two triangles for every interior cell.
func (g Grid) IndexCount() int {
	return 6 * (g.Cols - 1) * (g.Rows - 1)
}

// Index returns the flat vertex index of grid point (i, j).
func (g Grid) Index(i, j int) int {
	return i + j*g.Cols
}
