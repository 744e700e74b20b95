// Package terrain builds and animates the procedural height-field mesh.
package terrain

import (
	"errors"
	"fmt"
)

// Grid configuration errors.
var (
	ErrInvalidScale     = errors.New("terrain: scale must be positive")
	ErrDegenerateGrid   = errors.New("terrain: grid needs at least 2 columns and 2 rows")
	ErrInvalidExponent  = errors.New("terrain: exponent must not be negative")
	ErrInvalidAmplitude = errors.New("terrain: amplitudes must satisfy 0 <= min <= max")
)

// PrimitiveMode selects how a mesh's index buffer is interpreted when drawn.
// The numeric values are stable: exported snapshot names embed them.
type PrimitiveMode int

const (
	Triangles PrimitiveMode = iota
	TriangleStrip
	TriangleFan
	Lines
	LineStrip
	LineLoop
	Points
)

func (m PrimitiveMode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case LineLoop:
		return "line_loop"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Grid is the immutable layout of the terrain. Build one with NewGrid.
type Grid struct {
	Scale  int // world units per cell
	Width  int // world units
	Height int // world units
	Cols   int // Width / Scale
	Rows   int // Height / Scale

	Exponent     float64
	MinAmplitude float64
	MaxAmplitude float64
}

// Vertex is one grid point. Layout matches the GL vertex attributes:
// position at location 0, normal at 1, color at 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]float32
}

// Mesh holds the terrain vertices and the static triangle index buffer.
// Vertex (i, j) is stored at Vertices[i+j*Grid.Cols].
type Mesh struct {
	Grid     Grid
	Vertices []Vertex
	Indices  []uint32
	Mode     PrimitiveMode
}

// Stats summarizes the current height field.
type Stats struct {
	MinZ    float64
	MaxZ    float64
	MeanZ   float64
	StdDevZ float64
}
