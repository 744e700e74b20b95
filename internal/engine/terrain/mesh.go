package terrain

import "math"

var white = [4]float32{1, 1, 1, 1}

// Build creates the flat terrain mesh for a grid: one vertex per grid point at
// (i*Scale, j*Scale, 0) and two triangles per interior cell.
//
// Triangle winding is fixed, the renderers rely on it for face orientation:
//
//	A: (i,j) (i+1,j) (i,j+1)
//	B: (i+1,j) (i+1,j+1) (i,j+1)
func Build(g Grid) *Mesh {
	vertices := make([]Vertex, 0, g.VertexCount())
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(i * g.Scale), float32(j * g.Scale), 0},
				Normal:   [3]float32{0, 0, 1},
				Color:    white,
			})
		}
	}

	indices := make([]uint32, 0, g.IndexCount())
	for j := 0; j < g.Rows-1; j++ {
		for i := 0; i < g.Cols-1; i++ {
			indices = append(indices,
				uint32(g.Index(i, j)),
				uint32(g.Index(i+1, j)),
				uint32(g.Index(i, j+1)),

				uint32(g.Index(i+1, j)),
				uint32(g.Index(i+1, j+1)),
				uint32(g.Index(i, j+1)),
			)
		}
	}

	return &Mesh{
		Grid:     g,
		Vertices: vertices,
		Indices:  indices,
		Mode:     Triangles,
	}
}

// SetMode changes how the mesh is drawn. Geometry is untouched.
func (m *Mesh) SetMode(mode PrimitiveMode) {
	m.Mode = mode
}

// Vertex returns the vertex at grid point (i, j).
func (m *Mesh) Vertex(i, j int) Vertex {
	return m.Vertices[m.Grid.Index(i, j)]
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ComputeNormals derives per-vertex normals from the height field using
// central differences (one-sided on the border).
func ComputeNormals(m *Mesh) {
	g := m.Grid
	step := float32(g.Scale)
	z := func(i, j int) float32 {
		return m.Vertices[g.Index(i, j)].Position[2]
	}

	for j := 0; j < g.Rows; j++ {
		j0, j1 := max(j-1, 0), min(j+1, g.Rows-1)
		for i := 0; i < g.Cols; i++ {
			i0, i1 := max(i-1, 0), min(i+1, g.Cols-1)

			dzdx := (z(i1, j) - z(i0, j)) / (float32(i1-i0) * step)
			dzdy := (z(i, j1) - z(i, j0)) / (float32(j1-j0) * step)

			m.Vertices[g.Index(i, j)].Normal = normalize([3]float32{-dzdx, -dzdy, 1})
		}
	}
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l < 1e-6 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
