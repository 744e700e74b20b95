// Package scene draws the terrain mesh with OpenGL: the interactive
// per-frame view and the off-screen export target.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrainwave/internal/engine/terrain"
)

var vertexSize = int(unsafe.Sizeof(terrain.Vertex{}))

// GLMode returns the GL primitive for a mesh mode.
func GLMode(mode terrain.PrimitiveMode) (uint32, error) {
	switch mode {
	case terrain.Triangles:
		return gl.TRIANGLES, nil
	case terrain.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	case terrain.TriangleFan:
		return gl.TRIANGLE_FAN, nil
	case terrain.Lines:
		return gl.LINES, nil
	case terrain.LineStrip:
		return gl.LINE_STRIP, nil
	case terrain.LineLoop:
		return gl.LINE_LOOP, nil
	case terrain.Points:
		return gl.POINTS, nil
	default:
		return 0, fmt.Errorf("scene: unknown primitive mode %d", int(mode))
	}
}

// MeshRenderer owns the GPU buffers of one terrain mesh. The index buffer is
// uploaded once, vertices are refreshed after every height pass.
type MeshRenderer struct {
	vao uint32
	vbo uint32
	ebo uint32

	vertexCount int
	indexCount  int32
}

// NewMeshRenderer creates the buffers and uploads m.
func NewMeshRenderer(m *terrain.Mesh) (*MeshRenderer, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, fmt.Errorf("scene: empty mesh")
	}

	mr := &MeshRenderer{
		vertexCount: len(m.Vertices),
		indexCount:  int32(len(m.Indices)),
	}

	gl.GenVertexArrays(1, &mr.vao)
	gl.BindVertexArray(mr.vao)

	gl.GenBuffers(1, &mr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.DYNAMIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// Color
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &mr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return mr, nil
}

// Upload copies the current vertices of m to the GPU.
func (mr *MeshRenderer) Upload(m *terrain.Mesh) error {
	if len(m.Vertices) != mr.vertexCount {
		return fmt.Errorf("scene: mesh has %d vertices, buffer holds %d", len(m.Vertices), mr.vertexCount)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Draw issues the index buffer with the primitive of mode.
func (mr *MeshRenderer) Draw(mode terrain.PrimitiveMode) error {
	prim, err := GLMode(mode)
	if err != nil {
		return err
	}
	gl.BindVertexArray(mr.vao)
	gl.DrawElements(prim, mr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return nil
}

// DrawWireframe draws the triangle edges.
func (mr *MeshRenderer) DrawWireframe() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.BindVertexArray(mr.vao)
	gl.DrawElements(gl.TRIANGLES, mr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Destroy releases the GPU buffers.
func (mr *MeshRenderer) Destroy() {
	if mr.vao != 0 {
		gl.DeleteVertexArrays(1, &mr.vao)
		mr.vao = 0
	}
	if mr.vbo != 0 {
		gl.DeleteBuffers(1, &mr.vbo)
		mr.vbo = 0
	}
	if mr.ebo != 0 {
		gl.DeleteBuffers(1, &mr.ebo)
		mr.ebo = 0
	}
}
