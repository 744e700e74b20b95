package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrainwave/internal/engine/framebuffer"
	"github.com/Faultbox/terrainwave/internal/engine/shader"
	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/engine/view"
)

// Offscreen renders mesh wireframes into a GL framebuffer and reads them
// back for export.
type Offscreen struct {
	program *shader.Program
}

// RenderOffscreen draws the wireframe of m into a fresh w x h framebuffer
// cleared to transparent white. The framebuffer and mesh buffers are
// released before returning.
func (o *Offscreen) RenderOffscreen(m *terrain.Mesh, model mgl32.Mat4, w, h int) (*image.NRGBA, error) {
	fb, err := framebuffer.New(int32(w), int32(h))
	if err != nil {
		return nil, err
	}
	defer fb.Destroy()

	mesh, err := NewMeshRenderer(m)
	if err != nil {
		return nil, err
	}
	defer mesh.Destroy()

	restore := fb.BindWithViewport()
	defer restore()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	fb.Clear(1, 1, 1, 0)

	cam := view.ScreenPerspective(w, h)
	modelView := cam.View.Mul4(model)

	o.program.Use()
	o.program.SetMat4("uMVP", cam.Projection.Mul4(modelView))
	o.program.SetMat4("uModelView", modelView)
	o.program.SetMat3("uNormalMatrix", mgl32.Mat4Normal(modelView))
	o.program.SetBool("uLighting", false)
	o.program.SetVec4("uColor", [4]float32{1, 1, 1, 1})

	mesh.DrawWireframe()

	img, err := fb.ReadImage()
	if err != nil {
		return nil, fmt.Errorf("reading framebuffer: %w", err)
	}
	return img, nil
}
