package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainwave/internal/engine/lighting"
	"github.com/Faultbox/terrainwave/internal/engine/scene/shaders"
	"github.com/Faultbox/terrainwave/internal/engine/shader"
	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/engine/view"
	"github.com/Faultbox/terrainwave/internal/logger"
)

// Backdrop gradient, center to corners.
var (
	BackgroundInner = [3]float32{40.0 / 255, 40.0 / 255, 40.0 / 255}
	BackgroundOuter = [3]float32{0, 0, 0}
)

// WireColor is the flat color of the wireframe overlay.
var WireColor = [4]float32{1, 1, 1, 1}

// InitGL loads the OpenGL function pointers. Call it once after the window
// has made its context current.
func InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// Renderer draws one frame of the terrain: backdrop, lit mesh in its current
// mode, then an unlit wireframe overlay.
type Renderer struct {
	program    *shader.Program
	background *shader.Program
	bgVAO      uint32

	mesh  *MeshRenderer
	light *lighting.Light
	stack *view.Stack

	// Window size drives the projection, drawable size the viewport.
	width, height     int
	fbWidth, fbHeight int

	PointSize float32

	log *zap.Logger
}

// NewRenderer compiles the shaders and uploads m. A GL context must be current.
func NewRenderer(m *terrain.Mesh, light *lighting.Light) (*Renderer, error) {
	program, err := shader.New(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}

	background, err := shader.New(shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("background shader: %w", err)
	}

	mesh, err := NewMeshRenderer(m)
	if err != nil {
		program.Delete()
		background.Delete()
		return nil, err
	}

	r := &Renderer{
		program:    program,
		background: background,
		mesh:       mesh,
		light:      light,
		stack:      view.NewStack(),
		PointSize:  2,
		log:        logger.Named("scene"),
	}
	// Core profile refuses draws without a bound VAO, even an empty one.
	gl.GenVertexArrays(1, &r.bgVAO)

	r.log.Debug("renderer ready",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Uint32("program", program.ID()))

	return r, nil
}

// Resize records the window size and the drawable size in pixels.
func (r *Renderer) Resize(width, height, fbWidth, fbHeight int) {
	r.width, r.height = width, height
	r.fbWidth, r.fbHeight = fbWidth, fbHeight
}

// Upload refreshes the vertex buffer after a height pass.
func (r *Renderer) Upload(m *terrain.Mesh) error {
	return r.mesh.Upload(m)
}

// Draw renders one frame. The mesh is only read. Transform and lighting
// state are scoped to the call.
func (r *Renderer) Draw(m *terrain.Mesh) error {
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.drawBackground()

	r.stack.Push()
	defer func() {
		if err := r.stack.Pop(); err != nil {
			r.log.Error("transform stack", zap.Error(err))
		}
	}()

	g := m.Grid
	view.ApplySceneTransform(r.stack, r.width, r.height, g.Width, g.Height, g.Scale)

	cam := view.ScreenPerspective(r.width, r.height)
	modelView := cam.View.Mul4(r.stack.Top())

	r.program.Use()
	r.setTransform(cam.Projection, modelView)
	r.program.SetFloat("uPointSize", r.PointSize)

	r.setLight(modelView)
	r.program.SetBool("uLighting", true)
	r.program.SetVec4("uColor", [4]float32{1, 1, 1, 1})
	if err := r.mesh.Draw(m.Mode); err != nil {
		return err
	}

	r.program.SetBool("uLighting", false)
	r.program.SetVec4("uColor", WireColor)
	r.mesh.DrawWireframe()

	return nil
}

func (r *Renderer) drawBackground() {
	gl.ClearColor(BackgroundOuter[0], BackgroundOuter[1], BackgroundOuter[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.background.Use()
	r.background.SetVec2("uResolution", float32(r.fbWidth), float32(r.fbHeight))
	r.background.SetVec3("uInner", BackgroundInner)
	r.background.SetVec3("uOuter", BackgroundOuter)

	gl.BindVertexArray(r.bgVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (r *Renderer) setTransform(projection, modelView mgl32.Mat4) {
	r.program.SetMat4("uMVP", projection.Mul4(modelView))
	r.program.SetMat4("uModelView", modelView)
	r.program.SetMat3("uNormalMatrix", mgl32.Mat4Normal(modelView))
}

// setLight uploads the light with its position moved to eye space.
func (r *Renderer) setLight(modelView mgl32.Mat4) {
	l := r.light
	pos := mgl32.TransformCoordinate(mgl32.Vec3(l.Position), modelView)

	r.program.SetVec3("uLightPos", pos)
	r.program.SetVec3("uDiffuse", l.Diffuse)
	r.program.SetVec3("uSpecular", l.Specular)
	r.program.SetFloat("uAmbient", l.Ambient)
	r.program.SetFloat("uShininess", l.Shininess)
}

// Offscreen returns an export renderer sharing this renderer's shaders.
func (r *Renderer) Offscreen() *Offscreen {
	return &Offscreen{program: r.program}
}

// Destroy releases GL resources.
func (r *Renderer) Destroy() {
	if r.mesh != nil {
		r.mesh.Destroy()
	}
	if r.bgVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bgVAO)
		r.bgVAO = 0
	}
	r.program.Delete()
	r.background.Delete()
}
