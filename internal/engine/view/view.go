// Package view builds the projection and model transforms used to draw the
// terrain. Coordinates follow screen conventions: the origin is the top-left
// corner of the target and Y grows downwards.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FieldOfView is the vertical field of view of the screen perspective, in degrees.
const FieldOfView = 60

// Camera holds the projection and view matrices for a render target.
type Camera struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Width      int
	Height     int
	Distance   float32 // eye distance from the z=0 plane
}

// ScreenPerspective returns a camera looking down -Z at the center of a w x h
// target, placed so that the z=0 plane maps one unit to one pixel.
func ScreenPerspective(w, h int) Camera {
	fw, fh := float32(max(w, 1)), float32(max(h, 1))
	eyeX, eyeY := fw/2, fh/2

	halfFov := float64(mgl32.DegToRad(FieldOfView)) / 2
	dist := eyeY / float32(math.Tan(halfFov))

	proj := mgl32.Perspective(mgl32.DegToRad(FieldOfView), fw/fh, dist/10, dist*10)
	look := mgl32.LookAt(eyeX, eyeY, dist, eyeX, eyeY, 0, 0, 1, 0)

	// y' = h - y, so screen row 0 is the top edge.
	flip := mgl32.Scale3D(1, -1, 1).Mul4(mgl32.Translate3D(0, -fh, 0))

	return Camera{
		Projection: proj,
		View:       look.Mul4(flip),
		Width:      w,
		Height:     h,
		Distance:   dist,
	}
}

// MVP returns Projection * View * model.
func (c Camera) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return c.Projection.Mul4(c.View).Mul4(model)
}

// ToScreen projects a model-space point to pixel coordinates with the origin
// at the top-left. ok is false when the point is behind the near plane.
func (c Camera) ToScreen(model mgl32.Mat4, p mgl32.Vec3) (x, y float32, ok bool) {
	clip := c.MVP(model).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 || clip.Z() < -clip.W() {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x, y = NDCToScreen(ndc.X(), ndc.Y(), c.Width, c.Height)
	return x, y, true
}

// NDCToScreen maps normalized device coordinates to pixel coordinates.
func NDCToScreen(nx, ny float32, w, h int) (x, y float32) {
	return (nx + 1) / 2 * float32(w), (1 - ny) / 2 * float32(h)
}

// ExportTransform centers a width x height terrain in a target of the same
// size and tilts it 75 degrees about X.
func ExportTransform(width, height int) mgl32.Mat4 {
	s := NewStack()
	s.Translate(float32(width)/2, float32(height)/2, 0)
	s.RotateX(75)
	s.Translate(-float32(width)/2, -float32(height)/2, 0)
	return s.Top()
}

// SceneTransform places the terrain in a viewW x viewH window: centered
// horizontally on the middle column, tilted 70 degrees about X and pushed
// 20% of its depth away from the viewer.
func SceneTransform(viewW, viewH, width, height, scale int) mgl32.Mat4 {
	s := NewStack()
	ApplySceneTransform(s, viewW, viewH, width, height, scale)
	return s.Top()
}

// ApplySceneTransform multiplies the scene placement onto the top of s.
func ApplySceneTransform(s *Stack, viewW, viewH, width, height, scale int) {
	half := float32(scale) / 2
	s.Translate(float32(viewW)/2-float32(width)/2+half, float32(viewH)/2+half, 0)
	s.RotateX(70)
	s.Translate(0, float32(height)*0.2, 0)
}
