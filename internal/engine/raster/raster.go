// Package raster draws terrain meshes on the CPU. It backs the image export
// when no OpenGL context is available and in tests.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/engine/view"
)

// ClearColor is the export background: white with zero alpha.
var ClearColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// maxPixels caps a single target at 64 megapixels.
const maxPixels = 1 << 26

// Renderer is a wireframe software rasterizer.
type Renderer struct {
	Background color.NRGBA
}

// New returns a renderer clearing to ClearColor.
func New() *Renderer {
	return &Renderer{Background: ClearColor}
}

// RenderOffscreen draws the wireframe of m, placed by model under a screen
// perspective for a w x h target, and returns the pixels. The mesh is only
// read.
func (r *Renderer) RenderOffscreen(m *terrain.Mesh, model mgl32.Mat4, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 || w*h > maxPixels {
		return nil, fmt.Errorf("raster: cannot allocate %dx%d target", w, h)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, r.Background)

	cam := view.ScreenPerspective(w, h)
	mvp := cam.MVP(model)

	clip := make([]mgl32.Vec4, len(m.Vertices))
	for k := range m.Vertices {
		clip[k] = mvp.Mul4x1(mgl32.Vec3(m.Vertices[k].Position).Vec4(1))
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		r.edge(img, m, clip, a, b)
		r.edge(img, m, clip, b, c)
		r.edge(img, m, clip, c, a)
	}

	return img, nil
}

func (r *Renderer) edge(img *image.NRGBA, m *terrain.Mesh, clip []mgl32.Vec4, a, b uint32) {
	p, q, ok := clipNear(clip[a], clip[b])
	if !ok {
		return
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	x0, y0 := view.NDCToScreen(p.X()/p.W(), p.Y()/p.W(), w, h)
	x1, y1 := view.NDCToScreen(q.X()/q.W(), q.Y()/q.W(), w, h)

	col := blend(m.Vertices[a].Color, m.Vertices[b].Color)
	drawLine(img, x0, y0, x1, y1, col)
}

// clipNear clips a clip-space segment against the near plane z = -w.
func clipNear(p, q mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	dp := p.Z() + p.W()
	dq := q.Z() + q.W()

	switch {
	case dp < 0 && dq < 0:
		return p, q, false
	case dp < 0:
		p = lerp4(p, q, dp/(dp-dq))
	case dq < 0:
		q = lerp4(q, p, dq/(dq-dp))
	}

	if p.W() <= 0 || q.W() <= 0 {
		return p, q, false
	}
	return p, q, true
}

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

func blend(a, b [4]float32) color.NRGBA {
	ch := func(k int) uint8 {
		v := (a[k] + b[k]) / 2
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.NRGBA{R: ch(0), G: ch(1), B: ch(2), A: ch(3)}
}

func fill(img *image.NRGBA, c color.NRGBA) {
	px := []uint8{c.R, c.G, c.B, c.A}
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], px)
	}
}
