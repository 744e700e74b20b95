package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestScreenPerspectiveMapsPlaneToPixels(t *testing.T) {
	cam := ScreenPerspective(1024, 768)
	ident := mgl32.Ident4()

	points := [][2]float32{{0, 0}, {1024, 0}, {0, 768}, {1024, 768}, {512, 384}, {100, 700}}
	for _, p := range points {
		x, y, ok := cam.ToScreen(ident, mgl32.Vec3{p[0], p[1], 0})
		if !ok {
			t.Fatalf("point %v reported behind the camera", p)
		}
		if !near(x, p[0], 0.5) || !near(y, p[1], 0.5) {
			t.Errorf("point %v projected to (%f, %f)", p, x, y)
		}
	}
}

func TestScreenPerspectiveDistance(t *testing.T) {
	cam := ScreenPerspective(800, 600)
	want := float32(300 / math.Tan(math.Pi/6))
	if !near(cam.Distance, want, 1e-3) {
		t.Errorf("expected eye distance %f, got %f", want, cam.Distance)
	}
}

func TestToScreenBehindCamera(t *testing.T) {
	cam := ScreenPerspective(640, 480)
	if _, _, ok := cam.ToScreen(mgl32.Ident4(), mgl32.Vec3{320, 240, cam.Distance + 10}); ok {
		t.Error("expected point behind the eye to be rejected")
	}
}

func TestExportTransformKeepsCenter(t *testing.T) {
	const w, h = 1024, 1024
	cam := ScreenPerspective(w, h)
	model := ExportTransform(w, h)

	x, y, ok := cam.ToScreen(model, mgl32.Vec3{w / 2, h / 2, 0})
	if !ok || !near(x, w/2, 0.5) || !near(y, h/2, 0.5) {
		t.Errorf("terrain center projected to (%f, %f, %v)", x, y, ok)
	}
}

func TestExportTransformTiltsAway(t *testing.T) {
	const w, h = 1024, 1024
	cam := ScreenPerspective(w, h)
	model := ExportTransform(w, h)

	_, yFar, ok := cam.ToScreen(model, mgl32.Vec3{w / 2, 0, 0})
	if !ok {
		t.Fatal("first row behind the camera")
	}
	_, yNear, ok := cam.ToScreen(model, mgl32.Vec3{w / 2, h, 0})
	if !ok {
		t.Fatal("last row behind the camera")
	}

	if yFar <= 0 || yFar >= h/2 {
		t.Errorf("first row should land in the upper half, got y=%f", yFar)
	}
	if yNear <= h/2 || yNear >= h {
		t.Errorf("last row should land in the lower half, got y=%f", yNear)
	}
	// Foreshortening: the far half is squashed more than the near half.
	if h/2-yFar >= yNear-h/2 {
		t.Errorf("expected far half (%f) shorter than near half (%f)", h/2-yFar, yNear-h/2)
	}
}

func TestSceneTransformCentersMiddleColumn(t *testing.T) {
	const vw, vh = 1280, 800
	const w, h, scale = 1024, 1024, 6
	model := SceneTransform(vw, vh, w, h, scale)

	p := mgl32.TransformCoordinate(mgl32.Vec3{w/2 - scale/2, -0.2 * h, 0}, model)
	want := mgl32.Vec3{vw / 2, vh/2 + scale/2, 0}
	for k := range 3 {
		if !near(p[k], want[k], 1e-3) {
			t.Fatalf("expected %v, got %v", want, p)
		}
	}
}

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Depth())
	}

	s.Push()
	s.Translate(10, 20, 30)
	s.RotateX(45)
	if s.Top() == mgl32.Ident4() {
		t.Fatal("expected transform to change after Translate")
	}
	if err := s.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if s.Top() != mgl32.Ident4() {
		t.Errorf("expected identity after Pop, got %v", s.Top())
	}

	if err := s.Pop(); err == nil {
		t.Error("expected error popping the last transform")
	}
}

func TestStackReset(t *testing.T) {
	s := NewStack()
	s.Translate(1, 2, 3)
	s.Reset()
	if s.Top() != mgl32.Ident4() {
		t.Errorf("expected identity after Reset, got %v", s.Top())
	}
}
