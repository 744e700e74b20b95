package export

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gocarina/gocsv"
	"go.uber.org/multierr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Faultbox/terrainwave/internal/engine/raster"
	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/noise"
)

func testMesh(t *testing.T) *terrain.Mesh {
	t.Helper()
	g, err := terrain.NewGrid(8, 160, 120, 3, 16, 48)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	s, err := noise.New(noise.Config{Seed: 11})
	if err != nil {
		t.Fatalf("noise.New: %v", err)
	}
	m := terrain.Build(g)
	terrain.NewUpdater(s, terrain.DefaultUpdaterOptions()).Update(m, terrain.Static)
	return m
}

// recordingRenderer remembers the mode of every call and can fail on demand.
type recordingRenderer struct {
	inner  Renderer
	modes  []terrain.PrimitiveMode
	failAt int // 1-based call that fails, 0 never
}

func (r *recordingRenderer) RenderOffscreen(m *terrain.Mesh, model mgl32.Mat4, w, h int) (*image.NRGBA, error) {
	r.modes = append(r.modes, m.Mode)
	if len(r.modes) == r.failAt {
		return nil, errors.New("framebuffer incomplete")
	}
	return r.inner.RenderOffscreen(m, model, w, h)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		mode   terrain.PrimitiveMode
		format string
		want   string
	}{
		{terrain.Triangles, "png", "terrain_0.png"},
		{terrain.Lines, "png", "terrain_3.png"},
		{terrain.Points, "png", "terrain_6.png"},
		{terrain.Lines, "TIFF", "terrain_3.tiff"},
		{terrain.Points, "bmp", "terrain_6.bmp"},
	}
	for _, tt := range tests {
		if got := FileName(tt.mode, tt.format); got != tt.want {
			t.Errorf("FileName(%v, %s) = %s, want %s", tt.mode, tt.format, got, tt.want)
		}
	}
}

func TestExportWritesThreeImages(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			m := testMesh(t)
			rec := &recordingRenderer{inner: raster.New()}

			written, err := New(rec, Options{Dir: dir, Format: format}).Export(m)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if len(written) != 3 {
				t.Fatalf("expected 3 files, got %v", written)
			}

			want := []terrain.PrimitiveMode{terrain.Triangles, terrain.Lines, terrain.Points}
			for k, mode := range want {
				if rec.modes[k] != mode {
					t.Errorf("call %d: expected mode %v, got %v", k, mode, rec.modes[k])
				}

				path := filepath.Join(dir, FileName(mode, format))
				f, err := os.Open(path)
				if err != nil {
					t.Fatalf("open %s: %v", path, err)
				}
				cfg, got, err := image.DecodeConfig(f)
				f.Close()
				if err != nil {
					t.Fatalf("decode %s: %v", path, err)
				}
				if got != format {
					t.Errorf("%s: expected %s, decoded as %s", path, format, got)
				}
				if cfg.Width != 160 || cfg.Height != 120 {
					t.Errorf("%s: expected 160x120, got %dx%d", path, cfg.Width, cfg.Height)
				}
			}

			if m.Mode != terrain.Triangles {
				t.Errorf("expected mode reset to triangles, got %v", m.Mode)
			}
		})
	}
}

func TestExportPNGKeepsTransparentWhite(t *testing.T) {
	dir := t.TempDir()
	m := testMesh(t)

	if _, err := New(raster.New(), Options{Dir: dir}).Export(m); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "terrain_0.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected NRGBA png, got %T", img)
	}
	if c := nrgba.NRGBAAt(0, 0); c != raster.ClearColor {
		t.Errorf("expected (255,255,255,0) background, got %v", c)
	}
}

func TestExportRenderFailureAborts(t *testing.T) {
	dir := t.TempDir()
	m := testMesh(t)
	rec := &recordingRenderer{inner: raster.New(), failAt: 2}

	written, err := New(rec, Options{Dir: dir}).Export(m)
	if err == nil {
		t.Fatal("expected render error")
	}
	if len(written) != 1 {
		t.Errorf("expected only the first snapshot, got %v", written)
	}
	if len(rec.modes) != 2 {
		t.Errorf("expected export to stop after the failing render, got %d calls", len(rec.modes))
	}
	if _, statErr := os.Stat(filepath.Join(dir, "terrain_6.png")); !os.IsNotExist(statErr) {
		t.Error("expected no points snapshot after abort")
	}
	if m.Mode != terrain.Triangles {
		t.Errorf("expected mode reset to triangles, got %v", m.Mode)
	}
}

func TestExportWriteErrorsAreCollected(t *testing.T) {
	dir := t.TempDir()
	m := testMesh(t)

	// A directory in the way of the lines snapshot makes only that write fail.
	if err := os.Mkdir(filepath.Join(dir, "terrain_3.png"), 0755); err != nil {
		t.Fatal(err)
	}

	rec := &recordingRenderer{inner: raster.New()}
	written, err := New(rec, Options{Dir: dir}).Export(m)
	if err == nil {
		t.Fatal("expected write error")
	}
	if n := len(multierr.Errors(err)); n != 1 {
		t.Errorf("expected 1 collected error, got %d: %v", n, err)
	}
	if len(rec.modes) != 3 {
		t.Errorf("expected all modes rendered, got %d", len(rec.modes))
	}
	if len(written) != 2 {
		t.Errorf("expected 2 files written, got %v", written)
	}
	if m.Mode != terrain.Triangles {
		t.Errorf("expected mode reset to triangles, got %v", m.Mode)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	m := testMesh(t)
	m.SetMode(terrain.Points)

	_, err := New(raster.New(), Options{Dir: t.TempDir(), Format: "gif"}).Export(m)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if m.Mode != terrain.Triangles {
		t.Errorf("expected mode reset to triangles, got %v", m.Mode)
	}
}

func TestExportHeightsCSV(t *testing.T) {
	dir := t.TempDir()
	m := testMesh(t)

	written, err := New(raster.New(), Options{Dir: dir, HeightsCSV: "heights.csv"}).Export(m)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != 4 {
		t.Fatalf("expected 3 images and 1 csv, got %v", written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "heights.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("i,j,x,y,z,amplitude\n")) {
		t.Errorf("unexpected header: %q", bytes.SplitN(data, []byte("\n"), 2)[0])
	}

	var records []HeightRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		t.Fatalf("UnmarshalBytes: %v", err)
	}
	if len(records) != len(m.Vertices) {
		t.Fatalf("expected %d records, got %d", len(m.Vertices), len(records))
	}

	g := m.Grid
	last := records[len(records)-1]
	if last.I != g.Cols-1 || last.J != g.Rows-1 {
		t.Errorf("expected last record at (%d,%d), got (%d,%d)", g.Cols-1, g.Rows-1, last.I, last.J)
	}
	for k, r := range records {
		if r.Z < -float32(r.Amplitude)-1e-3 || r.Z > float32(r.Amplitude)+1e-3 {
			t.Fatalf("record %d: z=%f outside ±%f", k, r.Z, r.Amplitude)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := Encode(&bytes.Buffer{}, img, "jpeg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
