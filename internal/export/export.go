// Package export writes startup snapshots of the terrain mesh to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/engine/view"
	"github.com/Faultbox/terrainwave/internal/logger"
)

// ErrUnknownFormat is returned for an unsupported image format.
var ErrUnknownFormat = errors.New("export: unknown image format")

// Modes are the primitive modes snapshotted at startup, in export order.
var Modes = []terrain.PrimitiveMode{terrain.Triangles, terrain.Lines, terrain.Points}

// Renderer draws a mesh into an off-screen w x h target and returns its
// pixels with the origin at the top-left. It must not modify the mesh.
type Renderer interface {
	RenderOffscreen(m *terrain.Mesh, model mgl32.Mat4, w, h int) (*image.NRGBA, error)
}

// Options configures an Exporter.
type Options struct {
	Dir        string // output directory, created if missing
	Format     string // png, bmp or tiff
	HeightsCSV string // optional heights dump, relative to Dir
}

// Exporter renders the mesh once per mode and writes terrain_<mode>.<ext>.
type Exporter struct {
	renderer Renderer
	opts     Options
	log      *zap.Logger
}

// New creates an exporter. An empty format means png.
func New(r Renderer, opts Options) *Exporter {
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	opts.Format = strings.ToLower(opts.Format)
	return &Exporter{
		renderer: r,
		opts:     opts,
		log:      logger.Named("export"),
	}
}

// FileName returns the snapshot name for a mode, e.g. terrain_3.png.
func FileName(mode terrain.PrimitiveMode, format string) string {
	return fmt.Sprintf("terrain_%d.%s", int(mode), strings.ToLower(format))
}

// Export writes one snapshot per entry of Modes and returns the paths that
// were written.
//
// A render failure aborts the export. Encode and file errors are collected
// and the remaining modes are still written. The mesh mode is Triangles on
// every return path.
func (e *Exporter) Export(m *terrain.Mesh) (written []string, err error) {
	defer m.SetMode(terrain.Triangles)

	if _, ok := encoders[e.opts.Format]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, e.opts.Format)
	}
	if e.opts.Dir != "" {
		if err := os.MkdirAll(e.opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	w, h := m.Grid.Width, m.Grid.Height
	model := view.ExportTransform(w, h)

	for _, mode := range Modes {
		m.SetMode(mode)

		// Snapshots are always drawn as wireframe, whatever the mode.
		img, rerr := e.renderer.RenderOffscreen(m, model, w, h)
		if rerr != nil {
			return written, multierr.Append(err, fmt.Errorf("rendering %s: %w", mode, rerr))
		}

		path := e.path(FileName(mode, e.opts.Format))
		if werr := writeImage(path, img, e.opts.Format); werr != nil {
			e.log.Warn("snapshot failed", zap.Stringer("mode", mode), zap.Error(werr))
			err = multierr.Append(err, fmt.Errorf("writing %s: %w", path, werr))
			continue
		}

		e.log.Info("snapshot written",
			zap.Stringer("mode", mode),
			zap.String("path", path),
			zap.Int("width", w),
			zap.Int("height", h))
		written = append(written, path)
	}

	if e.opts.HeightsCSV != "" {
		path := e.path(e.opts.HeightsCSV)
		if herr := WriteHeights(path, m); herr != nil {
			err = multierr.Append(err, fmt.Errorf("writing %s: %w", path, herr))
		} else {
			e.log.Info("heights written", zap.String("path", path), zap.Int("vertices", len(m.Vertices)))
			written = append(written, path)
		}
	}

	return written, err
}

func (e *Exporter) path(name string) string {
	if e.opts.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(e.opts.Dir, name)
}
