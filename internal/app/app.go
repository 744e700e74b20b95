// Package app wires the terrain, the startup export and the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrainwave/internal/config"
	"github.com/Faultbox/terrainwave/internal/engine/input"
	"github.com/Faultbox/terrainwave/internal/engine/lighting"
	"github.com/Faultbox/terrainwave/internal/engine/raster"
	"github.com/Faultbox/terrainwave/internal/engine/scene"
	"github.com/Faultbox/terrainwave/internal/engine/terrain"
	"github.com/Faultbox/terrainwave/internal/engine/window"
	"github.com/Faultbox/terrainwave/internal/export"
	"github.com/Faultbox/terrainwave/internal/logger"
	"github.com/Faultbox/terrainwave/internal/noise"
)

// App is the running terrain viewer.
type App struct {
	input.NopHandler

	cfg     *config.Config
	mesh    *terrain.Mesh
	updater *terrain.Updater
	light   *lighting.Light

	// Nil when headless.
	window   *window.Window
	renderer *scene.Renderer
	input    *input.Input

	running bool
	log     *zap.Logger
}

// New builds the mesh, runs the startup height pass and, unless headless,
// opens the window.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}

	sampler, err := noise.New(cfg.NoiseConfig())
	if err != nil {
		return nil, err
	}

	a.mesh = terrain.Build(grid)
	a.updater = terrain.NewUpdater(sampler, cfg.UpdaterOptions())
	a.updater.Update(a.mesh, terrain.Static)

	stats := terrain.Summarize(a.mesh)
	a.log.Info("terrain built",
		zap.Int("cols", grid.Cols),
		zap.Int("rows", grid.Rows),
		zap.Int("vertices", len(a.mesh.Vertices)),
		zap.Int("triangles", a.mesh.TriangleCount()),
		zap.String("noise", cfg.Noise.Backend),
		zap.Float64("min_z", stats.MinZ),
		zap.Float64("max_z", stats.MaxZ),
		zap.Float64("mean_z", stats.MeanZ),
		zap.Float64("stddev_z", stats.StdDevZ),
	)

	l := cfg.Light
	a.light = lighting.New(l.Diffuse, l.Specular, l.Ambient, l.Shininess, l.Swing)

	if cfg.Window.Headless {
		return a, nil
	}

	if err := a.openWindow(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) openWindow() error {
	var err error
	a.window, err = window.New(window.Config{
		Title:      a.cfg.Window.Title,
		Width:      a.cfg.Window.Width,
		Height:     a.cfg.Window.Height,
		Fullscreen: a.cfg.Window.Fullscreen,
		VSync:      a.cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	// GL calls are only valid once the window's context exists.
	if err := scene.InitGL(); err != nil {
		return err
	}

	a.renderer, err = scene.NewRenderer(a.mesh, a.light)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	a.Resize(a.window.Size())

	a.input = input.New(a)
	return nil
}

// Mesh returns the terrain mesh.
func (a *App) Mesh() *terrain.Mesh {
	return a.mesh
}

// Resize keeps the projection and viewport in step with the window.
func (a *App) Resize(w, h int) {
	if a.renderer == nil {
		return
	}
	fbw, fbh := a.window.DrawableSize()
	a.renderer.Resize(w, h, fbw, fbh)
	a.log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
}

// Export writes the startup snapshots. With a window open they are drawn
// by OpenGL, otherwise by the software rasterizer.
func (a *App) Export() ([]string, error) {
	if !a.cfg.Export.Enabled {
		return nil, nil
	}

	var r export.Renderer = raster.New()
	if a.renderer != nil {
		r = a.renderer.Offscreen()
	}

	ex := export.New(r, export.Options{
		Dir:        a.cfg.Export.Dir,
		Format:     a.cfg.Export.Format,
		HeightsCSV: a.cfg.Export.HeightsCSV,
	})
	return ex.Export(a.mesh)
}

// Run exports the snapshots and then animates the terrain until the window
// is closed. Headless runs return after the export. Export failures are
// logged and do not stop the loop.
func (a *App) Run() error {
	written, err := a.Export()
	if err != nil {
		a.log.Error("export failed", zap.Error(err), zap.Strings("written", written))
	} else if len(written) > 0 {
		a.log.Info("export complete", zap.Strings("files", written))
	}

	if a.window == nil {
		return err
	}
	return a.loop()
}

func (a *App) loop() error {
	a.running = true

	start := time.Now()
	frameCount := 0
	fpsTimer := start

	a.log.Info("starting frame loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		t := time.Since(start).Seconds()
		a.Step(t)

		if err := a.renderer.Upload(a.mesh); err != nil {
			return fmt.Errorf("upload error: %w", err)
		}
		if err := a.renderer.Draw(a.mesh); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("t", t))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Step advances the terrain and the light to t seconds after start.
func (a *App) Step(t float64) {
	a.updater.Update(a.mesh, terrain.At(t))
	a.light.Update(t)
}

// Close releases the renderer and the window.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Destroy()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
