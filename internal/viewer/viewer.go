// Package viewer implements the interactive model viewer: the frame loop,
// model loading and camera controls.
package viewer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/goassimp/internal/assets"
	"github.com/Faultbox/goassimp/internal/camera"
	"github.com/Faultbox/goassimp/internal/config"
	"github.com/Faultbox/goassimp/internal/input"
	"github.com/Faultbox/goassimp/internal/model"
	"github.com/Faultbox/goassimp/internal/render"
	"github.com/Faultbox/goassimp/internal/window"
	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/math"
)

const title = "goassimp viewer"

// Viewer is the main viewer instance.
type Viewer struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *render.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	controls controls
	opts     render.Options
	bounds   math.AABB // of the current model
	shots    screenshots
	capture  bool
}

// New creates the window and GL renderer.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	log.Info("initializing viewer",
		zap.Int("width", cfg.Viewer.Width),
		zap.Int("height", cfg.Viewer.Height),
		zap.Bool("fullscreen", cfg.Viewer.Fullscreen),
	)

	v := &Viewer{
		cfg:    cfg,
		log:    log,
		camera: camera.NewOrbitCamera(),
		opts:   render.DefaultOptions(),
	}
	v.opts.Wireframe = cfg.Viewer.Wireframe
	v.opts.Background = cfg.Viewer.Background
	v.controls = controls{cam: v.camera, opts: &v.opts}
	v.shots = screenshots{dir: cfg.Viewer.ScreenshotDir, prefix: "model", now: time.Now}

	// Window first, it owns the GL context
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = render.New(log)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	log.Info("viewer initialized")
	return v, nil
}

// Open imports the model at path with the configured profile and uploads
// it, replacing the current model. On failure the current model stays.
func (v *Viewer) Open(path string) error {
	start := time.Now()

	m, name, err := assets.ForModel(path, v.cfg.Data.Archives)
	if err != nil {
		return err
	}
	defer m.Close()

	imp := assimp.NewImporter()
	defer imp.Close()
	if err := v.cfg.Import.Apply(imp); err != nil {
		return err
	}
	imp.Enable(model.RequiredSteps(imp.Flags()))

	scene, err := imp.ReadFileFrom(m, name)
	if err != nil {
		return err
	}
	defer scene.Release()

	mesh := model.Build(scene, model.BuildOptions{
		UVChannel:          v.cfg.Viewer.UVChannel,
		SkipLinesAndPoints: v.cfg.Viewer.SkipLinesAndPoints,
	})
	if mesh == nil {
		return fmt.Errorf("%s: scene has no geometry", path)
	}
	if err := v.renderer.Load(mesh, textureSource(scene, m.ReadFile)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	v.bounds = mesh.Bounds
	v.camera.FitToBounds(mesh.Bounds)
	v.window.SetTitle(fmt.Sprintf("%s - %s", title, filepath.Base(path)))
	v.shots.prefix = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	stats := mesh.CountTriangles()
	hits, misses := m.CacheStats()
	v.log.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int("groups", stats.Groups),
		zap.Int("materials", len(mesh.Materials)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Run starts the frame loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	var frameBudget time.Duration
	if v.cfg.Viewer.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Viewer.FPSLimit)
	}
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop")

	for v.running {
		frameStart := time.Now()

		if v.input.Update() {
			v.running = false
			break
		}
		for _, ev := range v.input.Events() {
			v.handle(ev)
		}

		width, height := v.window.DrawableSize()
		aspect := float32(1)
		if height > 0 {
			aspect = float32(width) / float32(height)
		}
		v.renderer.Render(width, height, v.camera.ViewMatrix(), v.camera.ProjectionMatrix(aspect), v.opts)
		if v.capture {
			v.capture = false
			v.screenshot(width, height)
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (v *Viewer) handle(ev input.Event) {
	if ev.Type == input.EventFileDrop {
		if err := v.Open(ev.Path); err != nil {
			v.log.Error("failed to open dropped file", zap.String("path", ev.Path), zap.Error(err))
		}
		return
	}

	switch v.controls.handle(ev) {
	case actionQuit:
		v.running = false
	case actionFullscreen:
		if err := v.window.ToggleFullscreen(); err != nil {
			v.log.Warn("failed to toggle fullscreen", zap.Error(err))
		}
	case actionResetCamera:
		v.camera.FitToBounds(v.bounds)
	case actionScreenshot:
		v.capture = true
	}
}

func (v *Viewer) screenshot(width, height int) {
	name, err := v.shots.save(v.renderer.ReadPixels(width, height), width, height)
	if err != nil {
		v.log.Error("failed to save screenshot", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
