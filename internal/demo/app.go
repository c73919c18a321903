// Package demo runs the interactive scene: the GUI-hosted frame loop, the
// debug panel and the stats overlay.
package demo

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/assets"
	"github.com/Faultbox/primscene/internal/config"
	"github.com/Faultbox/primscene/internal/demo/hud"
	"github.com/Faultbox/primscene/internal/demo/preset"
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/debug"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/renderer"
	"github.com/Faultbox/primscene/internal/engine/scene"
	"github.com/Faultbox/primscene/internal/engine/ui"
	"github.com/Faultbox/primscene/internal/logger"
)

// App is the interactive demo.
type App struct {
	cfg      *config.Config
	backend  *ui.Backend
	renderer *renderer.Renderer
	scene    *scene.Scene
	assets   *assets.Manager
	watcher  *assets.Watcher
	world    *world.World
	stats    *hud.Stats
	shots    *debug.ScreenshotCapture
	bounds   map[model.Kind]model.Bounds

	// selected is the picked object index, -1 when none.
	selected   int
	modelPaths chan string

	lastFrame           time.Time
	drag                camera.Drag
	screenshotRequested bool
	showOverlay         bool
}

// New creates the window, uploads the scene and loads the configured preset.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		stats:       hud.New(),
		shots:       debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		showOverlay: true,
		selected:    -1,
		modelPaths:  make(chan string, 1),
	}

	var err error
	a.backend, err = ui.NewBackend(ui.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return nil, err
	}

	a.renderer, err = renderer.New()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.assets, err = assets.NewOverlayManager(cfg.Shaders.Dir)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("shader dir: %w", err)
	}

	meshes, err := model.Build(a.assets, cfg.Scene.ModelPath)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.bounds = model.BoundsOf(meshes)

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = int32(cfg.Window.Width)
	sceneCfg.Height = int32(cfg.Window.Height)
	a.scene, err = scene.New(sceneCfg, a.renderer, a.assets, meshes)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	if err := a.loadPreset(cfg.Scene.Preset); err != nil {
		a.Close()
		return nil, err
	}
	a.world.Options.Wireframe = cfg.Scene.Wireframe

	if cfg.Shaders.Watch {
		a.watcher, err = a.assets.Watch(assets.VertexShader, assets.FragmentShader)
		if err != nil {
			a.Close()
			return nil, err
		}
		logger.Info("watching shaders", zap.Strings("dirs", a.assets.Dirs()))
	}

	return a, nil
}

// Run starts the frame loop and returns when the window closes.
func (a *App) Run() error {
	a.lastFrame = time.Now()
	a.backend.Run(a.frame)
	return nil
}

// Close releases GPU resources and stops the shader watcher.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing shader watcher", zap.Error(err))
		}
		a.watcher = nil
	}
	if a.scene != nil {
		a.scene.Destroy()
		a.scene = nil
	}
	if a.assets != nil {
		a.assets.Close()
	}
}

func (a *App) loadPreset(name string) error {
	w, err := preset.New(name)
	if err != nil {
		return err
	}
	if a.world != nil {
		w.Options.Wireframe = a.world.Options.Wireframe
	}
	a.world = w
	a.selected = -1
	a.stats.Preset = name
	a.backend.SetWindowTitle(fmt.Sprintf("%s - %s", a.cfg.Window.Title, name))
	logger.Info("preset loaded", zap.String("preset", name), zap.Int("lights", w.Lights.Len()))
	return nil
}

func (a *App) frame() {
	now := time.Now()
	a.stats.Update(float64(now.Sub(a.lastFrame).Microseconds()) / 1000.0)
	a.lastFrame = now

	// The framebuffer still holds the previous frame here.
	if a.screenshotRequested {
		a.screenshotRequested = false
		a.captureScreenshot()
	}

	a.pollShaders()
	a.pollModelPath()
	a.handleKeys()
	a.world.Advance()

	a.renderSceneWindow()
	a.renderPanel()
	if a.showOverlay {
		a.renderOverlay()
	}
}

func (a *App) pollShaders() {
	if a.watcher == nil {
		return
	}
	path, ok := a.watcher.Changed()
	if !ok {
		return
	}
	if err := a.scene.ReloadShaders(a.assets); err != nil {
		logger.Warn("shader reload failed, keeping previous program", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("shaders reloaded", zap.String("file", path))
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.scene.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// renderSceneWindow draws the scene into the offscreen target and shows it
// as a borderless window covering the viewport.
func (a *App) renderSceneWindow() {
	x, y, w, h := ui.Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoScrollWithMouse

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	defer imgui.PopStyleVar()

	if imgui.BeginV("##Scene", nil, flags) {
		avail := imgui.ContentRegionAvail()
		sx, sy := ui.FramebufferScale()
		a.scene.Resize(int32(avail.X*sx), int32(avail.Y*sy))

		tex, err := a.scene.Render(a.world)
		if err != nil {
			logger.Warn("render", zap.Error(err))
		}
		st := a.scene.Stats()
		a.stats.Render = hud.RenderStats{DrawCalls: st.DrawCalls, Triangles: st.Triangles, Lines: st.Lines}
		a.stats.Mode = drawMode(a.world.Options.Wireframe)

		origin := imgui.CursorScreenPos()

		// Display rendered texture (flip V for OpenGL)
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
		imgui.ImageWithBgV(
			*texRef,
			avail,
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)

		mousePos := imgui.MousePos()
		dx, dy := a.drag.Update(mousePos.X, mousePos.Y)
		if imgui.IsItemHovered() {
			if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
				a.world.Camera.HandleDrag(dx, dy)
			}

			if imgui.IsMouseClickedBool(0) {
				a.pick(mousePos.X-origin.X, mousePos.Y-origin.Y, avail.X, avail.Y)
			}

			if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
				a.world.Camera.HandleZoom(wheel)
			}
		}
	}
	imgui.End()
}

func (a *App) pick(x, y, width, height float32) {
	i, ok := a.world.Pick(a.world.ScreenRay(x, y, width, height), a.bounds)
	if !ok {
		a.selected = -1
		return
	}
	a.selected = i
	logger.Debug("picked object", zap.String("name", a.world.Objects[i].Name))
}

func drawMode(wireframe bool) string {
	if wireframe {
		return "wireframe"
	}
	return "solid"
}
