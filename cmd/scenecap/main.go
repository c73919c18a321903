// Package main is a panel-less viewer for the scene presets. It renders
// straight to an SDL2 window, is driven by the keyboard alone and can write
// one screenshot per preset and exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/assets"
	"github.com/Faultbox/primscene/internal/config"
	"github.com/Faultbox/primscene/internal/demo/preset"
	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/debug"
	"github.com/Faultbox/primscene/internal/engine/input"
	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/engine/renderer"
	"github.com/Faultbox/primscene/internal/engine/scene"
	"github.com/Faultbox/primscene/internal/engine/window"
	"github.com/Faultbox/primscene/internal/logger"
)

var flagCapture = flag.Bool("capture", false, "Render every preset once, save screenshots and exit")

var keyActions = map[sdl.Keycode]world.Action{
	sdl.K_w:        world.ActionWireframe,
	sdl.K_s:        world.ActionSolid,
	sdl.K_LEFT:     world.ActionOrbitLeft,
	sdl.K_RIGHT:    world.ActionOrbitRight,
	sdl.K_UP:       world.ActionOrbitUp,
	sdl.K_DOWN:     world.ActionOrbitDown,
	sdl.K_EQUALS:   world.ActionZoomIn,
	sdl.K_PLUS:     world.ActionZoomIn,
	sdl.K_KP_PLUS:  world.ActionZoomIn,
	sdl.K_MINUS:    world.ActionZoomOut,
	sdl.K_KP_MINUS: world.ActionZoomOut,
	sdl.K_SPACE:    world.ActionToggleAnimate,
	sdl.K_l:        world.ActionToggleLights,
}

var presetKeys = []sdl.Keycode{sdl.K_1, sdl.K_2, sdl.K_3, sdl.K_4, sdl.K_5}

type viewer struct {
	cfg     *config.Config
	win     *window.Window
	scene   *scene.Scene
	assets  *assets.Manager
	watcher *assets.Watcher
	input   *input.Input
	world   *world.World
	shots   *debug.ScreenshotCapture
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	v, err := newViewer(cfg, *flagCapture)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer v.close()

	if *flagCapture {
		if err := v.captureAll(); err != nil {
			logger.Error("capture failed", zap.Error(err))
			v.close()
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	v.run()
}

func newViewer(cfg *config.Config, hidden bool) (*viewer, error) {
	v := &viewer{
		cfg:   cfg,
		input: input.New(),
		shots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
	}

	var err error
	v.win, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen && !hidden,
		VSync:      cfg.Window.VSync,
		Hidden:     hidden,
	})
	if err != nil {
		return nil, err
	}

	r, err := renderer.New()
	if err != nil {
		v.close()
		return nil, err
	}

	v.assets, err = assets.NewOverlayManager(cfg.Shaders.Dir)
	if err != nil {
		v.close()
		return nil, fmt.Errorf("shader dir: %w", err)
	}

	meshes, err := model.Build(v.assets, cfg.Scene.ModelPath)
	if err != nil {
		v.close()
		return nil, err
	}

	w, h := v.win.DrawableSize()
	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width, sceneCfg.Height = w, h
	v.scene, err = scene.New(sceneCfg, r, v.assets, meshes)
	if err != nil {
		v.close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	if err := v.loadPreset(cfg.Scene.Preset); err != nil {
		v.close()
		return nil, err
	}
	v.world.Options.Wireframe = cfg.Scene.Wireframe

	if cfg.Shaders.Watch && !hidden {
		v.watcher, err = v.assets.Watch(assets.VertexShader, assets.FragmentShader)
		if err != nil {
			v.close()
			return nil, err
		}
	}
	return v, nil
}

func (v *viewer) close() {
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			logger.Warn("closing shader watcher", zap.Error(err))
		}
		v.watcher = nil
	}
	if v.scene != nil {
		v.scene.Destroy()
		v.scene = nil
	}
	if v.assets != nil {
		v.assets.Close()
		v.assets = nil
	}
	if v.win != nil {
		v.win.Close()
		v.win = nil
	}
}

func (v *viewer) loadPreset(name string) error {
	w, err := preset.New(name)
	if err != nil {
		return err
	}
	if v.world != nil {
		w.Options.Wireframe = v.world.Options.Wireframe
	}
	v.world = w
	v.win.SetTitle(fmt.Sprintf("%s - %s", v.cfg.Window.Title, name))
	logger.Info("preset loaded", zap.String("preset", name))
	return nil
}

func (v *viewer) run() {
	for {
		if v.input.Update() {
			return
		}
		if quit := v.handleEvents(); quit {
			return
		}
		v.pollShaders()

		v.world.Advance()
		if err := v.render(); err != nil {
			logger.Warn("render", zap.Error(err))
		}
		v.win.SwapBuffers()
	}
}

// handleEvents applies the polled events and reports whether to quit.
func (v *viewer) handleEvents() bool {
	for _, ev := range v.input.Events() {
		switch ev.Type {
		case input.EventKeyDown:
			if ev.Key == sdl.K_ESCAPE {
				return true
			}
			v.handleKey(ev.Key)
		case input.EventWindowResize:
			v.scene.Resize(v.win.DrawableSize())
		case input.EventMouseDrag:
			v.world.Camera.HandleDrag(float32(ev.DX), float32(ev.DY))
		case input.EventMouseWheel:
			v.world.Camera.HandleZoom(float32(ev.DY))
		}
	}
	return false
}

func (v *viewer) handleKey(key sdl.Keycode) {
	if key == sdl.K_F12 {
		v.screenshot()
		return
	}
	if a, ok := keyActions[key]; ok {
		v.world.Apply(a)
		return
	}
	for i, k := range presetKeys {
		if k == key && i < len(names.All) {
			if err := v.loadPreset(names.All[i]); err != nil {
				logger.Error("switching preset", zap.Error(err))
			}
		}
	}
}

func (v *viewer) pollShaders() {
	if v.watcher == nil {
		return
	}
	path, ok := v.watcher.Changed()
	if !ok {
		return
	}
	if err := v.scene.ReloadShaders(v.assets); err != nil {
		logger.Warn("shader reload failed, keeping previous program", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("shaders reloaded", zap.String("file", path))
}

func (v *viewer) render() error {
	if _, err := v.scene.Render(v.world); err != nil {
		return err
	}
	v.scene.Present(v.win.DrawableSize())
	return nil
}

func (v *viewer) screenshot() {
	pixels, w, h := v.scene.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// captureAll renders each preset once and saves it as <prefix>_<preset>.png.
func (v *viewer) captureAll() error {
	for _, name := range names.All {
		if err := v.loadPreset(name); err != nil {
			return err
		}
		v.world.Options.Wireframe = v.cfg.Scene.Wireframe
		if _, err := v.scene.Render(v.world); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		pixels, w, h := v.scene.ReadPixels()
		path, err := v.shots.SaveTagged(pixels, w, h, name)
		if err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
		logger.Info("captured preset", zap.String("preset", name), zap.String("path", path))
	}
	return nil
}
