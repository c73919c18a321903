package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPreset     = flag.String("preset", "", "Starting preset (classic, orbit, tri-light, sun, spot)")
	flagWireframe  = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagModel      = flag.String("model", "", "Wavefront OBJ file for the mesh model")
	flagShaders    = flag.String("shaders", "", "Directory overriding the embedded shaders")
	flagWatch      = flag.Bool("watch", false, "Recompile shaders when they change on disk")
	flagShotDir    = flag.String("screenshot-dir", "", "Screenshot output directory")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPreset != "" {
		cfg.Scene.Preset = *flagPreset
	}
	if *flagWireframe {
		cfg.Scene.Wireframe = true
	}
	if *flagModel != "" {
		cfg.Scene.ModelPath = *flagModel
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagWatch {
		cfg.Shaders.Watch = true
	}
	if *flagShotDir != "" {
		cfg.Screenshot.Dir = *flagShotDir
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
