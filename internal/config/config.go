// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/logger"
)

// Config holds all demo settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Scene      SceneConfig      `yaml:"scene"`
	Shaders    ShaderConfig     `yaml:"shaders"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`

	// path is the file Load read, empty when none was found.
	path string
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig selects the starting preset and the mesh model.
type SceneConfig struct {
	Preset    string `yaml:"preset"`
	Wireframe bool   `yaml:"wireframe"`
	ModelPath string `yaml:"model_path"` // Wavefront OBJ; empty uses the built-in model
}

// ShaderConfig controls where shader sources are read from.
type ShaderConfig struct {
	Dir   string `yaml:"dir"`   // overrides the embedded sources when set
	Watch bool   `yaml:"watch"` // recompile when files in Dir change
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "primscene",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Scene: SceneConfig{
			Preset: names.Default,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "primscene",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if !names.Valid(c.Scene.Preset) {
		errs = append(errs, fmt.Errorf("scene.preset: %w: %q", names.ErrUnknownPreset, c.Scene.Preset))
	}
	if c.Shaders.Watch && c.Shaders.Dir == "" {
		errs = append(errs, errors.New("shaders.watch requires shaders.dir"))
	}
	if c.Screenshot.Prefix == "" {
		errs = append(errs, errors.New("screenshot.prefix must not be empty"))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}
