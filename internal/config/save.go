package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config back to the file it was loaded from, or to the
// user's config directory when none was loaded.
func (c *Config) Save() error {
	return c.SaveTo(c.Path())
}

// Path returns the file Save writes to.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
