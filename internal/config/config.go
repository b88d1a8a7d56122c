// Package config loads the xfish configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/makeafish/xfish/internal/x11"
)

// Window is the requested window geometry.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the server and render settings.
type Config struct {
	// Listen is the HTTP trigger server address.
	Listen string `yaml:"listen"`
	Window Window `yaml:"window"`
	Title  string `yaml:"title"`
	// PaceMs is the delay between polyline strokes, in milliseconds.
	PaceMs int `yaml:"pace_ms"`
	// DataMode is the default drawing-data source when a request carries no
	// mode of its own: "bad" selects the embedded fallback set, anything else
	// generates a fresh fish.
	DataMode string `yaml:"data_mode"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Listen: ":8080",
		Window: Window{Width: x11.DefaultWidth, Height: x11.DefaultHeight},
		Title:  x11.DefaultTitle,
		PaceMs: int(x11.DefaultPace.Milliseconds()),
	}
}

// DefaultConfigPath returns ~/.config/xfish/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "xfish", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error; defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path, applying defaults for any
// unset field. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges. Window dimensions must fit the protocol's
// unsigned 16-bit size fields.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen must not be empty")
	}
	if c.Window.Width < 1 || c.Window.Width > 65535 {
		return fmt.Errorf("window.width must be in 1..65535, got %d", c.Window.Width)
	}
	if c.Window.Height < 1 || c.Window.Height > 65535 {
		return fmt.Errorf("window.height must be in 1..65535, got %d", c.Window.Height)
	}
	if c.PaceMs < 0 {
		return fmt.Errorf("pace_ms must not be negative, got %d", c.PaceMs)
	}
	return nil
}
