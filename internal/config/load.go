package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a config that parsed but cannot drive the renderer.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would break mesh or projection setup.
// Ocean parameter ranges are not checked here; the parameter store clamps them.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180:
		return fmt.Errorf("%w: fov %.1f", ErrInvalid, c.Graphics.FOV)
	case c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near:
		return fmt.Errorf("%w: clip range %.3f..%.3f", ErrInvalid, c.Graphics.Near, c.Graphics.Far)
	case c.Surface.SegmentsX < 1 || c.Surface.SegmentsY < 1:
		return fmt.Errorf("%w: surface segments %dx%d", ErrInvalid, c.Surface.SegmentsX, c.Surface.SegmentsY)
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface size %.2fx%.2f", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case c.Noise.Size < 2 || c.Noise.Period <= 0:
		return fmt.Errorf("%w: noise size %d period %.2f", ErrInvalid, c.Noise.Size, c.Noise.Period)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./ocean.yaml",
		filepath.Join(ConfigDir(), "ocean.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Ocean")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Ocean")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ocean")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "ocean")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
