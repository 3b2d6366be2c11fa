package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Graphics.MaxPixelRatio)
	}
	if cfg.Graphics.FOV != 75 || cfg.Graphics.Near != 0.1 || cfg.Graphics.Far != 100 {
		t.Errorf("unexpected projection defaults: %+v", cfg.Graphics)
	}

	o := cfg.Ocean
	if o.WaveLength != 0.5 || o.Frequency != [2]float32{8, 6} || o.WaveSpeed != 0.68 {
		t.Errorf("unexpected large wave defaults: %+v", o)
	}
	if o.ColorOffset != 0.19 || o.ColorMultiplier != 4.5 {
		t.Errorf("unexpected color mix defaults: %+v", o)
	}
	if o.SmallWaveElevation != 0.785 || o.SmallWaveFrequency != 8.68 || o.SmallWaveSpeed != 0.68 {
		t.Errorf("unexpected small wave defaults: %+v", o)
	}
	if o.SurfaceColor != "#655a43" || o.DepthColor != "#d2940f" {
		t.Errorf("unexpected colors: %s %s", o.SurfaceColor, o.DepthColor)
	}

	if cfg.Surface.SegmentsX != 128 || cfg.Surface.SegmentsY != 128 || cfg.Surface.Width != 20 {
		t.Errorf("unexpected surface defaults: %+v", cfg.Surface)
	}
	if cfg.Camera.Radius != 1 || cfg.Camera.Height != 0.45 || cfg.Camera.AngularSpeed != 0.2 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Camera)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultNoisePeriodCoversSurface(t *testing.T) {
	cfg := Default()
	// The small wave samples noise at position * frequency; the default
	// plane must not show a repeat.
	span := cfg.Surface.Width * cfg.Ocean.SmallWaveFrequency
	if h := cfg.Surface.Height * cfg.Ocean.SmallWaveFrequency; h > span {
		span = h
	}
	if cfg.Noise.Period < span {
		t.Errorf("noise period %v repeats across a %v-unit span", cfg.Noise.Period, span)
	}
	if cfg.Noise.Period < 256 {
		t.Errorf("noise period: got %v, want at least 256", cfg.Noise.Period)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ocean.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false
  max_pixel_ratio: 1.5

ocean:
  wave_length: 0.25
  frequency: [3, 4]
  surface_color: "#112233"
  linear_colors: true

noise:
  seed: 42

logging:
  level: "debug"
  log_file: "ocean.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Graphics.MaxPixelRatio)
	}
	if cfg.Ocean.WaveLength != 0.25 {
		t.Errorf("expected wave length 0.25, got %f", cfg.Ocean.WaveLength)
	}
	if cfg.Ocean.Frequency != [2]float32{3, 4} {
		t.Errorf("expected frequency [3 4], got %v", cfg.Ocean.Frequency)
	}
	if cfg.Ocean.SurfaceColor != "#112233" || !cfg.Ocean.LinearColors {
		t.Errorf("unexpected color settings: %+v", cfg.Ocean)
	}
	// Untouched keys keep their defaults.
	if cfg.Ocean.DepthColor != "#d2940f" || cfg.Ocean.WaveSpeed != 0.68 {
		t.Errorf("defaults should survive a partial file: %+v", cfg.Ocean)
	}
	if cfg.Noise.Seed != 42 || cfg.Noise.Size != 1024 {
		t.Errorf("unexpected noise settings: %+v", cfg.Noise)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "ocean.log" {
		t.Errorf("unexpected logging settings: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/ocean.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"fov too wide", func(c *Config) { c.Graphics.FOV = 180 }},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.05 }},
		{"no segments", func(c *Config) { c.Surface.SegmentsY = 0 }},
		{"flat plane", func(c *Config) { c.Surface.Width = 0 }},
		{"tiny noise", func(c *Config) { c.Noise.Size = 1 }},
		{"zero period", func(c *Config) { c.Noise.Period = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "ocean.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find ocean.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "size flags",
			setup: func() { *flagWidth, *flagHeight = 2560, 1440 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() { *flagWidth, *flagHeight = 0, 0 },
		},
		{
			name:  "asset flags",
			setup: func() { *flagAssets, *flagBackground = "/srv/ocean", "sky.jpg" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Dir != "/srv/ocean" || cfg.Assets.Background != "sky.jpg" {
					t.Errorf("unexpected assets: %+v", cfg.Assets)
				}
			},
			teardown: func() { *flagAssets, *flagBackground = "", "" },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 7 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Noise.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Noise.Seed)
				}
			},
			teardown: func() { *flagSeed = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ocean.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ocean.yaml")
	if err := os.WriteFile(configPath, []byte("surface:\n  segments_x: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
