// Package config handles viewer configuration loading.
package config

// Config holds all startup settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Camera   CameraConfig   `yaml:"camera"`
	Noise    NoiseConfig    `yaml:"noise"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
	FOV           float32 `yaml:"fov"` // vertical, degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
}

// OceanConfig holds the startup values of the tunable surface parameters.
// Values outside a parameter's range are clamped when the store is built.
type OceanConfig struct {
	WaveLength         float32    `yaml:"wave_length"`
	Frequency          [2]float32 `yaml:"frequency"`
	WaveSpeed          float32    `yaml:"wave_speed"`
	ColorOffset        float32    `yaml:"color_offset"`
	ColorMultiplier    float32    `yaml:"color_multiplier"`
	SmallWaveElevation float32    `yaml:"small_wave_elevation"`
	SmallWaveFrequency float32    `yaml:"small_wave_frequency"`
	SmallWaveSpeed     float32    `yaml:"small_wave_speed"`
	SurfaceColor       string     `yaml:"surface_color"`
	DepthColor         string     `yaml:"depth_color"`
	LinearColors       bool       `yaml:"linear_colors"` // mix in linear light instead of sRGB
}

// SurfaceConfig holds the grid geometry.
type SurfaceConfig struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	SegmentsX int     `yaml:"segments_x"`
	SegmentsY int     `yaml:"segments_y"`
}

// CameraConfig holds the fixed orbit constants.
type CameraConfig struct {
	Radius       float32 `yaml:"radius"`
	Height       float32 `yaml:"height"`
	AngularSpeed float32 `yaml:"angular_speed"`
	LookAtY      float32 `yaml:"look_at_y"`
	LookAtZ      float32 `yaml:"look_at_z"`
}

// NoiseConfig holds the small-wave noise field settings.
type NoiseConfig struct {
	Seed   int64   `yaml:"seed"`
	Size   int     `yaml:"size"`   // texels per side
	Period float32 `yaml:"period"` // noise-space units before the field repeats
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`        // overrides embedded assets when set
	Background string `yaml:"background"` // image path relative to Dir; empty = generated gradient
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowPanel     bool   `yaml:"show_panel"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the reference look.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			FOV:           75,
			Near:          0.1,
			Far:           100,
		},
		Ocean: OceanConfig{
			WaveLength:         0.5,
			Frequency:          [2]float32{8, 6},
			WaveSpeed:          0.68,
			ColorOffset:        0.19,
			ColorMultiplier:    4.5,
			SmallWaveElevation: 0.785,
			SmallWaveFrequency: 8.68,
			SmallWaveSpeed:     0.68,
			SurfaceColor:       "#655a43",
			DepthColor:         "#d2940f",
		},
		Surface: SurfaceConfig{
			Width:     20,
			Height:    20,
			SegmentsX: 128,
			SegmentsY: 128,
		},
		Camera: CameraConfig{
			Radius:       1.0,
			Height:       0.45,
			AngularSpeed: 0.2,
			LookAtY:      0.6,
			LookAtZ:      0.4,
		},
		Noise: NoiseConfig{
			Seed:   1,
			Size:   1024,
			Period: 256,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
			ShowPanel:     true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
