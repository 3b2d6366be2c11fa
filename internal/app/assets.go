package app

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/assets"
	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/engine/scene"
	"github.com/Faultbox/ocean/internal/engine/scene/shaders"
	"github.com/Faultbox/ocean/internal/engine/texture"
	"github.com/Faultbox/ocean/internal/logger"
)

// Shader asset paths. An asset directory containing shaders/ocean.frag
// replaces the built-in fragment stage.
const (
	OceanVertexPath        = "shaders/ocean.vert"
	OceanFragmentPath      = "shaders/ocean.frag"
	BackgroundVertexPath   = "shaders/background.vert"
	BackgroundFragmentPath = "shaders/background.frag"
)

// gradientSize is the generated backdrop resolution; the quad stretches it.
const gradientSize = 256

// NewAssets mounts the embedded shaders, then the configured directory on
// top of them.
func NewAssets(cfg config.AssetsConfig) (*assets.Manager, error) {
	m := assets.NewManager()
	m.AddSource("embedded", "shaders", shaders.Files)
	if cfg.Dir != "" {
		if err := m.AddDir(cfg.Dir); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadSources reads all four shader stages.
func LoadSources(m *assets.Manager) (scene.Sources, error) {
	var src scene.Sources
	for _, f := range []struct {
		path string
		dst  *string
	}{
		{OceanVertexPath, &src.OceanVertex},
		{OceanFragmentPath, &src.OceanFragment},
		{BackgroundVertexPath, &src.BackgroundVertex},
		{BackgroundFragmentPath, &src.BackgroundFragment},
	} {
		text, err := m.LoadText(f.path)
		if err != nil {
			return scene.Sources{}, fmt.Errorf("load shader: %w", err)
		}
		*f.dst = text
	}
	return src, nil
}

// LoadBackground decodes the configured backdrop. A missing or unreadable
// image is logged and replaced by the generated gradient.
func LoadBackground(m *assets.Manager, cfg config.AssetsConfig) *image.RGBA {
	if cfg.Background == "" {
		return assets.DefaultBackground(gradientSize, gradientSize)
	}

	data, err := m.Load(cfg.Background)
	if err == nil {
		var img *image.RGBA
		if img, err = texture.Decode(data, cfg.Background); err == nil {
			logger.Info("background loaded",
				zap.String("path", cfg.Background),
				zap.Int("width", img.Bounds().Dx()),
				zap.Int("height", img.Bounds().Dy()),
			)
			return img
		}
	}

	logger.Warn("background unavailable, using gradient", zap.String("path", cfg.Background), zap.Error(err))
	return assets.DefaultBackground(gradientSize, gradientSize)
}
