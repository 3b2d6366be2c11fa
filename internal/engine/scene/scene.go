// Package scene draws the ocean frame: a cover-fitted backdrop and the
// displaced surface, optionally into an offscreen framebuffer.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/engine/camera"
	"github.com/Faultbox/ocean/internal/engine/framebuffer"
	"github.com/Faultbox/ocean/internal/engine/noise"
	"github.com/Faultbox/ocean/internal/engine/viewport"
	"github.com/Faultbox/ocean/internal/engine/water"
	"github.com/Faultbox/ocean/internal/logger"
)

// Sources holds the GLSL text of both pipeline stages for each program.
type Sources struct {
	OceanVertex        string
	OceanFragment      string
	BackgroundVertex   string
	BackgroundFragment string
}

// Config wires a scene to the shared pipeline state.
type Config struct {
	Grid       *water.Grid
	Noise      *noise.Field
	Material   *water.Material
	Rig        *camera.Rig
	Background *image.RGBA
	Sources    Sources

	// Offscreen renders into a framebuffer instead of the window.
	Offscreen bool
}

// Scene is the loop's Drawer.
type Scene struct {
	material *water.Material
	rig      *camera.Rig

	ocean      *OceanRenderer
	background *BackgroundRenderer
	target     *framebuffer.Framebuffer

	width, height int
	clearColor    [4]float32
}

// New compiles both programs and uploads all static data. A compile or link
// failure is returned as is; callers treat it as fatal.
func New(cfg Config, initial viewport.State) (*Scene, error) {
	s := &Scene{
		material:   cfg.Material,
		rig:        cfg.Rig,
		clearColor: [4]float32{0, 0, 0, 1},
	}

	var err error
	s.ocean, err = NewOceanRenderer(cfg.Grid, cfg.Noise, cfg.Sources.OceanVertex, cfg.Sources.OceanFragment)
	if err != nil {
		return nil, err
	}

	if cfg.Background != nil {
		s.background, err = NewBackgroundRenderer(cfg.Background, cfg.Sources.BackgroundVertex, cfg.Sources.BackgroundFragment)
		if err != nil {
			s.Destroy()
			return nil, err
		}
	}

	w, h := initial.DrawableSize()
	if cfg.Offscreen {
		s.target, err = framebuffer.New(w, h)
		if err != nil {
			s.Destroy()
			return nil, fmt.Errorf("scene target: %w", err)
		}
	}
	s.Resize(initial)

	logger.Info("scene ready",
		zap.Int("vertices", cfg.Grid.VertexCount()),
		zap.Int("noise_size", cfg.Noise.Size()),
		zap.Bool("background", s.background != nil),
		zap.Bool("offscreen", cfg.Offscreen),
	)
	return s, nil
}

// Resize follows a viewport change: output size, offscreen target and
// backdrop crop. The camera projection is updated by the viewport owner.
func (s *Scene) Resize(st viewport.State) {
	s.width, s.height = st.DrawableSize()
	if s.target != nil {
		s.target.Resize(s.width, s.height)
	} else {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
	}
	if s.background != nil {
		s.background.Resize(s.width, s.height)
	}
}

// Draw renders one frame from the material's current uniforms and the
// rig's current pose.
func (s *Scene) Draw() error {
	if s.target != nil {
		restore := s.target.Begin()
		defer restore()
	}

	gl.ClearColor(s.clearColor[0], s.clearColor[1], s.clearColor[2], s.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if s.background != nil {
		s.background.Draw()
	}
	s.ocean.Draw(s.material.Current(), s.rig.View(), s.rig.Projection(), s.material.Linear())

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// ColorTexture returns the offscreen colour texture, or 0 when drawing to
// the window.
func (s *Scene) ColorTexture() uint32 {
	if s.target == nil {
		return 0
	}
	return s.target.ColorTexture()
}

// Blit copies the offscreen frame onto the window's drawable area. It is
// a no-op when drawing to the window directly.
func (s *Scene) Blit(width, height int) {
	if s.target == nil || width <= 0 || height <= 0 {
		return
	}
	s.target.BlitToWindow(width, height)
}

// Snapshot reads back the last frame. It needs an offscreen target.
func (s *Scene) Snapshot() (*image.RGBA, error) {
	if s.target == nil {
		return nil, fmt.Errorf("snapshot: scene renders to the window")
	}
	return s.target.Snapshot(), nil
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.ocean != nil {
		s.ocean.Destroy()
		s.ocean = nil
	}
	if s.background != nil {
		s.background.Destroy()
		s.background = nil
	}
	if s.target != nil {
		s.target.Destroy()
		s.target = nil
	}
}
