// Package viewport tracks the drawable surface size and keeps the camera
// projection in step with it.
package viewport

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/engine/camera"
	"github.com/Faultbox/ocean/internal/logger"
)

// DefaultMaxPixelRatio caps the backing resolution on high-density displays.
const DefaultMaxPixelRatio = 2

// State is the logical surface size and its pixel density.
type State struct {
	Width      int
	Height     int
	PixelRatio float32
}

// Aspect returns width over height.
func (s State) Aspect() float32 {
	return float32(s.Width) / float32(s.Height)
}

// DrawableSize returns the backing size in physical pixels.
func (s State) DrawableSize() (int, int) {
	return int(math32.Round(float32(s.Width) * s.PixelRatio)),
		int(math32.Round(float32(s.Height) * s.PixelRatio))
}

// Handler applies resize events. It runs on the render thread between
// frames, so a resize always completes before the next draw.
type Handler struct {
	MaxPixelRatio float32

	lens       camera.Lens
	state      State
	projection mgl32.Mat4
	listeners  []func(State)
}

// NewHandler creates a handler for an initial surface. lens supplies the
// projection parameters; its aspect is replaced on every resize.
func NewHandler(lens camera.Lens, width, height int, pixelRatio, maxPixelRatio float32) *Handler {
	if maxPixelRatio <= 0 {
		maxPixelRatio = DefaultMaxPixelRatio
	}
	h := &Handler{
		MaxPixelRatio: maxPixelRatio,
		lens:          lens,
	}
	h.projection = h.lens.Projection()
	h.Resize(width, height, pixelRatio)
	return h
}

// OnResize registers fn to run after every applied resize.
func (h *Handler) OnResize(fn func(State)) {
	h.listeners = append(h.listeners, fn)
}

// Resize applies a new surface size. Zero or negative dimensions are
// ignored. The pixel ratio is capped at MaxPixelRatio; non-positive values
// mean 1. It reports whether the state changed.
func (h *Handler) Resize(width, height int, pixelRatio float32) bool {
	if width <= 0 || height <= 0 {
		logger.Debug("ignoring degenerate resize", zap.Int("width", width), zap.Int("height", height))
		return false
	}

	next := State{Width: width, Height: height, PixelRatio: h.clampRatio(pixelRatio)}
	if next == h.state {
		return false
	}

	h.state = next
	h.lens.Aspect = next.Aspect()
	h.projection = h.lens.Projection()

	dw, dh := next.DrawableSize()
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("pixel_ratio", next.PixelRatio),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
	)

	for _, fn := range h.listeners {
		fn(next)
	}
	return true
}

// State returns the current surface state.
func (h *Handler) State() State {
	return h.state
}

// Projection returns the projection for the current aspect ratio.
func (h *Handler) Projection() mgl32.Mat4 {
	return h.projection
}

// Lens returns the lens with the current aspect ratio.
func (h *Handler) Lens() camera.Lens {
	return h.lens
}

// DrawableSize returns the current backing size in physical pixels.
func (h *Handler) DrawableSize() (int, int) {
	return h.state.DrawableSize()
}

func (h *Handler) clampRatio(r float32) float32 {
	if !(r > 0) {
		return 1
	}
	return math32.Min(r, h.MaxPixelRatio)
}
