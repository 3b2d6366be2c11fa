package water

import (
	"fmt"

	"github.com/Faultbox/ocean/internal/engine/params"
)

// Material owns the uniform inputs of the ocean shaders. Push refreshes them
// once per frame; the renderer uploads Current.
//
// Colours are cached in the working colour space and refreshed only when the
// store reports a change, so the per-frame path does no conversion.
type Material struct {
	store  *params.Store
	linear bool

	surface params.Color
	depth   params.Color

	current Uniforms
}

// NewMaterial binds a material to the shading parameters in s.
func NewMaterial(s *params.Store, linear bool) (*Material, error) {
	m := &Material{store: s, linear: linear}

	m.surface = m.convert(s.Color(ParamSurfaceColor))
	m.depth = m.convert(s.Color(ParamDepthColor))

	if err := s.OnChange(ParamSurfaceColor, func(p params.Parameter) {
		m.surface = m.convert(p.Color)
	}); err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	if err := s.OnChange(ParamDepthColor, func(p params.Parameter) {
		m.depth = m.convert(p.Color)
	}); err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}

	m.Push(0)
	return m, nil
}

// Push snapshots the store at time t.
func (m *Material) Push(t float32) {
	u := Snapshot(m.store, t, false)
	u.SurfaceColor = m.surface
	u.DepthColor = m.depth
	m.current = u
}

// Current returns the uniforms of the last Push.
func (m *Material) Current() *Uniforms {
	return &m.current
}

// Linear reports whether colours are mixed in linear light.
func (m *Material) Linear() bool {
	return m.linear
}

func (m *Material) convert(c params.Color) params.Color {
	if m.linear {
		return c.Linear()
	}
	return c
}
