// Package app assembles the ocean pipeline from configuration and hosts it
// in an SDL window.
package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/ocean/internal/config"
	"github.com/Faultbox/ocean/internal/engine/camera"
	"github.com/Faultbox/ocean/internal/engine/clock"
	"github.com/Faultbox/ocean/internal/engine/noise"
	"github.com/Faultbox/ocean/internal/engine/params"
	"github.com/Faultbox/ocean/internal/engine/viewport"
	"github.com/Faultbox/ocean/internal/engine/water"
	"github.com/Faultbox/ocean/internal/logger"
)

// Uniforms converts the configured startup look into shading values.
func Uniforms(c config.OceanConfig) (water.Uniforms, error) {
	surface, err := params.ParseHex(c.SurfaceColor)
	if err != nil {
		return water.Uniforms{}, fmt.Errorf("surface_color: %w", err)
	}
	depth, err := params.ParseHex(c.DepthColor)
	if err != nil {
		return water.Uniforms{}, fmt.Errorf("depth_color: %w", err)
	}
	return water.Uniforms{
		WaveLength:         c.WaveLength,
		Frequency:          mgl32.Vec2{c.Frequency[0], c.Frequency[1]},
		WaveSpeed:          c.WaveSpeed,
		ColorOffset:        c.ColorOffset,
		ColorMultiplier:    c.ColorMultiplier,
		SmallWaveElevation: c.SmallWaveElevation,
		SmallWaveFrequency: c.SmallWaveFrequency,
		SmallWaveSpeed:     c.SmallWaveSpeed,
		SurfaceColor:       surface,
		DepthColor:         depth,
	}, nil
}

// State is the GPU-independent half of the pipeline: everything the loop
// drives except the draw calls.
type State struct {
	Config   *config.Config
	Store    *params.Store
	Material *water.Material
	Grid     *water.Grid
	Noise    *noise.Field
	Rig      *camera.Rig
	Viewport *viewport.Handler
	Clock    *clock.Clock
}

// NewState builds the parameter store, mesh, noise field, camera and
// viewport for a surface of width x height logical pixels.
func NewState(cfg *config.Config, width, height int, pixelRatio float32) (*State, error) {
	defaults, err := Uniforms(cfg.Ocean)
	if err != nil {
		return nil, err
	}

	store := params.NewStore()
	if err := water.DefineParameters(store, defaults); err != nil {
		return nil, err
	}

	material, err := water.NewMaterial(store, cfg.Ocean.LinearColors)
	if err != nil {
		return nil, err
	}

	lens := camera.Lens{
		FovY:   cfg.Graphics.FOV,
		Aspect: 1,
		Near:   cfg.Graphics.Near,
		Far:    cfg.Graphics.Far,
	}
	path := camera.OrbitPath{
		Radius:       cfg.Camera.Radius,
		Height:       cfg.Camera.Height,
		AngularSpeed: cfg.Camera.AngularSpeed,
		LookAtY:      cfg.Camera.LookAtY,
		LookAtZ:      cfg.Camera.LookAtZ,
	}

	s := &State{
		Config:   cfg,
		Store:    store,
		Material: material,
		Grid:     water.BuildGrid(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.SegmentsX, cfg.Surface.SegmentsY),
		Noise:    noise.NewField(cfg.Noise.Seed, cfg.Noise.Size, cfg.Noise.Period),
		Clock:    clock.New(),
	}

	s.Viewport = viewport.NewHandler(lens, width, height, pixelRatio, cfg.Graphics.MaxPixelRatio)
	s.Rig = camera.NewRig(path, lens)
	s.Rig.SetProjection(s.Viewport.Lens(), s.Viewport.Projection())
	s.Viewport.OnResize(func(viewport.State) {
		s.Rig.SetProjection(s.Viewport.Lens(), s.Viewport.Projection())
	})

	logger.Info("pipeline state ready",
		zap.Int("parameters", store.Len()),
		zap.Int("vertices", s.Grid.VertexCount()),
		zap.Int64("seed", s.Noise.Seed()),
		zap.Bool("linear_colors", material.Linear()),
	)
	return s, nil
}
