package water

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ocean/internal/engine/params"
)

// Parameter names shared by the store, the control surfaces and the shaders.
const (
	ParamWaveLength         = "waveLength"
	ParamFrequency          = "frequency"
	ParamWaveSpeed          = "waveSpeed"
	ParamColorOffset        = "colorOffset"
	ParamColorMultiplier    = "colorMultiplier"
	ParamSmallWaveElevation = "smallWaveElevation"
	ParamSmallWaveFrequency = "smallWaveFrequency"
	ParamSmallWaveSpeed     = "smallWaveSpeed"
	ParamSurfaceColor       = "surfaceColor"
	ParamDepthColor         = "depthColor"
)

// Uniforms is one frame's shading input: elapsed time plus every parameter.
type Uniforms struct {
	Time float32

	WaveLength float32
	Frequency  mgl32.Vec2
	WaveSpeed  float32

	ColorOffset     float32
	ColorMultiplier float32

	SmallWaveElevation float32
	SmallWaveFrequency float32
	SmallWaveSpeed     float32

	SurfaceColor params.Color
	DepthColor   params.Color
}

// Defaults returns the reference look at t = 0.
func Defaults() Uniforms {
	return Uniforms{
		WaveLength:         0.5,
		Frequency:          mgl32.Vec2{8, 6},
		WaveSpeed:          0.68,
		ColorOffset:        0.19,
		ColorMultiplier:    4.5,
		SmallWaveElevation: 0.785,
		SmallWaveFrequency: 8.68,
		SmallWaveSpeed:     0.68,
		SurfaceColor:       mustHex("#655a43"),
		DepthColor:         mustHex("#d2940f"),
	}
}

// DefineParameters registers the shading parameters in control order, using
// d for initial values.
func DefineParameters(s *params.Store, d Uniforms) error {
	defs := []params.Parameter{
		{Name: ParamWaveLength, Kind: params.KindScalar, Min: 0, Max: 1, Step: 0.001, Scalar: d.WaveLength},
		{Name: ParamFrequency, Kind: params.KindVector2, Min: 0, Max: 10, Step: 0.001, Vec2: d.Frequency},
		{Name: ParamWaveSpeed, Kind: params.KindScalar, Min: 0, Max: 6, Step: 0.001, Scalar: d.WaveSpeed},
		{Name: ParamSurfaceColor, Kind: params.KindColor, Color: d.SurfaceColor},
		{Name: ParamDepthColor, Kind: params.KindColor, Color: d.DepthColor},
		{Name: ParamColorOffset, Kind: params.KindScalar, Min: 0, Max: 1, Step: 0.001, Scalar: d.ColorOffset},
		{Name: ParamColorMultiplier, Kind: params.KindScalar, Min: 0, Max: 10, Step: 0.001, Scalar: d.ColorMultiplier},
		{Name: ParamSmallWaveElevation, Kind: params.KindScalar, Min: 0, Max: 1, Step: 0.0001, Scalar: d.SmallWaveElevation},
		{Name: ParamSmallWaveFrequency, Kind: params.KindScalar, Min: 0, Max: 30, Step: 0.001, Scalar: d.SmallWaveFrequency},
		{Name: ParamSmallWaveSpeed, Kind: params.KindScalar, Min: 0, Max: 4, Step: 0.001, Scalar: d.SmallWaveSpeed},
	}
	for _, p := range defs {
		if err := s.Define(p); err != nil {
			return fmt.Errorf("define shading parameters: %w", err)
		}
	}
	return nil
}

// Snapshot reads every shading parameter from s at time t. When linear is
// set, colours are converted from sRGB so mixing happens in linear light.
func Snapshot(s *params.Store, t float32, linear bool) Uniforms {
	u := Uniforms{
		Time:               t,
		WaveLength:         s.Scalar(ParamWaveLength),
		Frequency:          s.Vec2(ParamFrequency),
		WaveSpeed:          s.Scalar(ParamWaveSpeed),
		ColorOffset:        s.Scalar(ParamColorOffset),
		ColorMultiplier:    s.Scalar(ParamColorMultiplier),
		SmallWaveElevation: s.Scalar(ParamSmallWaveElevation),
		SmallWaveFrequency: s.Scalar(ParamSmallWaveFrequency),
		SmallWaveSpeed:     s.Scalar(ParamSmallWaveSpeed),
		SurfaceColor:       s.Color(ParamSurfaceColor),
		DepthColor:         s.Color(ParamDepthColor),
	}
	if linear {
		u.SurfaceColor = u.SurfaceColor.Linear()
		u.DepthColor = u.DepthColor.Linear()
	}
	return u
}

// Noise2D is a smooth bounded field sampled by the small wave.
type Noise2D interface {
	Sample(x, y float32) float32
}

// Pipeline evaluates the displacement and colouring stages on the CPU. The
// GLSL stages in scene/shaders compute the same functions per vertex and
// per fragment.
type Pipeline struct {
	Noise Noise2D
}

// NewPipeline creates a pipeline sampling n for the small wave.
func NewPipeline(n Noise2D) *Pipeline {
	return &Pipeline{Noise: n}
}

// LargeWave is the directional swell at plane position (x, y).
func (p *Pipeline) LargeWave(u *Uniforms, x, y float32) float32 {
	phase := u.Time * u.WaveSpeed
	return math32.Sin(x*u.Frequency[0]+phase) *
		math32.Cos(y*u.Frequency[1]+phase) *
		u.WaveLength
}

// SmallWave is the noise perturbation at plane position (x, y).
func (p *Pipeline) SmallWave(u *Uniforms, x, y float32) float32 {
	if u.SmallWaveElevation == 0 {
		return 0
	}
	n := p.Noise.Sample(x*u.SmallWaveFrequency, y*u.SmallWaveFrequency+u.Time*u.SmallWaveSpeed)
	return n * u.SmallWaveElevation
}

// Elevation is the total displacement along the plane normal.
func (p *Pipeline) Elevation(u *Uniforms, x, y float32) float32 {
	return p.LargeWave(u, x, y) + p.SmallWave(u, x, y)
}

// MixFactor maps an elevation to the depth colour weight in [0, 1].
func MixFactor(u *Uniforms, h float32) float32 {
	m := h*u.ColorMultiplier + u.ColorOffset
	if m != m {
		return 0
	}
	return mgl32.Clamp(m, 0, 1)
}

// Mix blends surface toward depth colour. m = 0 and m = 1 return the end
// colours exactly.
func Mix(u *Uniforms, m float32) params.Color {
	s, d := u.SurfaceColor, u.DepthColor
	return params.Color{
		R: s.R*(1-m) + d.R*m,
		G: s.G*(1-m) + d.G*m,
		B: s.B*(1-m) + d.B*m,
	}
}

// Shade returns the displacement and output colour at plane position (x, y).
func (p *Pipeline) Shade(u *Uniforms, x, y float32) (float32, params.Color) {
	h := p.Elevation(u, x, y)
	return h, Mix(u, MixFactor(u, h))
}

// ModelMatrix lays the plane flat: local +Z (displacement) becomes world +Y.
func ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(-90))
}

// Displace returns the world position of plane point (x, y) with height h.
func Displace(x, y, h float32) mgl32.Vec3 {
	return ModelMatrix().Mul4x1(mgl32.Vec4{x, y, h, 1}).Vec3()
}

func mustHex(s string) params.Color {
	c, err := params.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
