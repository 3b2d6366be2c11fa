// Package noise provides the smooth pseudo-random field behind the small
// wave component.
//
// The field is OpenSimplex noise baked into a square tileable table. Tiling
// comes from sampling 4D noise on a torus, so the table wraps seamlessly in
// both axes and can be uploaded as a GL_REPEAT texture. CPU sampling filters
// the table the same way the GPU does, which keeps the two pipelines in step.
package noise

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"
)

// Default table parameters.
const (
	DefaultSize   = 1024
	DefaultPeriod = 256
)

// Field is a baked, tileable 2D noise table with values in [-1, 1].
type Field struct {
	seed   int64
	size   int
	period float32
	texels []float32
}

// NewField bakes a size×size table covering period×period units of noise
// space. One unit of noise space holds roughly one noise feature.
func NewField(seed int64, size int, period float32) *Field {
	if size < 2 {
		size = 2
	}
	if period <= 0 {
		period = DefaultPeriod
	}

	src := opensimplex.New(seed)
	f := &Field{
		seed:   seed,
		size:   size,
		period: period,
		texels: make([]float32, size*size),
	}

	// A circle of circumference period keeps arc length equal to distance.
	r := float64(period) / (2 * math.Pi)
	cos := make([]float64, size)
	sin := make([]float64, size)
	for i := 0; i < size; i++ {
		a := 2 * math.Pi * (float64(i) + 0.5) / float64(size)
		cos[i] = math.Cos(a) * r
		sin[i] = math.Sin(a) * r
	}

	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			v := src.Eval4(cos[i], sin[i], cos[j], sin[j])
			f.texels[j*size+i] = math32.Max(-1, math32.Min(1, float32(v)))
		}
	}
	return f
}

// Seed returns the seed the table was baked from.
func (f *Field) Seed() int64 { return f.seed }

// Size returns the table edge length in texels.
func (f *Field) Size() int { return f.size }

// Period returns the distance in noise space after which the field repeats.
func (f *Field) Period() float32 { return f.period }

// Texels returns the table in row-major order, row 0 first. The slice is
// shared and must not be modified.
func (f *Field) Texels() []float32 { return f.texels }

// At returns the raw texel at (i, j), wrapping out-of-range indices.
func (f *Field) At(i, j int) float32 {
	return f.texels[wrap(j, f.size)*f.size+wrap(i, f.size)]
}

// Sample evaluates the field at (x, y) in noise space with bilinear
// filtering. Texel centres sit at (i+0.5)/size of the period, matching
// GL_LINEAR sampling of a GL_REPEAT texture at uv = (x, y) / period.
func (f *Field) Sample(x, y float32) float32 {
	scale := float32(f.size) / f.period
	u := x*scale - 0.5
	v := y*scale - 0.5

	u0 := math32.Floor(u)
	v0 := math32.Floor(v)
	fu := u - u0
	fv := v - v0

	i0 := int(u0)
	j0 := int(v0)

	a := f.At(i0, j0)
	b := f.At(i0+1, j0)
	c := f.At(i0, j0+1)
	d := f.At(i0+1, j0+1)

	top := a + (b-a)*fu
	bottom := c + (d-c)*fu
	return top + (bottom-top)*fv
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
