package app

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/ocean/internal/engine/water"
)

// RenderTopDown evaluates the shading pipeline on the CPU over a width x
// height plane seen from straight above, one sample per pixel centre. Row 0
// is the plane's +y edge. Colours mixed in linear light are encoded back to
// sRGB.
func RenderTopDown(p *water.Pipeline, u *water.Uniforms, width, height float32, size int, linear bool) *image.RGBA {
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for j := 0; j < size; j++ {
		y := height/2 - (float32(j)+0.5)/float32(size)*height
		for i := 0; i < size; i++ {
			x := -width/2 + (float32(i)+0.5)/float32(size)*width
			_, c := p.Shade(u, x, y)

			out := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
			if linear {
				out = colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B))
			}
			r, g, b := out.Clamped().RGB255()
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// HeightRange returns the lowest and highest elevation over the same
// samples RenderTopDown would take.
func HeightRange(p *water.Pipeline, u *water.Uniforms, width, height float32, size int) (lo, hi float32) {
	if size < 1 {
		size = 1
	}
	first := true
	for j := 0; j < size; j++ {
		y := height/2 - (float32(j)+0.5)/float32(size)*height
		for i := 0; i < size; i++ {
			x := -width/2 + (float32(i)+0.5)/float32(size)*width
			h := p.Elevation(u, x, y)
			if first || h < lo {
				lo = h
			}
			if first || h > hi {
				hi = h
			}
			first = false
		}
	}
	return lo, hi
}
