package assets

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Backdrop gradient end points, top of the frame to the horizon.
var (
	skyTop     = colorful.Color{R: 0.55, G: 0.71, B: 0.84}
	skyHorizon = colorful.Color{R: 0.93, G: 0.86, B: 0.72}
)

// DefaultBackground returns a vertical sky gradient used when no backdrop
// image is configured. Sizes below 1 are raised to 1.
func DefaultBackground(width, height int) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		r, g, b := skyTop.BlendLab(skyHorizon, t).Clamped().RGB255()
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
