package params

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB colour with float channels in [0,1], in the space it was
// authored in (sRGB for hex input). Colours held by a Store are always
// exactly representable by their hex form.
type Color struct {
	R, G, B float32
}

// ParseHex converts "#rrggbb" (or "#rgb") into a Color.
// Parsing the output of Hex yields the same Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B)}, nil
}

// Hex formats the colour as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Linear converts sRGB channels to linear light.
func (c Color) Linear() Color {
	r, g, b := c.colorful().LinearRgb()
	return Color{R: float32(r), G: float32(g), B: float32(b)}
}

// Array returns the channels for APIs that take a float triple.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func (c Color) clamped() Color {
	return Color{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// quantized rounds each channel to the 8-bit level its hex form encodes.
func (c Color) quantized() Color {
	q, err := ParseHex(c.Hex())
	if err != nil {
		return c
	}
	return q
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}
