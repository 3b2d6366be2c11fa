// Package texture decodes images and uploads them as GL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned for zero-length input or a zero-area image.
var ErrEmpty = errors.New("empty image")

// Decode decodes PNG, JPEG, BMP or WebP data into an RGBA image with its
// origin at the top-left corner. name is used in errors only.
func Decode(data []byte, name string) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode %s: %w", name, ErrEmpty)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s (%s): %w", name, format, ErrEmpty)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to *image.RGBA with bounds starting at (0,0).
// An image that already satisfies this is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Scale resamples img to w×h with Catmull-Rom filtering.
func Scale(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// FlipVertical returns a copy of img with rows in reverse order. GL reads
// pixels bottom row first.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	row := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Max.Y-1-y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+row], img.Pix[src:src+row])
	}
	return out
}
