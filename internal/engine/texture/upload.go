package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options control sampling of an uploaded texture.
type Options struct {
	Repeat  bool // GL_REPEAT instead of GL_CLAMP_TO_EDGE
	Mipmaps bool
}

// Upload creates an RGBA8 texture from img. The first row of img becomes
// texture row 0 (v = 0).
func Upload(img *image.RGBA, opts Options) uint32 {
	b := img.Bounds()
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	applyOptions(opts)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// UploadFloat creates a single-channel R32F texture of size×size texels
// from row-major data.
func UploadFloat(data []float32, size int, opts Options) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, int32(size), int32(size), 0,
		gl.RED, gl.FLOAT, gl.Ptr(data))
	applyOptions(opts)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// Delete releases a texture created by Upload or UploadFloat.
func Delete(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}

func applyOptions(opts Options) {
	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
}
