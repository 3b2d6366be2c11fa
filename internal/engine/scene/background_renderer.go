package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ocean/internal/engine/shader"
	"github.com/Faultbox/ocean/internal/engine/texture"
)

// CoverUV returns the UV scale and offset that fill a viewW×viewH surface
// with an imgW×imgH image without distortion, cropping the overflow
// equally on both sides. Degenerate sizes map the whole image.
func CoverUV(imgW, imgH, viewW, viewH int) (scale, offset mgl32.Vec2) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return mgl32.Vec2{1, 1}, mgl32.Vec2{}
	}
	imgAspect := float32(imgW) / float32(imgH)
	viewAspect := float32(viewW) / float32(viewH)

	if viewAspect > imgAspect {
		// View is wider: keep full width, crop top and bottom.
		sy := imgAspect / viewAspect
		return mgl32.Vec2{1, sy}, mgl32.Vec2{0, (1 - sy) / 2}
	}
	sx := viewAspect / imgAspect
	return mgl32.Vec2{sx, 1}, mgl32.Vec2{(1 - sx) / 2, 0}
}

// BackgroundRenderer fills the surface with a cover-fitted image behind the
// ocean.
type BackgroundRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
	tex uint32

	imgW, imgH int
	uvScale    mgl32.Vec2
	uvOffset   mgl32.Vec2
}

// NewBackgroundRenderer uploads img and compiles the backdrop program.
func NewBackgroundRenderer(img *image.RGBA, vertexSrc, fragmentSrc string) (*BackgroundRenderer, error) {
	program, err := shader.Compile("background", vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("background renderer: %w", err)
	}

	r := &BackgroundRenderer{
		program: program,
		imgW:    img.Bounds().Dx(),
		imgH:    img.Bounds().Dy(),
		uvScale: mgl32.Vec2{1, 1},
	}
	r.tex = texture.Upload(img, texture.Options{Mipmaps: true})

	// Two triangles covering clip space.
	quad := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// Resize recomputes the cover-fit crop for a new surface size.
func (r *BackgroundRenderer) Resize(width, height int) {
	r.uvScale, r.uvOffset = CoverUV(r.imgW, r.imgH, width, height)
}

// Draw paints the backdrop without touching the depth buffer.
func (r *BackgroundRenderer) Draw() {
	r.program.Use()
	r.program.SetVec2("uUVScale", r.uvScale)
	r.program.SetVec2("uUVOffset", r.uvOffset)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	r.program.SetInt("uTexture", 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// Destroy releases all GL resources.
func (r *BackgroundRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	texture.Delete(r.tex)
	r.tex = 0
	if r.program != nil {
		r.program.Delete()
	}
}
