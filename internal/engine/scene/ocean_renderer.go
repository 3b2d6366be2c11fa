package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/ocean/internal/engine/noise"
	"github.com/Faultbox/ocean/internal/engine/shader"
	"github.com/Faultbox/ocean/internal/engine/texture"
	"github.com/Faultbox/ocean/internal/engine/water"
)

// OceanRenderer draws the displaced surface grid.
type OceanRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	indexCount  int32
	noiseTex    uint32
	noisePeriod float32
	model       mgl32.Mat4
}

// NewOceanRenderer uploads the grid and the noise table and compiles the
// ocean program.
func NewOceanRenderer(grid *water.Grid, field *noise.Field, vertexSrc, fragmentSrc string) (*OceanRenderer, error) {
	program, err := shader.Compile("ocean", vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("ocean renderer: %w", err)
	}

	r := &OceanRenderer{
		program:     program,
		noisePeriod: field.Period(),
		model:       water.ModelMatrix(),
	}
	r.createMesh(grid)
	r.noiseTex = texture.UploadFloat(field.Texels(), field.Size(), texture.Options{Repeat: true})

	return r, nil
}

func (r *OceanRenderer) createMesh(grid *water.Grid) {
	vertices := grid.Interleaved()
	r.indexCount = int32(len(grid.Indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(grid.Indices)*4, gl.Ptr(grid.Indices), gl.STATIC_DRAW)

	stride := int32(water.FloatsPerVertex * 4)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// UV
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// Draw renders the surface with the given uniforms. encodeSRGB is set when
// colours were mixed in linear light.
func (r *OceanRenderer) Draw(u *water.Uniforms, view, projection mgl32.Mat4, encodeSRGB bool) {
	p := r.program
	p.Use()

	p.SetMat4("uModel", r.model)
	p.SetMat4("uView", view)
	p.SetMat4("uProjection", projection)

	p.SetFloat("uTime", u.Time)
	p.SetFloat("uWaveLength", u.WaveLength)
	p.SetVec2("uFrequency", u.Frequency)
	p.SetFloat("uWaveSpeed", u.WaveSpeed)
	p.SetFloat("uSmallWaveElevation", u.SmallWaveElevation)
	p.SetFloat("uSmallWaveFrequency", u.SmallWaveFrequency)
	p.SetFloat("uSmallWaveSpeed", u.SmallWaveSpeed)

	p.SetVec3("uSurfaceColor", u.SurfaceColor.Array())
	p.SetVec3("uDepthColor", u.DepthColor.Array())
	p.SetFloat("uColorOffset", u.ColorOffset)
	p.SetFloat("uColorMultiplier", u.ColorMultiplier)
	p.SetBool("uEncodeSRGB", encodeSRGB)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.noiseTex)
	p.SetInt("uNoise", 0)
	p.SetFloat("uNoisePeriod", r.noisePeriod)

	// Visible from both sides.
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GL resources.
func (r *OceanRenderer) Destroy() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	texture.Delete(r.noiseTex)
	r.noiseTex = 0
	if r.program != nil {
		r.program.Delete()
	}
}
