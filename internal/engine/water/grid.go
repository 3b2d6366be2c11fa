// Package water provides the ocean surface geometry and the shading
// pipeline that displaces and colours it.
package water

// Default surface dimensions.
const (
	DefaultWidth     = 20.0
	DefaultHeight    = 20.0
	DefaultSegmentsX = 128
	DefaultSegmentsY = 128
)

// FloatsPerVertex is the interleaved vertex stride: x, y, z, u, v.
const FloatsPerVertex = 5

// Grid is a flat subdivided plane in the local XY plane, centred on the
// origin. Displacement is applied along local +Z. A Grid is never modified
// after BuildGrid returns.
type Grid struct {
	Width     float32
	Height    float32
	SegmentsX int
	SegmentsY int

	Positions []float32 // x,y,z per vertex
	UVs       []float32 // u,v per vertex
	Indices   []uint32  // two triangles per cell
}

// BuildGrid creates a width×height plane split into segX×segY cells.
// Rows run from +height/2 down to -height/2, so v = 1 on the first row.
// Segment counts below 1 are treated as 1.
func BuildGrid(width, height float32, segX, segY int) *Grid {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}

	cols := segX + 1
	rows := segY + 1
	g := &Grid{
		Width:     width,
		Height:    height,
		SegmentsX: segX,
		SegmentsY: segY,
		Positions: make([]float32, 0, cols*rows*3),
		UVs:       make([]float32, 0, cols*rows*2),
		Indices:   make([]uint32, 0, segX*segY*6),
	}

	halfW := width / 2
	halfH := height / 2
	cellW := width / float32(segX)
	cellH := height / float32(segY)

	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*cellH - halfH
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*cellW - halfW
			g.Positions = append(g.Positions, x, -y, 0)
			g.UVs = append(g.UVs, float32(ix)/float32(segX), 1-float32(iy)/float32(segY))
		}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// VertexCount returns the number of grid vertices.
func (g *Grid) VertexCount() int {
	return len(g.Positions) / 3
}

// Vertex returns the local position of vertex i.
func (g *Grid) Vertex(i int) (x, y, z float32) {
	return g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]
}

// Interleaved returns position and UV packed per vertex for GPU upload.
func (g *Grid) Interleaved() []float32 {
	n := g.VertexCount()
	out := make([]float32, 0, n*FloatsPerVertex)
	for i := 0; i < n; i++ {
		out = append(out,
			g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2],
			g.UVs[i*2], g.UVs[i*2+1],
		)
	}
	return out
}
