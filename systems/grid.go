package systems

import "github.com/pthm-cable/sunset/config"

// Grid is a subdivided plane with per-vertex heights and colors.
//
// Vertices are laid out row by row: row 0 is at local y = +Depth/2 and
// column 0 at local x = -Width/2. Animators only ever write Z and Colors;
// the slices are sized once and never grow.
type Grid struct {
	Width, Depth float64
	SegX, SegY   int

	X      []float64
	Y      []float64
	Z      []float64
	Colors []config.Color

	// CellColors, when set, gives each cell a flat color (row-major, SegX*SegY).
	CellColors []config.Color
}

// NewGrid allocates a width x depth plane with segX x segY cells.
func NewGrid(width, depth float64, segX, segY int) *Grid {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}
	cols := segX + 1
	rows := segY + 1
	n := cols * rows

	g := &Grid{
		Width:  width,
		Depth:  depth,
		SegX:   segX,
		SegY:   segY,
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Z:      make([]float64, n),
		Colors: make([]config.Color, n),
	}

	cellW := width / float64(segX)
	cellD := depth / float64(segY)
	for iy := 0; iy < rows; iy++ {
		y := depth/2 - float64(iy)*cellD
		for ix := 0; ix < cols; ix++ {
			i := iy*cols + ix
			g.X[i] = float64(ix)*cellW - width/2
			g.Y[i] = y
		}
	}
	return g
}

// Len returns the vertex count.
func (g *Grid) Len() int {
	return len(g.X)
}

// Cols returns vertices per row.
func (g *Grid) Cols() int {
	return g.SegX + 1
}

// Rows returns the number of vertex rows.
func (g *Grid) Rows() int {
	return g.SegY + 1
}

// Index returns the vertex index at column ix, row iy.
func (g *Grid) Index(ix, iy int) int {
	return iy*(g.SegX+1) + ix
}

// Fill sets every vertex color to c.
func (g *Grid) Fill(c config.Color) {
	for i := range g.Colors {
		g.Colors[i] = c
	}
}

// Triangles returns the index list, two triangles per cell with
// counter-clockwise winding when viewed from +Z.
func (g *Grid) Triangles() []int32 {
	idx := make([]int32, 0, g.SegX*g.SegY*6)
	cols := g.SegX + 1
	for iy := 0; iy < g.SegY; iy++ {
		for ix := 0; ix < g.SegX; ix++ {
			a := int32(ix + cols*iy)
			b := int32(ix + cols*(iy+1))
			c := int32(ix + 1 + cols*(iy+1))
			d := int32(ix + 1 + cols*iy)
			idx = append(idx, a, b, d, b, c, d)
		}
	}
	return idx
}

// RowKernel updates a contiguous range of grid rows at scene time t.
// Implementations must only write vertices in rows [from, to).
type RowKernel interface {
	Rows() int
	UpdateRows(from, to int, t float64)
}
