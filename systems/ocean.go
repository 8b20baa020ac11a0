package systems

import (
	"math"

	"github.com/pthm-cable/sunset/config"
)

// Ocean animates the background sea as a sum of three travelling ripples.
type Ocean struct {
	Grid *Grid
	cfg  config.OceanConfig
}

// NewOcean allocates the ocean grid and paints it the base color.
func NewOcean(cfg config.OceanConfig) *Ocean {
	g := NewGrid(cfg.Width, cfg.Depth, cfg.Segments, cfg.Segments)
	g.Fill(cfg.Color)
	return &Ocean{Grid: g, cfg: cfg}
}

// Height returns the ripple height at local (x, y) and time t.
func (o *Ocean) Height(x, y, t float64) float64 {
	c := &o.cfg
	return math.Sin(x*c.XFreq+t*c.XSpeed)*c.XAmp +
		math.Cos(y*c.YFreq+t*c.YSpeed)*c.YAmp +
		math.Sin((x+y)*c.DiagFreq+t*c.DiagSpeed)*c.DiagAmp
}

// Update rewrites every vertex height for time t.
func (o *Ocean) Update(t float64) {
	o.UpdateRows(0, o.Grid.Rows(), t)
}

// Rows implements RowKernel.
func (o *Ocean) Rows() int {
	return o.Grid.Rows()
}

// UpdateRows implements RowKernel.
func (o *Ocean) UpdateRows(from, to int, t float64) {
	g := o.Grid
	cols := g.Cols()
	for i := from * cols; i < to*cols; i++ {
		g.Z[i] = o.Height(g.X[i], g.Y[i], t)
	}
}
