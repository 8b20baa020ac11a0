package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/sunset/config"
)

// Wave animates the shoreline run-up: a front that advances and retreats
// across the sand with depth-tinted water behind it and foam at its edge.
type Wave struct {
	Grid *Grid
	cfg  config.WaveConfig
	rng  *rand.Rand

	// FrontBase is the shoreline position from the last Update.
	FrontBase float64
}

// NewWave allocates the wave grid. The rng feeds foam shimmer only.
func NewWave(cfg config.WaveConfig, rng *rand.Rand) *Wave {
	g := NewGrid(cfg.Width, cfg.Depth, cfg.Segments, cfg.Segments)
	g.Fill(cfg.ShallowColor)
	return &Wave{Grid: g, cfg: cfg, rng: rng, FrontBase: cfg.RetreatZ}
}

// WaveCycle maps time to the run-up phase in [0, 1].
func WaveCycle(t, speed, exponent float64) float64 {
	c := (math.Sin(t*speed) + 1) / 2
	// sin can overshoot by an ulp; keep Pow's base non-negative.
	return math.Pow(clamp01(c), exponent)
}

// FrontBaseZ returns the shoreline position between retreat and runUp at time t.
func FrontBaseZ(t, speed, exponent, retreat, runUp float64) float64 {
	return retreat + WaveCycle(t, speed, exponent)*(runUp-retreat)
}

// Front returns the shoreline position for column x given the base position.
func (w *Wave) Front(base, x float64) float64 {
	return base + math.Cos(x*w.cfg.CurveFreq)*w.cfg.CurveDepth - w.cfg.CurveDepth
}

// Update rewrites every vertex height and color for time t.
func (w *Wave) Update(t float64) {
	c := &w.cfg
	w.FrontBase = FrontBaseZ(t, c.CycleSpeed, c.CycleExponent, c.RetreatZ, c.RunUpZ)

	g := w.Grid
	cols := g.Cols()
	for ix := 0; ix < cols; ix++ {
		x := g.X[ix]
		front := w.Front(w.FrontBase, x)
		ripple := math.Sin(x*c.RippleFreq + t*c.RippleSpeed)
		for i := ix; i < g.Len(); i += cols {
			g.Z[i], g.Colors[i] = w.shade(front-g.Y[i], ripple)
		}
	}
}

// shade returns height and color for a vertex at distance d behind the front.
// d <= 0 is dry sand and never reaches the square root.
func (w *Wave) shade(d, ripple float64) (float64, config.Color) {
	c := &w.cfg
	if !(d > 0) {
		return 0, c.ShallowColor
	}

	h := math.Sqrt(d)*c.HeightScale + ripple*c.RippleAmp*(d/10)
	if c.MaxHeight > 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	col := LerpColor(c.ShallowColor, c.DeepColor, d/c.DepthRange)
	if d < c.FoamDistance {
		foam := (1 - d/c.FoamDistance) * (0.7 + w.rng.Float64()*0.3)
		foam = foam * foam * foam
		col = LerpColor(col, c.FoamColor, foam)
		h += foam * c.FoamLift
	}
	return finiteOr(h, 0), clampColor(col)
}
