package renderer

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/sunset/config"
)

// Fog blends colors linearly toward the fog color between Near and Far.
// It is evaluated on the CPU per grid vertex and per prop node.
type Fog struct {
	Color     config.Color
	Near, Far float64
}

// NewFog creates fog from the scene config.
func NewFog(cfg config.SceneConfig) Fog {
	return Fog{Color: cfg.FogColor, Near: cfg.FogNear, Far: cfg.FogFar}
}

// Factor returns the fog amount in [0, 1] at distance d.
func (f Fog) Factor(d float64) float64 {
	if f.Far <= f.Near {
		if d >= f.Far {
			return 1
		}
		return 0
	}
	return clamp01((d - f.Near) / (f.Far - f.Near))
}

// Apply returns c fogged at distance d with the given opacity.
func (f Fog) Apply(c config.Color, opacity, d float64) color.RGBA {
	blended := colorful.Color(c).BlendRgb(colorful.Color(f.Color), f.Factor(d))
	return rgba(config.Color(blended), opacity)
}

// rgba converts a linear color and opacity to 8-bit RGBA.
func rgba(c config.Color, opacity float64) color.RGBA {
	r, g, b := colorful.Color(c).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(clamp01(opacity)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
