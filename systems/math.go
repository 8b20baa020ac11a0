package systems

import (
	"math"

	"github.com/pthm-cable/sunset/config"
)

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp interpolates between a and b, returning each endpoint exactly.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpColor interpolates two colors channel-wise with t clamped to [0, 1].
func LerpColor(a, b config.Color, t float64) config.Color {
	t = clamp01(t)
	return config.Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
	}
}

// clampColor forces every channel into [0, 1].
func clampColor(c config.Color) config.Color {
	return config.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// finiteOr returns v, or fallback when v is NaN or infinite.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
