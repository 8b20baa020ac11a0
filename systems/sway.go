package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/sunset/components"
	"github.com/pthm-cable/sunset/config"
)

// Animator drives every registered record from scene time.
// Sway classes are pure functions of t, the rest transform and the phase;
// only flame height noise draws from the rng.
type Animator struct {
	cfg config.SwayConfig
	rng *rand.Rand
}

// NewAnimator creates an animator with the given oscillator constants.
func NewAnimator(cfg config.SwayConfig, rng *rand.Rand) *Animator {
	return &Animator{cfg: cfg, rng: rng}
}

// Tick applies every time-driven sway at scene time t.
func (a *Animator) Tick(r *AnimationRegistry, t float64) {
	a.Flames(r, t)
	a.Tulips(r, t)
	a.Wines(r, t)
	a.Palms(r, t)
	a.Fronds(r, t)
}

// Flames flickers every candle flame.
func (a *Animator) Flames(r *AnimationRegistry, t float64) {
	query := r.flameFilter.Query()
	for query.Next() {
		ref, rest, phase, flicker := query.Get()
		noise := a.rng.Float64() * flicker.Jitter
		*ref.Transform = FlameFlicker(a.cfg.Flame, rest.Transform, phase.Offset, t, noise)
	}
}

// Tulips sways every tulip head.
func (a *Animator) Tulips(r *AnimationRegistry, t float64) {
	query := r.tulipFilter.Query()
	for query.Next() {
		ref, rest, phase, sway := query.Get()
		*ref.Transform = TulipSway(a.cfg.Tulip, rest.Transform, phase.Offset, t, sway.Strength)
	}
}

// Wines wobbles every wine surface.
func (a *Animator) Wines(r *AnimationRegistry, t float64) {
	query := r.wineFilter.Query()
	for query.Next() {
		ref, rest, phase, _ := query.Get()
		*ref.Transform = WineWobble(a.cfg.Wine, rest.Transform, phase.Offset, t)
	}
}

// Palms sways whole trees.
func (a *Animator) Palms(r *AnimationRegistry, t float64) {
	query := r.palmFilter.Query()
	for query.Next() {
		ref, rest, palm := query.Get()
		tr := rest.Transform
		tr.Rotation.Z = rest.Rotation.Z + math.Sin(t*a.cfg.Palm.Speed+float64(palm.Index))*a.cfg.Palm.Amp
		*ref.Transform = tr
	}
}

// Fronds droops and lifts each frond group.
func (a *Animator) Fronds(r *AnimationRegistry, t float64) {
	c := a.cfg.Frond
	query := r.frondFilter.Query()
	for query.Next() {
		ref, rest, frond := query.Get()
		tr := rest.Transform
		tr.Rotation.X = c.Base + math.Sin(t*c.Speed+float64(frond.Index)*c.Spread)*c.Amp
		*ref.Transform = tr
	}
}

// Clouds advances per-tick effects: group drift and message fade-in.
// These accumulate, so they run once per tick rather than from t.
func (a *Animator) Clouds(r *AnimationRegistry) {
	drifts := r.driftFilter.Query()
	for drifts.Next() {
		ref, drift := drifts.Get()
		ref.Transform.Rotation.Y = math.Remainder(ref.Transform.Rotation.Y+drift.Rate, 2*math.Pi)
	}

	fades := r.fadeFilter.Query()
	for fades.Next() {
		fade := fades.Get()
		m := fade.Material
		if m.Opacity < fade.Target {
			m.Opacity = math.Min(fade.Target, m.Opacity+fade.Rate)
		}
	}
}

// FlameFlicker stretches a flame vertically and nudges it sideways.
// noise is the random part of the stretch, already scaled.
func FlameFlicker(c config.FlameSwayConfig, rest components.Transform, phase, t, noise float64) components.Transform {
	tr := rest
	tr.Scale.X = 1
	tr.Scale.Y = c.ScaleBase + math.Sin(t*c.ScaleSpeed+phase)*c.ScaleAmp + noise
	tr.Scale.Z = 1
	tr.Position.X = rest.Position.X + math.Sin(t*c.DriftSpeedX+phase)*c.DriftAmp
	tr.Position.Z = rest.Position.Z + math.Cos(t*c.DriftSpeedZ+phase)*c.DriftAmp
	return tr
}

// TulipSway tilts a tulip about X and Z; strength scales both amplitudes.
func TulipSway(c config.TulipSwayConfig, rest components.Transform, phase, t, strength float64) components.Transform {
	tr := rest
	tr.Rotation.X = rest.Rotation.X + math.Sin(t*c.SpeedX+phase)*c.AmpX*strength
	tr.Rotation.Z = rest.Rotation.Z + math.Cos(t*c.SpeedZ+phase)*c.AmpZ*strength
	return tr
}

// WineWobble tilts a wine surface about X and Y.
func WineWobble(c config.WineSwayConfig, rest components.Transform, phase, t float64) components.Transform {
	tr := rest
	tr.Rotation.X = rest.Rotation.X + math.Sin(t*c.SpeedX+phase)*c.Amp
	tr.Rotation.Y = rest.Rotation.Y + math.Cos(t*c.SpeedY+phase)*c.Amp
	return tr
}
