package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
)

const (
	frondsPerPalm   = 12
	leafletsPerSide = 30
	trunkTaper      = 0.4 // Radius at the crown relative to the base
)

var (
	trunkCurve = MustCurve(
		r3.Vec{},
		r3.Vec{X: 0.3, Y: 3, Z: 0.2},
		r3.Vec{X: 0.5, Y: 6, Z: 0.3},
		r3.Vec{X: 0.6, Y: 9, Z: 0.4},
		r3.Vec{X: 0.7, Y: 12, Z: 0.5},
	)

	// Fronds leave the crown along +Z, rise briefly and droop to the tip.
	frondCurve = MustCurve(
		r3.Vec{},
		r3.Vec{Y: 0.5, Z: 1},
		r3.Vec{Y: 0, Z: 3},
		r3.Vec{Y: -1.5, Z: 5},
		r3.Vec{Y: -4, Z: 6.5},
	)

	leafletOutline = []r3.Vec{
		{X: 0, Y: 0},
		{X: 0.15, Y: 0.2},
		{X: 0, Y: 1.5},
		{X: -0.15, Y: 0.2},
	}

	// Two foreground palms framing the picnic, then the grove behind them.
	palmLayout = []struct {
		x, z, scale, rotY float64
	}{
		{-18, 20, 2, 0.5},
		{18, 20, 2, -0.5},
		{-32, 33, 1.3, 0.5},
		{-45, 33, 1.6, 1.2},
		{32, 37, 1.4, -0.5},
		{45, 34, 1.5, -1.0},
	}
)

func (b *builder) palmTrees() {
	for _, p := range palmLayout {
		t := scaled(components.At(p.x, 0, p.z), p.scale)
		t.Rotation.Y = p.rotY
		b.palm(t)
	}
}

func (b *builder) palm(t components.Transform) int {
	idx := b.g.Group(Root, "palm", t)
	b.reg.AddPalm(idx, &b.g.Node(idx).Local, b.palms)
	b.palms++

	b.g.Add(idx, "trunk", components.Identity(), Shape{
		Kind:   KindTube,
		Path:   trunkCurve.Sample(20),
		Radius: 0.5,
		Taper:  trunkTaper,
		Slices: 8,
	}, solid(0x8b6b4a))

	top := trunkCurve.End()
	for i := 0; i < frondsPerPalm; i++ {
		ft := components.At(top.X, top.Y, top.Z)
		ft.Rotation.Y = float64(i) / frondsPerPalm * 2 * math.Pi
		ft.Rotation.X = b.rng.Float64() * 0.2
		f := b.frond(idx, ft)
		b.reg.AddFrond(f, &b.g.Node(f).Local, b.g.ChildIndex(f))
	}

	coconut := solid(0x5c4033)
	for i := 0; i < 3; i++ {
		a := float64(i) / 3 * 2 * math.Pi
		b.g.Add(idx, "coconut", components.At(top.X+math.Cos(a)*0.35, top.Y-0.4, top.Z+math.Sin(a)*0.35),
			Shape{Kind: KindSphere, Radius: 0.25, Slices: 10}, coconut)
	}
	return idx
}

// frond is a drooping stem with pairs of leaflets opening in a V along it.
func (b *builder) frond(parent int, t components.Transform) int {
	idx := b.g.Group(parent, "frond", t)
	b.g.Add(idx, "stem", components.Identity(), Shape{
		Kind:   KindTube,
		Path:   frondCurve.Sample(20),
		Radius: 0.05,
		Taper:  1,
		Slices: 6,
	}, solid(0x6aa84f))

	leaf := solid(0x2e7d32)
	for i := 2; i < leafletsPerSide; i++ {
		u := float64(i) / leafletsPerSide
		p := frondCurve.At(u)
		tan := frondCurve.Tangent(u)
		size := math.Sin(u*math.Pi)*0.8 + 0.3

		// Pitch the leaflet's long axis onto the stem, open it sideways,
		// then tip it slightly forward.
		pitch := math.Atan2(tan.Z, tan.Y) - 0.2
		for _, side := range []float64{-0.7, 0.7} {
			lt := scaled(components.At(p.X, p.Y, p.Z), size)
			lt.Rotation = r3.Vec{X: pitch, Z: side}
			b.g.Add(idx, "leaflet", lt, Shape{Kind: KindFan, Path: leafletOutline}, leaf)
		}
	}
	return idx
}
