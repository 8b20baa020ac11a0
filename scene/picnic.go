package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
	"github.com/pthm-cable/sunset/config"
)

func (b *builder) picnic(s *Scene) int {
	idx := b.g.Group(Root, "picnic", at(b.cfg.Camera.Focus))

	b.g.Add(idx, "blanket", lying(0, 0.12, 0), Shape{Kind: KindGrid, Grid: s.Blanket}, solid(0xffffff))

	b.cake(idx, s)
	b.grapes(idx)
	b.watermelon(idx)
	b.mangoes(idx)
	b.pizza(idx)
	b.sushi(idx)
	b.wineSet(idx)
	b.tulipVase(idx)
	return idx
}

func cylinder(radius, height float64) Shape {
	return Shape{Kind: KindCylinder, Size: r3.Vec{X: radius, Y: height, Z: radius}, Slices: 24}
}

func cone(bottom, top, height float64) Shape {
	return Shape{Kind: KindCylinder, Size: r3.Vec{X: bottom, Y: height, Z: top}, Slices: 24}
}

func sphere(radius float64) Shape {
	return Shape{Kind: KindSphere, Radius: radius, Slices: 12}
}

func box(x, y, z float64) Shape {
	return Shape{Kind: KindBox, Size: r3.Vec{X: x, Y: y, Z: z}}
}

func torus(radius, tube float64) Shape {
	return Shape{Kind: KindTorus, Radius: radius, Tube: tube, Slices: 48}
}

// ring places a torus flat around the Y axis at height y.
func ring(y float64) components.Transform {
	t := components.At(0, y, 0)
	t.Rotation.X = math.Pi / 2
	return t
}

func lathe(profile ...r3.Vec) Shape {
	return Shape{Kind: KindLathe, Path: profile, Slices: 24}
}

// cakeTier describes one layer: sponge, a cream ring on top and an optional
// string of pearls.
type cakeTier struct {
	radius, height, y float64
	sponge, cream     uint32
	creamY, creamTube float64
	pearls            int
	pearlR, pearlY    float64
}

var cakeTiers = []cakeTier{
	{1.8, 0.8, 0.48, 0xffd4e5, 0xfff5e6, 0.90, 0.12, 24, 0.08, 0.13},
	{1.3, 0.7, 1.28, 0xffffff, 0xffb3d9, 1.66, 0.10, 18, 0.07, 0.93},
	{0.9, 0.6, 1.93, 0xffb3d9, 0xfff5e6, 2.26, 0.08, 0, 0, 0},
}

// candleRing is a circle of candles on one tier.
type candleRing struct {
	count          int
	radius         float64
	candleY, flame float64
}

var candleRings = []candleRing{
	{10, 0.7, 2.5, 2.72},
	{11, 1.15, 1.7, 1.92},
}

func (b *builder) cake(parent int, s *Scene) {
	idx := b.g.Group(parent, "cake", components.Identity())

	for _, t := range cakeTiers {
		b.g.Add(idx, "tier", components.At(0, t.y, 0), cylinder(t.radius, t.height), solid(t.sponge))
		cream := solid(t.cream)
		b.g.Add(idx, "cream", ring(t.creamY), torus(t.radius, t.creamTube), cream)
		for i := 0; i < t.pearls; i++ {
			a := float64(i) / float64(t.pearls) * 2 * math.Pi
			b.g.Add(idx, "pearl", components.At(math.Cos(a)*t.radius, t.pearlY, math.Sin(a)*t.radius), sphere(t.pearlR), cream)
		}
	}

	wax := solid(0xfff9e6)
	jitter := b.cfg.Sway.Flame.ScaleJitter
	for _, r := range candleRings {
		for i := 0; i < r.count; i++ {
			a := float64(i) / float64(r.count) * 2 * math.Pi
			x, z := math.Cos(a)*r.radius, math.Sin(a)*r.radius
			b.g.Add(idx, "candle", components.At(x, r.candleY, z), cylinder(0.04, 0.35), wax)

			ft := components.At(x, r.flame, z)
			ft.Scale.Y = 1.3
			flame := b.g.Add(idx, "flame", ft, sphere(0.05), glow(0xff6600, 1))
			b.g.Add(flame, "halo", components.Identity(), sphere(0.08), glow(0xffaa00, 0.4))
			b.reg.AddFlame(flame, &b.g.Node(flame).Local, b.phase(), jitter)
		}
	}

	b.sparkler(idx, s)
}

// sparkler is a metal stick standing on the top tier with the particle pool
// attached at its base; sparks are emitted from the tip in stick space.
func (b *builder) sparkler(parent int, s *Scene) {
	c := b.cfg.Sparkler
	stick := b.g.Group(parent, "sparkler", at(c.Position))
	b.g.Add(stick, "stick", components.At(0, c.TipHeight/2, 0), cylinder(0.08, c.TipHeight), solid(0x888888))
	b.g.Add(stick, "sparks", components.Identity(),
		Shape{Kind: KindPoints, Sparkler: s.Sparkler, Sprite: SpriteSpark},
		glow(0xffffff, 1))
}

func (b *builder) glassBowl(parent int, name string, x, z float64) int {
	idx := b.g.Group(parent, name, components.At(x, 0, z))
	b.g.Add(idx, "bowl", components.At(0, 0.15, 0), lathe(
		r3.Vec{X: 0.05, Y: -0.55},
		r3.Vec{X: 0.45, Y: -0.45},
		r3.Vec{X: 0.8, Y: -0.2},
		r3.Vec{X: 0.9, Y: 0.15},
	), glass(0xadd8e6, 0.3))
	b.g.Add(idx, "rim", ring(0.3), torus(0.9, 0.08), glass(0xadd8e6, 0.4))
	return idx
}

var grapeColors = []uint32{0x8db600, 0xa4c639, 0x77dd77, 0x6b8e23}

func (b *builder) grapes(parent int) {
	bowl := b.glassBowl(parent, "grapes", -3.5, 2.5)
	mats := make([]*components.Material, len(grapeColors))
	for i, c := range grapeColors {
		mats[i] = solid(c)
	}
	shine := glow(0xffffff, 0.7)

	layers := []struct {
		count  int
		radius float64
	}{{3, 0}, {5, 0.15}, {6, 0.3}, {4, 0.15}}

	for cl := 0; cl < 4; cl++ {
		ca := float64(cl) / 4 * 2 * math.Pi
		cluster := b.g.Group(bowl, "cluster", components.At(math.Cos(ca)*0.3, 0, math.Sin(ca)*0.3))
		y := 0.3
		for _, l := range layers {
			for i := 0; i < l.count; i++ {
				a := float64(i)/float64(l.count)*2*math.Pi + float64(cl)*math.Pi/2
				g := b.g.Add(cluster, "grape",
					components.At(math.Cos(a)*l.radius, y+b.rng.Float64()*0.05, math.Sin(a)*l.radius),
					sphere(0.09), mats[b.rng.Intn(len(mats))])
				b.g.Add(g, "shine", components.At(-0.03, 0.04, 0.05), sphere(0.03), shine)
			}
			y += 0.12
		}
	}
}

// watermelon stacks wedge slices in two layers.
func (b *builder) watermelon(parent int) {
	bowl := b.glassBowl(parent, "watermelon", 3.5, 2.5)
	flesh := solid(0xff4d4d)
	rind := solid(0x1b5e20)
	pith := solid(0xe8f5e9)
	seed := solid(0x111111)

	wedge := func(r float64) []r3.Vec {
		pts := []r3.Vec{{}}
		for i := 0; i <= 8; i++ {
			a := -0.35 + float64(i)/8*0.7
			pts = append(pts, r3.Vec{X: math.Sin(a) * r, Y: math.Cos(a) * r})
		}
		return pts
	}

	for layer := 0; layer < 2; layer++ {
		n := 5 - layer
		for i := 0; i < n; i++ {
			a := float64(i)/float64(n)*2*math.Pi + float64(layer)*0.4
			t := components.At(math.Cos(a)*0.25, 0.35+float64(layer)*0.2, math.Sin(a)*0.25)
			t.Rotation = r3.Vec{X: flat + 0.3, Z: -a}
			slice := b.g.Group(bowl, "slice", t)
			b.g.Add(slice, "rind", components.At(0, 0, -0.01), Shape{Kind: KindFan, Path: wedge(0.62)}, rind)
			b.g.Add(slice, "pith", components.At(0, 0, -0.005), Shape{Kind: KindFan, Path: wedge(0.56)}, pith)
			b.g.Add(slice, "flesh", components.Identity(), Shape{Kind: KindFan, Path: wedge(0.52)}, flesh)
			for k := 0; k < 3; k++ {
				b.g.Add(slice, "seed", components.At(float64(k-1)*0.08, 0.3, 0.01), sphere(0.02), seed)
			}
		}
	}
}

func (b *builder) mangoes(parent int) {
	bowl := b.glassBowl(parent, "mangoes", 0, 3.5)
	skin := solid(0xffb347)
	stem := solid(0x5d4037)
	spot := solid(0x8bc34a)

	for i := 0; i < 5; i++ {
		a := float64(i) / 5 * 2 * math.Pi
		t := components.At(math.Cos(a)*0.4, 0.35+b.rng.Float64()*0.05, math.Sin(a)*0.4)
		t.Scale = r3.Vec{X: 1.3, Y: 0.9, Z: 1}
		t.Rotation.Y = -a
		m := b.g.Add(bowl, "mango", t, sphere(0.22), skin)
		b.g.Add(m, "stem", components.At(0.2, 0.12, 0), cylinder(0.015, 0.08), stem)
		b.g.Add(m, "spot", components.At(-0.1, 0.15, 0.08), sphere(0.05), spot)
	}
}

func (b *builder) pizza(parent int) {
	idx := b.g.Group(parent, "pizza", components.At(3.8, 0.1, -0.5))
	b.g.Add(idx, "board", components.At(0, 0.05, 0), cylinder(2.3, 0.1), solid(0x8b5a2b))
	b.g.Add(idx, "dough", components.At(0, 0.15, 0), cylinder(1.95, 0.12), solid(0xf4d4a4))
	b.g.Add(idx, "crust", ring(0.18), torus(1.95, 0.12), solid(0xc78b4f))
	b.g.Add(idx, "cheese", components.At(0, 0.17, 0), cylinder(1.85, 0.14), solid(0xffcc33))

	pep := solid(0xb22222)
	for i := 0; i < 14; i++ {
		// Fill the disc evenly: sqrt keeps area density uniform
		r := math.Sqrt(b.rng.Float64()) * 1.5
		a := b.rng.Float64() * 2 * math.Pi
		b.g.Add(idx, "pepperoni", components.At(math.Cos(a)*r, 0.2, math.Sin(a)*r), cylinder(0.22, 0.15), pep)
	}

	speck := solid(0x6b3e11)
	for i := 0; i < 30; i++ {
		a := b.rng.Float64() * 2 * math.Pi
		r := 1.9 + b.rng.Float64()*0.1
		b.g.Add(idx, "speck", components.At(math.Cos(a)*r, 0.25+b.rng.Float64()*0.03, math.Sin(a)*r), sphere(0.04), speck)
	}

	cut := solid(0x4a2c17)
	for i := 0; i < 4; i++ {
		t := components.At(0, 0.17, 0)
		t.Rotation.Y = float64(i) * math.Pi / 4
		b.g.Add(idx, "cut", t, box(3.8, 0.2, 0.03), cut)
	}
}

func (b *builder) sushi(parent int) {
	idx := b.g.Group(parent, "sushi", components.At(-3.8, 0.05, -0.5))
	wood := solid(0xd2b48c)
	b.g.Add(idx, "board", components.At(0, 0.1, 0), box(3.5, 0.2, 2.2), wood)
	b.g.Add(idx, "leg", components.At(0, 0, 0.8), box(3.5, 0.1, 0.2), wood)
	b.g.Add(idx, "leg", components.At(0, 0, -0.8), box(3.5, 0.1, 0.2), wood)

	rice := solid(0xffffff)
	nori := solid(0x1a1a1a)
	salmon := solid(0xff7f50)
	avocado := solid(0x90ee90)
	const makiR, makiH = 0.25, 0.3

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			m := b.g.Group(idx, "maki", components.At(float64(col-1)*0.9, 0.38, float64(row)*0.9-0.45))
			b.g.Add(m, "rice", components.Identity(), cylinder(makiR, makiH), rice)
			b.g.Add(m, "nori", components.Identity(), cylinder(makiR+0.02, makiH-0.02), nori)
			b.g.Add(m, "salmon", components.At(0, makiH/2+0.001, 0), box(0.15, 0.05, 0.15), salmon)
			b.g.Add(m, "avocado", components.At(0.1, makiH/2+0.001, 0.05), box(0.1, 0.05, 0.1), avocado)
		}
	}
	b.g.Add(idx, "wasabi", components.At(1.4, 0.25, -0.7), sphere(0.2), solid(0x7cfc00))
}

var (
	glassProfile = []r3.Vec{
		{X: 0.02, Y: 0}, {X: 0.15, Y: 0.05}, {X: 0.32, Y: 0.20}, {X: 0.34, Y: 0.35}, {X: 0.28, Y: 0.55},
	}
	wineProfile = []r3.Vec{
		{X: 0, Y: 0}, {X: 0.14, Y: 0.05}, {X: 0.33, Y: 0.28},
	}
	glassSpots = []r3.Vec{
		{X: -1.1, Y: 0.1, Z: 3.4},
		{X: 2.0, Y: 0.1, Z: 3.2},
	}
)

func (b *builder) wineSet(parent int) {
	set := b.g.Group(parent, "wine", components.Identity())

	bottleGlass := glass(0x1a2b3c, 0.9)
	bt := components.At(-2.0, 0.1, 3.2)
	bt.Rotation.Y = 0.2
	bottle := b.g.Group(set, "bottle", bt)
	b.g.Add(bottle, "body", components.At(0, 0.6, 0), cylinder(0.3, 1.2), bottleGlass)
	b.g.Add(bottle, "shoulder", components.At(0, 1.2, 0), sphere(0.3), bottleGlass)
	b.g.Add(bottle, "neck", components.At(0, 1.5, 0), cone(0.12, 0.1, 0.6), bottleGlass)
	b.g.Add(bottle, "cork", components.At(0, 1.8, 0), cylinder(0.11, 0.1), solid(0x8b4513))
	b.g.Add(bottle, "label", components.At(0, 0.6, 0), cylinder(0.31, 0.6), solid(0xf5e6d3))

	crystal := glass(0xffffff, 0.3)
	wine := &components.Material{Color: config.Hex(0x720e1e), Opacity: 0.85}
	for _, p := range glassSpots {
		g := b.g.Group(set, "glass", components.At(p.X, p.Y, p.Z))
		b.g.Add(g, "bowl", components.At(0, 0.55, 0), lathe(glassProfile...), crystal)
		b.g.Add(g, "stem", components.At(0, 0.275, 0), cylinder(0.015, 0.55), crystal)
		b.g.Add(g, "base", components.At(0, 0.005, 0), cylinder(0.22, 0.01), crystal)
		b.g.Add(g, "liquid", scaled(components.At(0, 0.56, 0), 0.92), lathe(wineProfile...), wine)

		top := b.g.Add(g, "surface", lying(0, 0.83, 0), Shape{Kind: KindDisc, Radius: 0.30, Slices: 24}, wine)
		b.reg.AddWine(top, &b.g.Node(top).Local, b.wines)
		b.wines++
	}
}

var (
	vaseProfile = []r3.Vec{
		{X: 0.35, Y: 0}, {X: 0.55, Y: 0.3}, {X: 0.30, Y: 1.0}, {X: 0.40, Y: 1.5},
	}
	petalOutline = []r3.Vec{
		{X: 0, Y: 0}, {X: 0.09, Y: 0.2}, {X: 0.08, Y: 0.45}, {X: 0.04, Y: 0.62},
		{X: -0.04, Y: 0.62}, {X: -0.08, Y: 0.45}, {X: -0.09, Y: 0.2},
	}
	tulipLeafOutline = []r3.Vec{
		{X: 0, Y: 0}, {X: 0.15, Y: 0.3}, {X: 0.13, Y: 0.75}, {X: 0, Y: 0.95},
		{X: -0.13, Y: 0.75}, {X: -0.15, Y: 0.3},
	}
	tulipLayers = []struct {
		count           int
		radius, incline float64
	}{
		{5, 0.04, 0.1},
		{7, 0.09, 0.25},
		{8, 0.14, 0.4},
	}
)

func (b *builder) tulipVase(parent int) {
	vase := b.g.Group(parent, "vase", scaled(components.At(-2.5, 0, -2.5), 1.3))
	b.g.Add(vase, "pot", components.Identity(), lathe(vaseProfile...), solid(0xffffff))

	petal := solid(0xff8a65)
	leaf := solid(0x558b38)
	stem := solid(0x4a7c2d)

	for li, l := range tulipLayers {
		for i := 0; i < l.count; i++ {
			a := float64(i)/float64(l.count)*2*math.Pi + float64(li)*0.5
			h := 1 + (b.rng.Float64()-0.5)*0.1
			incline := l.incline + (b.rng.Float64()-0.5)*0.1

			// Lean outward: a small rotation about the horizontal axis
			// perpendicular to the tulip's bearing.
			t := components.At(math.Cos(a)*l.radius, 0.6+b.rng.Float64()*0.1, math.Sin(a)*l.radius)
			t.Rotation = r3.Vec{
				X: math.Sin(a) * incline,
				Y: b.rng.Float64() * math.Pi,
				Z: -math.Cos(a) * incline,
			}
			tulip := b.tulip(vase, t, h, petal, leaf, stem)
			b.reg.AddTulip(tulip, &b.g.Node(tulip).Local, b.phase(), 1)
		}
	}
}

func (b *builder) tulip(parent int, t components.Transform, heightScale float64, petal, leaf, stem *components.Material) int {
	idx := b.g.Group(parent, "tulip", t)
	stemLen := 1.3 * heightScale
	b.g.Add(idx, "stem", components.At(0, stemLen/2, 0), cylinder(0.02, stemLen), stem)

	head := b.g.Group(idx, "head", scaled(components.At(0, stemLen, 0), 0.8+b.rng.Float64()*0.2))
	for j := 0; j < 6; j++ {
		a := float64(j) / 6 * 2 * math.Pi
		pt := components.At(math.Cos(a)*0.05, 0, math.Sin(a)*0.05)
		pt.Rotation = r3.Vec{X: -0.15, Y: a + math.Pi/2}
		b.g.Add(head, "petal", pt, Shape{Kind: KindFan, Path: petalOutline}, petal)
	}

	leaves := 1 + int(b.rng.Float64()*1.5)
	for k := 0; k < leaves; k++ {
		a := b.rng.Float64() * 2 * math.Pi
		lt := scaled(components.At(math.Cos(a)*0.02, stemLen*(0.6+b.rng.Float64()*0.3), math.Sin(a)*0.02), 0.6+b.rng.Float64()*0.2)
		lt.Rotation = r3.Vec{X: -0.3 - b.rng.Float64()*0.3, Y: a + math.Pi/2}
		b.g.Add(idx, "leaf", lt, Shape{Kind: KindFan, Path: tulipLeafOutline}, leaf)
	}
	return idx
}
