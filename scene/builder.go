package scene

import (
	"image/color"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/components"
	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/systems"
)

// Scene is everything the builder produces: the node graph, the animated
// surfaces and particle pool it references, and the animation records.
type Scene struct {
	Graph    *Graph
	Registry *systems.AnimationRegistry

	Ocean    *systems.Ocean
	Wave     *systems.Wave
	Beach    *systems.Grid
	Blanket  *systems.Grid
	Sparkler *systems.Sparkler

	Message   *components.Material
	CloudMask []color.RGBA

	// Node indices the renderer and tests look up directly
	Picnic   int
	Clouds   int
	Sparks   int
	Sun      int
	Greeting int
}

// flat lays an XY-plane shape down onto the ground.
const flat = -math.Pi / 2

type builder struct {
	cfg *config.Config
	rng *rand.Rand
	g   *Graph
	reg *systems.AnimationRegistry

	palms int
	wines int
}

// Build lays out the whole scene. Every random choice (phase offsets, frond
// tilt, tulip placement, foam, sparks) draws from rng, so a seed reproduces
// the scene exactly.
func Build(cfg *config.Config, rng *rand.Rand) *Scene {
	b := &builder{
		cfg: cfg,
		rng: rng,
		g:   NewGraph(),
		reg: systems.NewAnimationRegistry(),
	}

	s := &Scene{
		Graph:    b.g,
		Registry: b.reg,
		Ocean:    systems.NewOcean(cfg.Ocean),
		Wave:     systems.NewWave(cfg.Wave, rng),
		Beach:    systems.NewBeach(),
		Blanket:  systems.NewBlanket(14, 16),
		Sparkler: systems.NewSparkler(cfg.Sparkler, rng),
	}

	s.Sun = b.sun()
	b.surfaces(s)
	b.palmTrees()
	s.Picnic = b.picnic(s)
	s.Clouds = b.clouds()
	s.Greeting, s.Message = b.message()

	c := cfg.Clouds
	s.CloudMask = systems.NewCloudMask(c.TextureSize, c.NoiseScale, c.NoiseOctaves, c.NoiseSeed).Generate()

	s.Sparks, _ = b.g.Find("sparks")
	return s
}

func at(v config.Vec3) components.Transform {
	return components.At(v.X(), v.Y(), v.Z())
}

func solid(hex uint32) *components.Material {
	return components.Solid(config.Hex(hex))
}

func glass(hex uint32, opacity float64) *components.Material {
	return &components.Material{Color: config.Hex(hex), Opacity: opacity}
}

func glow(hex uint32, opacity float64) *components.Material {
	return &components.Material{Color: config.Hex(hex), Opacity: opacity, Additive: true, Unlit: true}
}

func scaled(t components.Transform, s float64) components.Transform {
	t.Scale = r3.Vec{X: s, Y: s, Z: s}
	return t
}

func lying(x, y, z float64) components.Transform {
	return flatten(components.At(x, y, z))
}

func flatten(t components.Transform) components.Transform {
	t.Rotation.X = flat
	return t
}

func (b *builder) sun() int {
	return b.g.Add(Root, "sun", components.At(0, 5, -60),
		Shape{Kind: KindSprite, Size: r3.Vec{X: 40, Y: 40}, Sprite: SpriteSun},
		glow(0xffffff, 1))
}

func (b *builder) surfaces(s *Scene) {
	o := b.cfg.Ocean
	b.g.Add(Root, "ocean", flatten(at(o.Position)), Shape{Kind: KindGrid, Grid: s.Ocean.Grid}, components.Solid(o.Color))

	w := b.cfg.Wave
	b.g.Add(Root, "waves", flatten(at(w.Position)), Shape{Kind: KindGrid, Grid: s.Wave.Grid},
		&components.Material{Color: w.ShallowColor, Opacity: w.Opacity})

	b.g.Add(Root, "beach", lying(0, 0.05, 25), Shape{Kind: KindGrid, Grid: s.Beach}, components.Solid(systems.SandColor))
}

// message is the greeting sprite that fades in above the sun.
func (b *builder) message() (int, *components.Material) {
	c := b.cfg.Clouds
	m := &components.Material{Color: c.MessageTint, Opacity: 0, Additive: true, Unlit: true}
	idx := b.g.Add(Root, "greeting", components.At(0, 30, -55),
		Shape{Kind: KindSprite, Size: r3.Vec{X: 60, Y: 30}, Sprite: SpriteMessage}, m)
	b.reg.AddFade(m, c.FadePerTick, 1)
	return idx, m
}

var cloudLayout = []struct {
	pos, size r3.Vec
	opacity   float64 // Relative to the configured base opacity
}{
	{r3.Vec{X: 10, Y: 12, Z: -45}, r3.Vec{X: 25, Y: 15}, 1},
	{r3.Vec{X: -18, Y: 15, Z: -50}, r3.Vec{X: 20, Y: 12}, 0.8},
	{r3.Vec{X: -5, Y: 20, Z: -40}, r3.Vec{X: 18, Y: 10}, 1},
	{r3.Vec{X: -35, Y: 10, Z: -55}, r3.Vec{X: 30, Y: 18}, 0.6},
	{r3.Vec{X: 30, Y: 14, Z: -55}, r3.Vec{X: 28, Y: 16}, 0.6},
}

func (b *builder) clouds() int {
	c := b.cfg.Clouds
	group := b.g.Group(Root, "clouds", components.Identity())
	for _, l := range cloudLayout {
		m := &components.Material{Color: c.Tint, Opacity: c.BaseOpacity * l.opacity, Additive: true, Unlit: true}
		b.g.Add(group, "cloud", components.At(l.pos.X, l.pos.Y, l.pos.Z),
			Shape{Kind: KindSprite, Size: l.size, Sprite: SpriteCloud}, m)
	}
	b.reg.AddDrift(group, &b.g.Node(group).Local, c.DriftPerTick)
	return group
}

func (b *builder) phase() float64 {
	return b.rng.Float64() * 2 * math.Pi
}
