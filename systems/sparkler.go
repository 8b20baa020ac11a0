package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sunset/config"
)

// Spark is a single sparkler particle.
type Spark struct {
	Pos   r3.Vec
	Vel   r3.Vec
	Life  float64 // <= 0 means the slot respawns next tick
	Color config.Color
	Size  float64
}

// Sparkler is a fixed pool of sparks thrown from the tip of a stick.
// Slots are reused in place; the pool never grows or shrinks.
type Sparkler struct {
	Sparks []Spark
	Origin r3.Vec // Emitter tip in the sparkler's local space

	cfg      config.SparklerConfig
	rng      *rand.Rand
	respawns int
}

// NewSparkler creates the pool with every slot due to spawn on the first tick.
func NewSparkler(cfg config.SparklerConfig, rng *rand.Rand) *Sparkler {
	origin := r3.Vec{Y: cfg.TipHeight}
	s := &Sparkler{
		Sparks: make([]Spark, cfg.Capacity),
		Origin: origin,
		cfg:    cfg,
		rng:    rng,
	}
	for i := range s.Sparks {
		s.Sparks[i] = Spark{Pos: origin, Life: -1}
	}
	return s
}

// Update advances every spark by one fixed step.
// Dead sparks respawn; live ones integrate, fall and fade.
func (s *Sparkler) Update() {
	for i := range s.Sparks {
		p := &s.Sparks[i]

		if p.Life <= 0 {
			s.respawn(p)
			continue
		}

		p.Life -= s.cfg.Decay
		p.Vel.Y -= s.cfg.Gravity
		p.Pos = r3.Add(p.Pos, p.Vel)
		s.shade(p)
	}
}

// respawn resets a slot at the emitter with a fresh outward velocity.
func (s *Sparkler) respawn(p *Spark) {
	c := &s.cfg
	angle := s.rng.Float64() * 2 * math.Pi
	speed := c.SpeedMin + s.rng.Float64()*c.SpeedJitter
	lift := c.LiftMin + s.rng.Float64()*c.LiftJitter

	p.Life = c.LifeMin + s.rng.Float64()*c.LifeJitter
	p.Pos = s.Origin
	p.Vel = r3.Vec{X: math.Cos(angle) * speed, Y: lift, Z: math.Sin(angle) * speed}
	s.shade(p)
	s.respawns++
}

// shade derives color and size from remaining life: white-gold while
// fresh, through gold, to red as it dies.
func (s *Sparkler) shade(p *Spark) {
	f := clamp01(p.Life)
	p.Color = config.Color{R: 1, G: f*0.8 + 0.2, B: f * 0.2}
	p.Size = f * s.cfg.SizeScale
}

// Alive returns the number of sparks with life remaining.
func (s *Sparkler) Alive() int {
	n := 0
	for i := range s.Sparks {
		if s.Sparks[i].Life > 0 {
			n++
		}
	}
	return n
}

// Respawns returns how many spawns have happened since creation.
func (s *Sparkler) Respawns() int {
	return s.respawns
}

// Count returns the pool capacity.
func (s *Sparkler) Count() int {
	return len(s.Sparks)
}
