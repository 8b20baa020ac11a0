package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SurfGenerator is an endless wash of shaped noise that swells and recedes
// like waves breaking on sand.
type SurfGenerator struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	pos   int
	swell int // Samples per swell cycle

	lowL, lowR float64 // One-pole low-pass state per channel
}

// NewSurfGenerator creates a surf generator. The seed fixes the noise.
func NewSurfGenerator(sr beep.SampleRate, seed int64) *SurfGenerator {
	return &SurfGenerator{
		sr:    sr,
		rng:   rand.New(rand.NewSource(seed)),
		swell: sr.N(7 * time.Second),
	}
}

func (g *SurfGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cycle := float64(g.pos%g.swell) / float64(g.swell)
		// Fast rise, long hiss back down
		env := math.Pow(math.Sin(cycle*math.Pi), 2)*0.8 + 0.2

		g.lowL += (g.rng.Float64()*2 - 1 - g.lowL) * 0.08
		g.lowR += (g.rng.Float64()*2 - 1 - g.lowR) * 0.08

		samples[i][0] = clampSample(g.lowL * env * 1.6)
		samples[i][1] = clampSample(g.lowR * env * 1.6)
		g.pos++
	}
	return len(samples), true
}

func (g *SurfGenerator) Err() error { return nil }

// ArpeggioGenerator loops a gentle chord progression as a plucked arpeggio.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

// progression holds four chords of four notes, in Hz.
var progression = [][]float64{
	{261.63, 329.63, 392.00, 523.25}, // C
	{220.00, 261.63, 329.63, 440.00}, // Am
	{174.61, 220.00, 261.63, 349.23}, // F
	{196.00, 246.94, 293.66, 392.00}, // G
}

// NewArpeggioGenerator creates the music generator.
func NewArpeggioGenerator(sr beep.SampleRate) *ArpeggioGenerator {
	var notes []float64
	for _, chord := range progression {
		for rep := 0; rep < 2; rep++ {
			notes = append(notes, chord...)
		}
	}
	return &ArpeggioGenerator{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(250 * time.Millisecond),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		into := g.pos % g.noteLen
		if into == 0 {
			g.phase = 0
		}
		freq := g.notes[idx]

		// Short attack, exponential decay
		t := float64(into) / float64(g.sr)
		env := math.Min(1, t/0.01) * math.Exp(-t*6)

		v := (math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(4*math.Pi*g.phase)) / 1.3 * env
		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error { return nil }

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
