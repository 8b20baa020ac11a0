package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for the scene step.
const (
	PhaseInput     = "input"
	PhaseOcean     = "ocean"
	PhaseWaves     = "waves"
	PhaseSway      = "sway"
	PhaseParticles = "particles"
	PhaseClouds    = "clouds"
	PhaseTelemetry = "telemetry"
)

// Phases lists every step phase in execution order.
var Phases = []string{
	PhaseInput, PhaseOcean, PhaseWaves, PhaseSway,
	PhaseParticles, PhaseClouds, PhaseTelemetry,
}

// PerfCollector times the phases of each scene tick and keeps the last
// windowSize ticks in a ring. Phase durations live in one flat slice,
// phases-per-tick wide, indexed by the phase's position in the list the
// collector was built with. Time spent in a phase outside that list still
// counts toward the tick but is not attributed.
type PerfCollector struct {
	now func() time.Time

	phases  []string
	index   map[string]int
	window  int
	ticks   []float64 // tick durations in ns, one per slot
	split   []float64 // phase durations in ns, len(phases) per slot
	steps   []float64 // scene steps advanced, one per slot
	slot    int
	filled  int
	pending []float64

	tickStart  time.Time
	phaseStart time.Time
	current    int // index of the running phase, -1 when none or untracked
	running    bool
	stepCount  int

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
// With no phases given it tracks Phases.
func NewPerfCollector(windowSize int, phases ...string) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	if len(phases) == 0 {
		phases = Phases
	}
	p := &PerfCollector{
		now:     time.Now,
		phases:  slices.Clone(phases),
		index:   make(map[string]int, len(phases)),
		window:  windowSize,
		ticks:   make([]float64, windowSize),
		split:   make([]float64, windowSize*len(phases)),
		steps:   make([]float64, windowSize),
		pending: make([]float64, len(phases)),
		current: -1,
	}
	for i, name := range p.phases {
		p.index[name] = i
	}
	return p
}

// StartTick begins timing a new scene tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	clear(p.pending)
	p.current = -1
	p.running = false
	p.stepCount = 0
}

// StartPhase closes the running phase and starts timing the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.running = true
	p.current = -1
	if i, ok := p.index[phase]; ok {
		p.current = i
		// every scene step opens with the ocean phase
		if phase == PhaseOcean {
			p.stepCount++
		}
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.running && p.current >= 0 {
		p.pending[p.current] += float64(now.Sub(p.phaseStart))
	}
}

// EndTick closes the running phase and stores the tick in the ring.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.running = false

	n := len(p.phases)
	p.ticks[p.slot] = float64(now.Sub(p.tickStart))
	copy(p.split[p.slot*n:(p.slot+1)*n], p.pending)
	p.steps[p.slot] = float64(p.stepCount)

	p.slot = (p.slot + 1) % p.window
	if p.filled < p.window {
		p.filled++
	}
}

// RecordFrame marks the start of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	// Mean duration and share of the mean tick, per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64
	StepsPerTick   float64 // Scene steps advanced per tick (0 while paused)

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the filled part of the ring.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration, len(p.phases)),
		PhasePct:      make(map[string]float64, len(p.phases)),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	ticks := p.ticks[:p.filled]
	mean := stat.Mean(ticks, nil)
	sorted := slices.Clone(ticks)
	slices.Sort(sorted)

	s.AvgTickDuration = time.Duration(mean)
	s.MinTickDuration = time.Duration(floats.Min(ticks))
	s.MaxTickDuration = time.Duration(floats.Max(ticks))
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil))
	s.StepsPerTick = stat.Mean(p.steps[:p.filled], nil)
	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
	}

	n := len(p.phases)
	sum := make([]float64, n)
	for slot := 0; slot < p.filled; slot++ {
		floats.Add(sum, p.split[slot*n:(slot+1)*n])
	}
	floats.Scale(1/float64(p.filled), sum)
	for i, name := range p.phases {
		s.PhaseAvg[name] = time.Duration(sum[i])
		if mean > 0 {
			s.PhasePct[name] = sum[i] / mean * 100
		}
	}
	return s
}

// LogStats logs performance statistics, skipping phases under 0.1%.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"p95_tick_us", s.P95TickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"steps_per_tick", s.StepsPerTick,
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range Phases {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
		slog.Float64("steps_per_tick", s.StepsPerTick),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	StepsPerTick float64 `csv:"steps_per_tick"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	OceanPct     float64 `csv:"ocean_pct"`
	WavesPct     float64 `csv:"waves_pct"`
	SwayPct      float64 `csv:"sway_pct"`
	ParticlesPct float64 `csv:"particles_pct"`
	CloudsPct    float64 `csv:"clouds_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		P95TickUS:    s.P95TickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		StepsPerTick: s.StepsPerTick,
		FPS:          s.FPS,
		InputPct:     s.PhasePct[PhaseInput],
		OceanPct:     s.PhasePct[PhaseOcean],
		WavesPct:     s.PhasePct[PhaseWaves],
		SwayPct:      s.PhasePct[PhaseSway],
		ParticlesPct: s.PhasePct[PhaseParticles],
		CloudsPct:    s.PhasePct[PhaseClouds],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
