package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int, phases ...string) (*PerfCollector, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	pc := NewPerfCollector(window, phases...)
	pc.now = clk.Now
	return pc, clk
}

// runTick drives one tick whose phases take the given durations in order.
func runTick(pc *PerfCollector, clk *fakeClock, phases []string, durs ...time.Duration) {
	pc.StartTick()
	for i, name := range phases {
		pc.StartPhase(name)
		clk.Advance(durs[i])
	}
	pc.EndTick()
}

func TestPerfCollector_PhaseSplit(t *testing.T) {
	pc, clk := newTestCollector(10)
	order := []string{PhaseInput, PhaseOcean, PhaseWaves, PhaseSway}

	for range 4 {
		runTick(pc, clk, order, 100*time.Microsecond, 500*time.Microsecond, 300*time.Microsecond, 100*time.Microsecond)
	}
	stats := pc.Stats()

	assert.Equal(t, time.Millisecond, stats.AvgTickDuration)
	assert.Equal(t, 500*time.Microsecond, stats.PhaseAvg[PhaseOcean])
	assert.Equal(t, 300*time.Microsecond, stats.PhaseAvg[PhaseWaves])
	assert.InDelta(t, 50, stats.PhasePct[PhaseOcean], 1e-9)
	assert.InDelta(t, 10, stats.PhasePct[PhaseSway], 1e-9)
	assert.Zero(t, stats.PhaseAvg[PhaseClouds], "unvisited phases report zero")
	assert.Len(t, stats.PhaseAvg, len(Phases), "every tracked phase has an entry")
	assert.InDelta(t, 1000, stats.TicksPerSecond, 1e-9)
	assert.InDelta(t, 1, stats.StepsPerTick, 1e-12)
}

func TestPerfCollector_RollingWindowDropsOldTicks(t *testing.T) {
	pc, clk := newTestCollector(3)
	order := []string{PhaseOcean}

	for range 3 {
		runTick(pc, clk, order, 10*time.Millisecond)
	}
	for range 3 {
		runTick(pc, clk, order, 2*time.Millisecond)
	}
	stats := pc.Stats()

	assert.Equal(t, 2*time.Millisecond, stats.AvgTickDuration, "only the last three ticks count")
	assert.Equal(t, 2*time.Millisecond, stats.MaxTickDuration)
}

func TestPerfCollector_TickSpread(t *testing.T) {
	pc, clk := newTestCollector(20)
	order := []string{PhaseOcean}

	for i := 1; i <= 20; i++ {
		runTick(pc, clk, order, time.Duration(i)*time.Millisecond)
	}
	stats := pc.Stats()

	assert.Equal(t, time.Millisecond, stats.MinTickDuration)
	assert.Equal(t, 20*time.Millisecond, stats.MaxTickDuration)
	assert.Equal(t, 19*time.Millisecond, stats.P95TickDuration)
	assert.Equal(t, 10500*time.Microsecond, stats.AvgTickDuration)
}

func TestPerfCollector_UntrackedPhaseCountsTowardTick(t *testing.T) {
	pc, clk := newTestCollector(4)

	runTick(pc, clk, []string{PhaseWaves, "debug", PhaseClouds},
		time.Millisecond, 2*time.Millisecond, time.Millisecond)
	stats := pc.Stats()

	assert.Equal(t, 4*time.Millisecond, stats.AvgTickDuration)
	assert.Equal(t, time.Millisecond, stats.PhaseAvg[PhaseWaves])
	assert.Equal(t, time.Millisecond, stats.PhaseAvg[PhaseClouds])
	assert.NotContains(t, stats.PhaseAvg, "debug")
}

func TestPerfCollector_CustomPhases(t *testing.T) {
	pc, clk := newTestCollector(4, "fast", "slow")

	for range 5 {
		runTick(pc, clk, []string{"fast", "slow"}, 10*time.Microsecond, 90*time.Microsecond)
	}
	stats := pc.Stats()

	assert.InDelta(t, 10, stats.PhasePct["fast"], 1e-9)
	assert.InDelta(t, 90, stats.PhasePct["slow"], 1e-9)
	assert.NotContains(t, stats.PhaseAvg, PhaseOcean)
	assert.Zero(t, stats.StepsPerTick)
}

func TestPerfCollector_StepsPerTick(t *testing.T) {
	pc, clk := newTestCollector(4)
	step := []string{PhaseOcean, PhaseWaves}

	// one tick advancing three steps, one paused tick
	pc.StartTick()
	pc.StartPhase(PhaseInput)
	for range 3 {
		for _, name := range step {
			pc.StartPhase(name)
			clk.Advance(time.Microsecond)
		}
	}
	pc.EndTick()
	runTick(pc, clk, []string{PhaseInput}, time.Microsecond)

	stats := pc.Stats()
	assert.InDelta(t, 1.5, stats.StepsPerTick, 1e-12)
	assert.Equal(t, 3*time.Microsecond/2, stats.PhaseAvg[PhaseOcean])
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(0)

	stats := pc.Stats()
	assert.Zero(t, stats.AvgTickDuration)
	assert.Zero(t, stats.P95TickDuration)
	assert.NotNil(t, stats.PhaseAvg)
	assert.NotNil(t, stats.PhasePct)
	assert.Zero(t, stats.FPS)
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc, clk := newTestCollector(10)

	pc.RecordFrame()
	assert.Zero(t, pc.Stats().FPS, "one frame has no duration")

	clk.Advance(20 * time.Millisecond)
	pc.RecordFrame()
	stats := pc.Stats()

	assert.Equal(t, 20*time.Millisecond, stats.FrameDuration)
	assert.InDelta(t, 50, stats.FPS, 1e-9)
}

func TestPerfStats_ToCSV(t *testing.T) {
	pc, clk := newTestCollector(2)
	runTick(pc, clk, []string{PhaseOcean, PhaseParticles}, 3*time.Millisecond, time.Millisecond)

	row := pc.Stats().ToCSV(120)
	require.Equal(t, int32(120), row.WindowEnd)
	assert.Equal(t, int64(4000), row.AvgTickUS)
	assert.Equal(t, int64(4000), row.P95TickUS)
	assert.InDelta(t, 75, row.OceanPct, 1e-9)
	assert.InDelta(t, 25, row.ParticlesPct, 1e-9)
	assert.Zero(t, row.InputPct)
}
