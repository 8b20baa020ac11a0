package game

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/sunset/telemetry"
)

// recordTelemetry samples the scene after a step and flushes the stats
// window when it is due.
func (g *Game) recordTelemetry() {
	g.frames.Record(g.sampleFrame())

	tick := int32(g.clock.Ticks())
	if !g.frames.ShouldFlush(tick) {
		return
	}

	stats := g.frames.Flush(tick)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteFrames(stats); err != nil {
		slog.Error("failed to write frames", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// sampleFrame reads the observable animation state.
func (g *Game) sampleFrame() telemetry.FrameSample {
	s := g.scene
	return telemetry.FrameSample{
		WavePeak:   floats.Max(s.Wave.Grid.Z),
		FrontZ:     s.Wave.FrontBase,
		OceanMean:  stat.Mean(s.Ocean.Grid.Z, nil),
		AliveSpark: s.Sparkler.Alive(),
		Respawns:   s.Sparkler.Respawns(),
		Message:    s.Message.Opacity,
	}
}
