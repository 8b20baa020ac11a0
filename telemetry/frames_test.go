package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/sunset/config"
)

func TestFrameCollector_Flush(t *testing.T) {
	c := NewFrameCollector(4, 0.01)

	for i := 0; i < 4; i++ {
		assert.False(t, c.ShouldFlush(int32(i)))
		c.Record(FrameSample{
			WavePeak:   float64(i),
			FrontZ:     -10 + float64(i),
			OceanMean:  []float64{1, -1, 1, -1}[i],
			AliveSpark: 100 + i*10,
			Respawns:   5 + i,
			Message:    0.003 * float64(i+1),
		})
	}
	require.True(t, c.ShouldFlush(4))

	ws := c.Flush(4)
	assert.Equal(t, int32(0), ws.WindowStartTick)
	assert.Equal(t, int32(4), ws.WindowEndTick)
	assert.InDelta(t, 0.04, ws.SceneTime, 1e-12)
	assert.InDelta(t, 1.5, ws.WavePeakMean, 1e-12)
	assert.Equal(t, 3.0, ws.WavePeakMax)
	assert.Equal(t, -10.0, ws.FrontMin)
	assert.Equal(t, -7.0, ws.FrontMax)
	assert.InDelta(t, 0, ws.OceanMean, 1e-12)
	assert.Greater(t, ws.OceanStd, 1.0)
	assert.InDelta(t, 115, ws.SparksMean, 1e-12)
	assert.Equal(t, 100.0, ws.SparksP10)
	assert.Equal(t, 130.0, ws.SparksP90)
	assert.Equal(t, 8, ws.Respawns, "the first window counts from a fresh pool")
	assert.InDelta(t, 0.012, ws.MessageOpacity, 1e-12)

	// Next window starts from the flush tick
	assert.False(t, c.ShouldFlush(7))
	assert.True(t, c.ShouldFlush(8))
}

func TestFrameCollector_RespawnsCarryAcrossWindows(t *testing.T) {
	c := NewFrameCollector(2, 0.01)

	c.Record(FrameSample{Respawns: 150})
	c.Record(FrameSample{Respawns: 152})
	first := c.Flush(2)
	assert.Equal(t, 152, first.Respawns)

	c.Record(FrameSample{Respawns: 155})
	c.Record(FrameSample{Respawns: 161})
	second := c.Flush(4)
	assert.Equal(t, 9, second.Respawns, "second window counts from the last flushed total")
	assert.Equal(t, int32(2), second.WindowStartTick)

	third := c.Flush(6)
	assert.Zero(t, third.Respawns, "an empty window keeps the previous total")
}

func TestFrameCollector_EmptyWindow(t *testing.T) {
	c := NewFrameCollector(0, 0.01)
	assert.Equal(t, int32(1), c.WindowTicks())

	ws := c.Flush(1)
	assert.Zero(t, ws.WavePeakMax)
	assert.Zero(t, ws.SparksMean)
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))

	for i := int32(1); i <= 3; i++ {
		require.NoError(t, om.WriteFrames(WindowStats{WindowEndTick: i * 100, SparksMean: 140}))
	}
	pc := NewPerfCollector(4)
	pc.StartTick()
	pc.StartPhase(PhaseOcean)
	pc.EndTick()
	require.NoError(t, om.WritePerf(pc.Stats(), 100))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4, "one header and three rows")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,scene_time,"))

	var rows []WindowStats
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	assert.Equal(t, int32(300), rows[2].WindowEndTick)

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(perf), "ocean_pct")

	_, err = config.Load(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err, "the snapshot loads back")
}

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	assert.NoError(t, om.WriteFrames(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0))
	assert.NoError(t, om.WriteConfig(nil))
	assert.Empty(t, om.Dir())
	assert.NoError(t, om.Close())
}
