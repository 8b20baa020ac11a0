package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FrameSample is the scene state observed at the end of one tick.
type FrameSample struct {
	WavePeak   float64 // Highest wave vertex
	FrontZ     float64 // Shoreline base position
	OceanMean  float64 // Mean ocean height
	AliveSpark int
	Respawns   int // Cumulative sparkler respawns
	Message    float64
}

// WindowStats holds aggregated scene statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SceneTime       float64 `csv:"scene_time"`

	WavePeakMean float64 `csv:"wave_peak_mean"`
	WavePeakMax  float64 `csv:"wave_peak_max"`
	FrontMin     float64 `csv:"front_min"`
	FrontMax     float64 `csv:"front_max"`
	OceanMean    float64 `csv:"ocean_mean"`
	OceanStd     float64 `csv:"ocean_std"`

	SparksMean float64 `csv:"sparks_mean"`
	SparksP10  float64 `csv:"sparks_p10"`
	SparksP90  float64 `csv:"sparks_p90"`
	Respawns   int     `csv:"respawns"` // During the window

	MessageOpacity float64 `csv:"message_opacity"`
}

// FrameCollector buffers per-tick samples and folds them into WindowStats.
type FrameCollector struct {
	windowTicks     int32
	step            float64
	windowStartTick int32
	startRespawns   int

	wavePeaks []float64
	fronts    []float64
	oceans    []float64
	sparks    []float64
	last      FrameSample
}

// NewFrameCollector creates a collector flushing every windowTicks ticks.
// step is the scene time per tick.
func NewFrameCollector(windowTicks int, step float64) *FrameCollector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &FrameCollector{
		windowTicks: int32(windowTicks),
		step:        step,
		wavePeaks:   make([]float64, 0, windowTicks),
		fronts:      make([]float64, 0, windowTicks),
		oceans:      make([]float64, 0, windowTicks),
		sparks:      make([]float64, 0, windowTicks),
	}
}

// Record adds one tick's sample to the current window.
func (c *FrameCollector) Record(s FrameSample) {
	c.wavePeaks = append(c.wavePeaks, s.WavePeak)
	c.fronts = append(c.fronts, s.FrontZ)
	c.oceans = append(c.oceans, s.OceanMean)
	c.sparks = append(c.sparks, float64(s.AliveSpark))
	c.last = s
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *FrameCollector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets the buffers for the next window.
func (c *FrameCollector) Flush(currentTick int32) WindowStats {
	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SceneTime:       float64(currentTick) * c.step,
		MessageOpacity:  c.last.Message,
		Respawns:        c.last.Respawns - c.startRespawns,
	}

	if len(c.wavePeaks) > 0 {
		ws.WavePeakMean = stat.Mean(c.wavePeaks, nil)
		ws.WavePeakMax = floats.Max(c.wavePeaks)
		ws.FrontMin, ws.FrontMax = floats.Min(c.fronts), floats.Max(c.fronts)
		ws.OceanMean, ws.OceanStd = stat.MeanStdDev(c.oceans, nil)

		sort.Float64s(c.sparks)
		ws.SparksMean = stat.Mean(c.sparks, nil)
		ws.SparksP10 = stat.Quantile(0.1, stat.Empirical, c.sparks, nil)
		ws.SparksP90 = stat.Quantile(0.9, stat.Empirical, c.sparks, nil)
	}

	c.windowStartTick = currentTick
	c.startRespawns = c.last.Respawns
	c.wavePeaks = c.wavePeaks[:0]
	c.fronts = c.fronts[:0]
	c.oceans = c.oceans[:0]
	c.sparks = c.sparks[:0]
	return ws
}

// WindowTicks returns the number of ticks per window.
func (c *FrameCollector) WindowTicks() int32 {
	return c.windowTicks
}

// LogStats logs the window at info level.
func (s WindowStats) LogStats() {
	slog.Info("window",
		"tick", s.WindowEndTick,
		"scene_time", s.SceneTime,
		"wave_peak", s.WavePeakMax,
		"front", []float64{s.FrontMin, s.FrontMax},
		"ocean_std", s.OceanStd,
		"sparks", s.SparksMean,
		"respawns", s.Respawns,
		"message", s.MessageOpacity,
	)
}
