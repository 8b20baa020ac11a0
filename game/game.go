package game

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sunset/audio"
	"github.com/pthm-cable/sunset/camera"
	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/renderer"
	"github.com/pthm-cable/sunset/scene"
	"github.com/pthm-cable/sunset/systems"
	"github.com/pthm-cable/sunset/telemetry"
	"github.com/pthm-cable/sunset/ui"
)

// inputQueueSize bounds events buffered between ticks.
const inputQueueSize = 64

// Options configures game behavior.
type Options struct {
	Seed      int64
	Headless  bool
	LogStats  bool
	OutputDir string
	Muted     bool
	Realtime  bool
}

// Game holds the complete scene state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	scene    *scene.Scene
	animator *systems.Animator
	camera   *camera.Camera
	audio    *audio.Player // nil when headless or disabled
	clock    Clock

	// Ocean rows are split across workers when sim.workers > 1
	oceanPool *rowPool

	input  chan InputEvent
	paused bool

	// Raw pointer state for handleInput
	dragging bool
	pinching bool

	headless bool
	realtime bool
	logStats bool

	// Telemetry
	perf     *telemetry.PerfCollector
	frames   *telemetry.FrameCollector
	output   *telemetry.OutputManager
	registry *systems.SystemRegistry

	// Rendering (nil when headless)
	sky       *renderer.SkyRenderer
	renderer  *renderer.SceneRenderer
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	audioUI   *ui.AudioPanel
	inspector *ui.SceneInspector
	overlays  *ui.OverlayRegistry
}

// NewGameWithOptions creates a game from the global config.
// In graphical mode the raylib window must already exist.
func NewGameWithOptions(opts Options) *Game {
	return newGame(config.Cfg(), opts)
}

func newGame(cfg *config.Config, opts Options) *Game {
	if opts.Realtime && !cfg.Sim.Realtime {
		c := *cfg
		c.Sim.Realtime = true
		cfg = &c
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	s := scene.Build(cfg, rng)

	g := &Game{
		cfg:       cfg,
		rng:       rng,
		scene:     s,
		animator:  systems.NewAnimator(cfg.Sway, rng),
		camera:    camera.New(cfg),
		clock:     NewClock(cfg.Sim),
		oceanPool: newRowPool(s.Ocean, cfg.Sim.Workers),
		input:     make(chan InputEvent, inputQueueSize),
		headless:  opts.Headless,
		realtime:  cfg.Sim.Realtime,
		logStats:  opts.LogStats,
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		frames:    telemetry.NewFrameCollector(cfg.Derived.TicksPerStats, cfg.Sim.Step),
		registry:  systems.NewSystemRegistry(),
	}
	g.oceanPool.startWorkers()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.initAudio(opts.Muted)
		g.initRendering()
	}

	counts := s.Registry.Counts()
	slog.Info("scene built",
		"seed", opts.Seed,
		"nodes", s.Graph.Len(),
		"animations", counts.Total(),
		"sparks", s.Sparkler.Count(),
		"workers", g.oceanPool.numWorkers,
		"realtime", g.realtime,
	)
	return g
}

// initAudio starts playback. Failures are logged and the scene runs silent.
func (g *Game) initAudio(muted bool) {
	if !g.cfg.Audio.Enabled {
		return
	}
	ac := g.cfg.Audio
	ac.Muted = ac.Muted || muted
	p, err := audio.New(ac)
	if err != nil {
		slog.Error("audio disabled", "error", err)
		return
	}
	if err := p.Start(); err != nil {
		slog.Error("audio disabled", "error", err)
		closeLogged("audio", p)
		return
	}
	g.audio = p
}

func (g *Game) initRendering() {
	w := int32(g.cfg.Screen.Width)
	g.sky = renderer.NewSkyRenderer(g.cfg.Scene)
	g.renderer = renderer.NewSceneRenderer(g.cfg, g.scene)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(w-260, 10)
	g.audioUI = ui.NewAudioPanel(w-260, 200, 250)
	g.inspector = ui.NewSceneInspector(10, 110, 240)
	g.overlays = ui.NewOverlayRegistry()
}

// Input queues a host event for the next tick without blocking.
// When the queue is full the oldest event is dropped.
func (g *Game) Input(ev InputEvent) bool {
	for {
		select {
		case g.input <- ev:
			return true
		default:
		}
		select {
		case <-g.input:
		default:
		}
	}
}

// Tick runs one fixed step: drain input, then advance unless paused.
func (g *Game) Tick() {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.drainInput()
	if !g.paused {
		g.advance()
	}
	g.perf.EndTick()
}

// Step converts elapsed wall seconds into whole steps and runs them.
// It returns the number of steps taken. One perf sample covers the frame.
func (g *Game) Step(elapsed float64) int {
	g.perf.StartTick()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.drainInput()
	n := 0
	if !g.paused {
		n = g.clock.Accumulate(elapsed)
	}
	for i := 0; i < n; i++ {
		g.advance()
	}
	g.perf.EndTick()
	return n
}

// advance moves scene time one step and updates every animated system.
func (g *Game) advance() {
	t := g.clock.Advance()
	s := g.scene

	g.perf.StartPhase(telemetry.PhaseOcean)
	g.oceanPool.update(t)

	g.perf.StartPhase(telemetry.PhaseWaves)
	s.Wave.Update(t)

	g.perf.StartPhase(telemetry.PhaseSway)
	g.animator.Tick(s.Registry, t)

	g.perf.StartPhase(telemetry.PhaseParticles)
	s.Sparkler.Update()

	g.perf.StartPhase(telemetry.PhaseClouds)
	g.animator.Clouds(s.Registry)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()
}

// Update runs one graphical frame of input and simulation.
func (g *Game) Update() {
	g.perf.RecordFrame()
	g.handleInput()
	if g.realtime {
		g.Step(float64(rl.GetFrameTime()))
		return
	}
	g.Tick()
}

// UpdateHeadless runs one step without raylib.
func (g *Game) UpdateHeadless() {
	g.Tick()
}

// Draw renders the scene and UI.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	rl.BeginDrawing()
	g.sky.Draw()
	g.renderer.Draw(g.camera)
	g.drawActiveOverlays()
	rl.EndDrawing()
}

// Unload releases workers, audio, output files and GPU resources.
func (g *Game) Unload() {
	g.oceanPool.stopWorkers()
	closeLogged("audio", g.audio)
	closeLogged("output", g.output)
	if g.renderer != nil {
		g.renderer.Unload()
	}
}

// Ticks returns the number of steps taken.
func (g *Game) Ticks() int64 {
	return g.clock.Ticks()
}

// Time returns the current scene time.
func (g *Game) Time() float64 {
	return g.clock.Time()
}

// Paused reports whether animation is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Scene exposes the built scene for tools and tests.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Camera exposes the orbit camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Config returns the config the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// uptime formats scene time for the HUD.
func (g *Game) uptime() time.Duration {
	return time.Duration(g.clock.Time() * float64(time.Second))
}

// closeLogged closes c and logs a failure instead of returning it.
func closeLogged(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close "+name, "error", err)
	}
}
