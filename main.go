package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	muted := flag.Bool("muted", false, "Start with audio muted")
	realtime := flag.Bool("realtime", false, "Advance by wall time instead of one step per frame")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Muted:     *muted,
		Realtime:  *realtime,
	}

	if *headless {
		// Headless mode - pure CPU animation, no raylib needed
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless scene",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
			"step", cfg.Sim.Step,
		)

		err := game.Run(ctx, g, *maxTicks)
		switch {
		case errors.Is(err, context.Canceled):
			slog.Info("interrupted", "tick", g.Ticks())
		case err != nil:
			slog.Error("run failed", "error", err)
		default:
			slog.Info("max ticks reached", "tick", g.Ticks(), "time", g.Time())
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Ticks() >= *maxTicks {
			break
		}
	}
}
