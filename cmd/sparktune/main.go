package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/sunset/config"
)

// evalRow is one line of the evaluation log.
type evalRow struct {
	Eval        int     `csv:"eval"`
	Fitness     float64 `csv:"fitness"`
	Height      float64 `csv:"height"`
	Radius      float64 `csv:"radius"`
	Lifetime    float64 `csv:"lifetime"`
	Gravity     float64 `csv:"gravity"`
	Decay       float64 `csv:"decay"`
	SpeedMin    float64 `csv:"speed_min"`
	SpeedJitter float64 `csv:"speed_jitter"`
	LiftMin     float64 `csv:"lift_min"`
	LiftJitter  float64 `csv:"lift_jitter"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	ticks := flag.Int("ticks", 2000, "Measured ticks per run")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 300, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	height := flag.Float64("height", 1.4, "Target mean plume height above the tip")
	radius := flag.Float64("radius", 1.1, "Target mean spark distance from the stick")
	lifetime := flag.Float64("lifetime", 60, "Target mean spark lifetime in ticks")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	base := config.Cfg().Sparkler

	params := NewParamVector()
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	target := Target{Height: *height, Radius: *radius, Lifetime: *lifetime}
	evaluator := NewFitnessEvaluator(params, *ticks, evalSeeds, base, target)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(base))

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0,
	}

	logPath := filepath.Join(*outputDir, "sparktune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			plume := evaluator.LastStats()
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = append(bestParams[:0], raw...)
			}

			row := []evalRow{{
				Eval: evalCount, Fitness: fitness,
				Height: plume.Height, Radius: plume.Radius, Lifetime: plume.Lifetime,
				Gravity: raw[0], Decay: raw[1],
				SpeedMin: raw[2], SpeedJitter: raw[3],
				LiftMin: raw[4], LiftJitter: raw[5],
			}}
			if evalCount == 1 {
				err = gocsv.Marshal(row, logFile)
			} else {
				err = gocsv.MarshalWithoutHeaders(row, logFile)
			}
			if err != nil {
				log.Printf("failed to write log row: %v", err)
			}

			elapsed := time.Since(startTime)
			remaining := time.Duration(*maxEvals-evalCount) * (elapsed / time.Duration(evalCount))
			fmt.Printf("Eval %d/%d: height=%.2f radius=%.2f life=%.0f fitness=%.4f (best=%.4f) | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, plume.Height, plume.Radius, plume.Lifetime, fitness, bestFitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, *maxEvals)
	fmt.Printf("Target: height=%.2f radius=%.2f lifetime=%.0f\n", target.Height, target.Radius, target.Lifetime)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.6f\n", bestFitness)
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	best := base
	params.ApplyToConfig(&best, bestParams)
	data, err := yaml.Marshal(map[string]config.SparklerConfig{"sparkler": best})
	if err != nil {
		log.Fatalf("failed to marshal sparkler config: %v", err)
	}
	outPath := filepath.Join(*outputDir, "best_sparkler.yaml")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest sparkler config saved to: %s\n", outPath)
	}
}
