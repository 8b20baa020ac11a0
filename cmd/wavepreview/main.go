// Shoreline wave preview tool - top-down view of the run-up with sliders.
//
// Usage: go run ./cmd/wavepreview [-config path]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/sunset/config"
	"github.com/pthm-cable/sunset/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewW     = 640
	previewH     = 320
	plotH        = 150
	panelWidth   = windowWidth - previewW - 30
)

// sliderSpec binds a slider to one wave parameter.
type sliderSpec struct {
	label    string
	min, max float32
	format   string
	value    func(c *config.WaveConfig) *float64
}

var sliders = []sliderSpec{
	{"Cycle speed", 0.1, 3, "%.2f", func(c *config.WaveConfig) *float64 { return &c.CycleSpeed }},
	{"Cycle exponent (time near run-up)", 0.2, 2, "%.2f", func(c *config.WaveConfig) *float64 { return &c.CycleExponent }},
	{"Retreat z", -30, 0, "%.1f", func(c *config.WaveConfig) *float64 { return &c.RetreatZ }},
	{"Run-up z", 0, 30, "%.1f", func(c *config.WaveConfig) *float64 { return &c.RunUpZ }},
	{"Curve frequency", 0, 0.1, "%.3f", func(c *config.WaveConfig) *float64 { return &c.CurveFreq }},
	{"Curve depth", 0, 15, "%.1f", func(c *config.WaveConfig) *float64 { return &c.CurveDepth }},
	{"Height scale", 0, 1, "%.2f", func(c *config.WaveConfig) *float64 { return &c.HeightScale }},
	{"Ripple amplitude", 0, 0.3, "%.3f", func(c *config.WaveConfig) *float64 { return &c.RippleAmp }},
	{"Foam distance", 0.1, 10, "%.1f", func(c *config.WaveConfig) *float64 { return &c.FoamDistance }},
	{"Depth range", 1, 60, "%.1f", func(c *config.WaveConfig) *float64 { return &c.DepthRange }},
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defaults := config.Cfg().Wave
	params := defaults
	step := config.Cfg().Sim.Step

	rl.InitWindow(windowWidth, windowHeight, "Shoreline Wave Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	rng := rand.New(rand.NewSource(1))
	wave := systems.NewWave(params, rng)
	cols, rows := wave.Grid.Cols(), wave.Grid.Rows()

	img := rl.GenImageColor(cols, rows, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)
	pixels := make([]color.RGBA, cols*rows)

	var t float64
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			t += step
		}
		wave.Update(t)
		updateTexture(texture, pixels, wave.Grid)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Top-down preview, sea at the top
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(cols), Height: float32(rows)},
			rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH},
			rl.Vector2{},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		drawCyclePlot(10, previewH+30, previewW, plotH, params, t)

		statsY := int32(previewH + plotH + 45)
		peak, wet := gridStats(wave.Grid)
		rl.DrawText(fmt.Sprintf("Front: %.2f  Peak height: %.2f  Wet: %.0f%%", wave.FrontBase, peak, wet*100), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.2f  Cycle: %.3f", t, systems.WaveCycle(t, params.CycleSpeed, params.CycleExponent)), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)
		rl.DrawText("Wave Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed := false
		for _, s := range sliders {
			v := s.value(&params)
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				fmt.Sprintf(s.format, s.min), fmt.Sprintf(s.format, s.max),
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if nv != float32(*v) {
				*v = float64(nv)
				changed = true
			}
			panelY += 32
		}
		if changed {
			wave = systems.NewWave(params, rng)
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			wave = systems.NewWave(params, rng)
			t = 0
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out, err := yaml.Marshal(map[string]config.WaveConfig{"wave": params})
			if err != nil {
				log.Printf("failed to marshal wave config: %v", err)
			} else {
				rl.SetClipboardText(string(out))
			}
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// drawCyclePlot draws the shoreline position over two run-up cycles with a
// marker at the current time.
func drawCyclePlot(x, y, w, h int32, c config.WaveConfig, t float64) {
	rl.DrawRectangleLines(x, y, w, h, rl.LightGray)
	rl.DrawText("Front z over time", x+5, y+5, 12, rl.Gray)
	if c.CycleSpeed <= 0 {
		return
	}
	span := 4 * math.Pi / c.CycleSpeed
	lo, hi := min(c.RetreatZ, c.RunUpZ), max(c.RetreatZ, c.RunUpZ)
	if hi == lo {
		hi = lo + 1
	}
	toY := func(z float64) int32 {
		return y + h - 5 - int32((z-lo)/(hi-lo)*float64(h-10))
	}

	start := t - span/2
	prevY := toY(systems.FrontBaseZ(start, c.CycleSpeed, c.CycleExponent, c.RetreatZ, c.RunUpZ))
	for px := int32(1); px < w; px++ {
		tt := start + span*float64(px)/float64(w)
		cy := toY(systems.FrontBaseZ(tt, c.CycleSpeed, c.CycleExponent, c.RetreatZ, c.RunUpZ))
		rl.DrawLine(x+px-1, prevY, x+px, cy, rl.DarkBlue)
		prevY = cy
	}
	rl.DrawLine(x+w/2, y, x+w/2, y+h, rl.Orange)
}

// gridStats returns the peak height and the fraction of wet vertices.
func gridStats(g *systems.Grid) (peak, wet float64) {
	n := 0
	for _, z := range g.Z {
		peak = max(peak, z)
		if z > 0 {
			n++
		}
	}
	return peak, float64(n) / float64(g.Len())
}

// updateTexture paints wet vertices with their wave color, brightened by
// height, and dry vertices as sand.
func updateTexture(texture rl.Texture2D, pixels []color.RGBA, g *systems.Grid) {
	sand := colorful.Color(systems.SandColor)
	white := colorful.Color{R: 1, G: 1, B: 1}
	for i := range pixels {
		c := sand
		if g.Z[i] > 0 {
			c = colorful.Color(g.Colors[i]).BlendRgb(white, min(g.Z[i]/3, 0.5))
		}
		r, gg, b := c.Clamped().RGB255()
		pixels[i] = color.RGBA{R: r, G: gg, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
