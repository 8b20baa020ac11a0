package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sunset/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Tick       int64
	SceneTime  time.Duration
	FPS        int32
	Paused     bool
	CameraMode string
	Radius     float64
	Muted      bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Time: %s | FPS: %d", data.Tick, data.SceneTime.Round(10*time.Millisecond), data.FPS),
		10, 35, 16, h.renderer.Theme.LabelColor,
	)
	rl.DrawText(
		fmt.Sprintf("Camera: %s | Radius: %.1f", data.CameraMode, data.Radius),
		10, 55, 16, h.renderer.Theme.LabelColor,
	)

	status := "Playing"
	if data.Paused {
		status = "PAUSED"
	}
	if data.Muted {
		status += " | Muted"
	}
	rl.DrawText(status, 10, 75, 16, h.renderer.Theme.SectionHeader)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.renderer.Theme.LabelColor)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
	FPS        float64
	Registry   *systems.SystemRegistry
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Bounds returns the panel rectangle for the given number of phases.
func (p *PerfPanel) Bounds(phases int) rl.Rectangle {
	h := 50 + 14*phases
	return rl.Rectangle{X: float32(p.x - 5), Y: float32(p.y - 5), Width: 250, Height: float32(h)}
}

// Draw renders the panel with phases in the given order.
func (p *PerfPanel) Draw(data PerfPanelData, phases []string) {
	b := p.Bounds(len(phases))
	p.renderer.DrawPanel(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))

	x, y := p.x, p.y
	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s  FPS: %.0f", data.Total.Round(time.Microsecond), data.FPS), x, y, 14, p.renderer.Theme.SectionHeader)
	y += 16

	for _, name := range phases {
		avg := data.PhaseTimes[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := p.renderer.Theme.LabelColor
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		displayName := name
		if data.Registry != nil {
			displayName = data.Registry.GetName(name)
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %7s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
