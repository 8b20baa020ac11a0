package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsLegend is the gesture help shown along the bottom edge.
const ControlsLegend = "Drag: orbit | Wheel/Pinch: zoom | Home: reset | Space: pause | M: mute"

// AudioState is the player state the panel displays.
type AudioState struct {
	Muted   bool
	Ambient float64
	Music   float64
}

// AudioAction reports what the user changed this frame.
type AudioAction struct {
	ToggleMute     bool
	AmbientChanged bool
	Ambient        float64
	MusicChanged   bool
	Music          float64
}

// AudioPanel draws the mute button and per-track volume sliders.
// It only reports changes; the caller turns them into player commands.
type AudioPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewAudioPanel creates a new audio panel.
func NewAudioPanel(x, y, width int32) *AudioPanel {
	return &AudioPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (a *AudioPanel) SetPosition(x, y int32) {
	a.x = x
	a.y = y
}

// Bounds returns the panel rectangle.
func (a *AudioPanel) Bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(a.x), Y: float32(a.y), Width: float32(a.width), Height: 150}
}

// Draw renders the panel and returns the user's changes.
func (a *AudioPanel) Draw(state AudioState) AudioAction {
	r := a.renderer
	pad := r.Theme.Padding
	b := a.Bounds()
	r.DrawPanel(a.x, a.y, a.width, int32(b.Height))

	var act AudioAction
	x := float32(a.x + pad)
	y := float32(a.y + pad)
	w := float32(a.width - pad*2)

	rl.DrawText("Audio", int32(x), int32(y), r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	y += 22

	label := "Mute"
	if state.Muted {
		label = "Unmute"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, label) {
		act.ToggleMute = true
	}
	y += 34

	act.Ambient, act.AmbientChanged = a.slider(x, &y, w, "Surf", state.Ambient)
	act.Music, act.MusicChanged = a.slider(x, &y, w, "Music", state.Music)
	return act
}

func (a *AudioPanel) slider(x float32, y *float32, w float32, label string, value float64) (float64, bool) {
	r := a.renderer
	rl.DrawText(label, int32(x), int32(*y), r.Theme.FontSize, r.Theme.LabelColor)
	*y += 14
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: w - 40, Height: 16},
		"", "",
		float32(value), 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", next), int32(x+w-34), int32(*y+2), r.Theme.FontSize, r.Theme.ValueColor)
	*y += 26
	return float64(next), float64(next) != float64(float32(value))
}
