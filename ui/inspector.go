package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SceneInfo is the scene summary the inspector shows.
type SceneInfo struct {
	Nodes      int
	Kinds      map[string]int
	Flames     int
	Tulips     int
	Wines      int
	Palms      int
	Fronds     int
	Sparks     int
	SparkCap   int
	Respawns   int
	WavePeak   float64
	FrontZ     float64
	Message    float64
	CloudAngle float64
}

var sceneFields = []FieldDescriptor[SceneInfo]{
	{Label: "Animations", Widget: WidgetSection},
	{Label: "Flames", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Flames) }},
	{Label: "Tulips", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Tulips) }},
	{Label: "Wine", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Wines) }},
	{Label: "Palms", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Palms) }},
	{Label: "Fronds", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Fronds) }},
	{Widget: WidgetSpacer},
	{Label: "State", Widget: WidgetSection},
	{Label: "Wave peak", Widget: WidgetBar, Range: FieldRange{Max: 2.5}, Value: func(s *SceneInfo) float64 { return s.WavePeak }},
	{Label: "Front z", Widget: WidgetText, Format: "%+.2f", Value: func(s *SceneInfo) float64 { return s.FrontZ }},
	{Label: "Message", Widget: WidgetBar, Range: DefaultRange(), Value: func(s *SceneInfo) float64 { return s.Message }},
	{Label: "Cloud yaw", Widget: WidgetText, Format: "%+.4f", Value: func(s *SceneInfo) float64 { return s.CloudAngle }},
	{Label: "Respawns", Widget: WidgetText, Format: "%.0f", Value: func(s *SceneInfo) float64 { return float64(s.Respawns) }},
}

// kindOrder lists node kinds in display order.
var kindOrder = []string{"grid", "box", "cylinder", "sphere", "torus", "tube", "lathe", "fan", "disc", "sprite", "points"}

// SceneInspector renders the scene summary panel.
type SceneInspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewSceneInspector creates a new inspector panel.
func NewSceneInspector(x, y, width int32) *SceneInspector {
	return &SceneInspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *SceneInspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the panel and returns the Y below it.
func (ins *SceneInspector) Draw(data SceneInfo) int32 {
	r := ins.renderer
	t := r.Theme
	pad := t.Padding

	kinds := 0
	for _, k := range kindOrder {
		if data.Kinds[k] > 0 {
			kinds++
		}
	}
	height := pad*2 + t.LineHeight*3 + int32(kinds)*t.LineHeight + FieldsHeight(t, sceneFields) + t.BarHeight
	r.DrawPanel(ins.x, ins.y, ins.width, height)

	x := ins.x + pad
	y := ins.y + pad
	contentWidth := ins.width - pad*2

	rl.DrawText("Scene", x, y, 16, rl.White)
	y += t.LineHeight + 4

	y = r.DrawSectionHeader(x, y, fmt.Sprintf("Nodes (%d)", data.Nodes))
	for _, k := range kindOrder {
		if n := data.Kinds[k]; n > 0 {
			y = r.DrawLabelValue(x, y, k, fmt.Sprintf("%d", n))
		}
	}

	y = DrawFields(r, x, y, sceneFields, &data, contentWidth)
	y = r.DrawBar(x, y, "Sparks", float64(data.Sparks), FieldRange{Max: float64(data.SparkCap)}, contentWidth)
	return y
}
