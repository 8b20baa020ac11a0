// Package ui draws the 2D overlay panels on top of the scene: the HUD,
// audio controls, the perf breakdown and the scene inspector. Panels are
// described by field descriptors so their content can change alongside
// the systems they report on.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText    WidgetType = iota // Label and formatted value
	WidgetBar                       // Progress bar over Range
	WidgetSection                   // Section header
	WidgetSpacer                    // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float64
	Max float64
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// Fraction maps v into [0, 1] over the range.
func (r FieldRange) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	f := (v - r.Min) / (r.Max - r.Min)
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FieldDescriptor defines how to display a single value from T.
type FieldDescriptor[T any] struct {
	Label  string
	Widget WidgetType
	Format string // Printf format for WidgetText (e.g., "%.2f")
	Range  FieldRange
	Value  func(*T) float64
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns a dark translucent theme that reads over the sunset.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 30, G: 18, B: 24, A: 200},
		PanelBorder:    rl.Color{R: 120, G: 70, B: 60, A: 255},
		SectionHeader:  rl.Color{R: 255, G: 200, B: 120, A: 255},
		LabelColor:     rl.Color{R: 230, G: 210, B: 200, A: 255},
		ValueColor:     rl.White,
		BarBg:          rl.Color{R: 50, G: 35, B: 40, A: 255},
		BarFill:        rl.Color{R: 255, G: 150, B: 80, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
