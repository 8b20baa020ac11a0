package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a progress bar for value over rng.
func (r *Renderer) DrawBar(x, y int32, label string, value float64, rng FieldRange, width int32) int32 {
	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fillWidth := int32(float64(barWidth) * rng.Fraction(value))
	rl.DrawRectangle(barX, y+2, fillWidth, r.Theme.BarHeight, r.Theme.BarFill)

	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight + 2
}

// DrawSpacer adds vertical space and returns new Y.
func (r *Renderer) DrawSpacer(y int32, amount int32) int32 {
	return y + amount
}

// DrawFields renders descriptors against data and returns the new Y.
func DrawFields[T any](r *Renderer, x, y int32, fields []FieldDescriptor[T], data *T, width int32) int32 {
	for _, fd := range fields {
		switch fd.Widget {
		case WidgetText:
			y = r.DrawLabelValue(x, y, fd.Label, fmt.Sprintf(fd.Format, fd.Value(data)))
		case WidgetBar:
			y = r.DrawBar(x, y, fd.Label, fd.Value(data), fd.Range, width)
		case WidgetSection:
			y = r.DrawSectionHeader(x, y, fd.Label)
		case WidgetSpacer:
			y = r.DrawSpacer(y, 6)
		}
	}
	return y
}

// FieldsHeight returns the pixel height DrawFields will use.
func FieldsHeight[T any](t Theme, fields []FieldDescriptor[T]) int32 {
	var h int32
	for _, fd := range fields {
		switch fd.Widget {
		case WidgetBar:
			h += t.LineHeight + 2
		case WidgetSpacer:
			h += 6
		default:
			h += t.LineHeight
		}
	}
	return h
}
