package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golens/pkg/diagram"
)

// drawDiagram draws the grid, the axes and every visible scene primitive
func (app *App) drawDiagram() {
	cfg := app.Diagram.cfg

	if app.View.showGrid {
		gridColor := toColor(diagram.GridColor)
		for _, seg := range diagram.GridLines(cfg) {
			rl.DrawLineEx(toVector(seg.From), toVector(seg.To), 1, gridColor)
		}
	}

	axisColor := toColor(diagram.AxisColor)
	for _, seg := range diagram.Axes(cfg) {
		rl.DrawLineEx(toVector(seg.From), toVector(seg.To), 1, axisColor)
	}

	if app.View.showTicks {
		for _, tick := range diagram.Ticks(cfg) {
			rl.DrawLineEx(toVector(tick.Mark.From), toVector(tick.Mark.To), 1, axisColor)
			rl.DrawTextEx(app.UI.font, tick.Label.Text, toVector(tick.Label.At), app.UI.fontSize-4, 1, axisColor)
		}
		for _, label := range diagram.AxisLabels(cfg) {
			rl.DrawTextEx(app.UI.font, label.Text, toVector(label.At), app.UI.fontSize, 1, axisColor)
		}
	}

	for _, p := range app.Diagram.scene.Primitives() {
		if p.Visible {
			app.drawPrimitive(p)
		}
	}
}

// drawPrimitive draws one point marker or polyline with its style
func (app *App) drawPrimitive(p diagram.Primitive) {
	style := diagram.StyleOf(p.ID)
	col := toColor(style.Color)

	switch p.Shape {
	case diagram.ShapePoint:
		radius := float32(p.Radius)
		if app.isHighlighted(p.ID) {
			rl.DrawCircleLines(int32(p.Position.X), int32(p.Position.Y), radius+3, col)
		}
		rl.DrawCircleV(toVector(p.Position), radius, col)

	case diagram.ShapePolyline:
		for i := 1; i < len(p.Points); i++ {
			rl.DrawLineEx(toVector(p.Points[i-1]), toVector(p.Points[i]), float32(style.StrokeWidth), col)
		}
	}
}

// isHighlighted reports whether a draggable marker is hovered or dragged
func (app *App) isHighlighted(id diagram.PrimitiveID) bool {
	var point diagram.PointID
	switch {
	case app.Interaction.isDragging:
		point = app.Interaction.dragging
	case app.Interaction.hasHovered:
		point = app.Interaction.hovered
	default:
		return false
	}

	switch point {
	case diagram.ObjectPoint:
		return id == diagram.PrimObjectHeight
	case diagram.FocalPrimePoint:
		return id == diagram.PrimFocalPrime
	}
	return false
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
