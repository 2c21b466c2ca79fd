package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golens/pkg/geometry"
)

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	moved := mouse != app.Interaction.lastMousePos
	app.Interaction.lastMousePos = mouse

	app.handleKeys()

	ctrl := app.Diagram.controller
	pos := toPoint(mouse)

	if !app.Interaction.isDragging {
		app.Interaction.hovered, app.Interaction.hasHovered = ctrl.HitTest(pos)
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		app.beginDrag(pos)

	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		if app.Interaction.isDragging {
			app.dragTo(pos, true)
			app.Interaction.isDragging = false
		}

	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if app.Interaction.isDragging && moved {
			app.dragTo(pos, false)
		}
	}
}

// beginDrag picks the control point under the pointer and remembers where
// on the marker it was grabbed
func (app *App) beginDrag(pos geometry.Point2) bool {
	ctrl := app.Diagram.controller
	id, ok := ctrl.HitTest(pos)
	if !ok {
		return false
	}
	app.Interaction.dragging = id
	app.Interaction.isDragging = true
	app.Interaction.grabOffset = pos.Sub(ctrl.State().Position(id))
	return true
}

// dragTo forwards the pointer, less the grab offset, to the controller for
// the dragged point
func (app *App) dragTo(pointer geometry.Point2, end bool) {
	id := app.Interaction.dragging
	ctrl := app.Diagram.controller
	pos := pointer.Sub(app.Interaction.grabOffset)

	if end {
		ctrl.DragEnd(id, pos)
	} else {
		ctrl.DragMove(id, pos)
	}

	app.Interaction.lastProposed = toVector(pos)
	if _, snapped := app.Diagram.cfg.Constrain(id, pos); snapped {
		app.Interaction.lastSnapped = true
		app.Interaction.snapFlashTime = time.Now()
	} else {
		app.Interaction.lastSnapped = false
	}
}

// handleKeys processes keyboard shortcuts
func (app *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyR) {
		app.Interaction.isDragging = false
		app.Diagram.controller.Reset(app.Diagram.layout)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.View.showTicks = !app.View.showTicks
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showReadouts = !app.View.showReadouts
	}
	if rl.IsKeyPressed(rl.KeyH) || rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}
}

func toPoint(v rl.Vector2) geometry.Point2 {
	return geometry.NewPoint2(float64(v.X), float64(v.Y))
}

func toVector(p geometry.Point2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
