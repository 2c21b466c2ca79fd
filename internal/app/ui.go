package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/golens/pkg/diagram"
	"github.com/philipparndt/golens/pkg/optics"
)

const snapFlashDuration = 400 * time.Millisecond

// drawUI draws the readout panel, the drag label, reload status and help
func (app *App) drawUI() {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	fontSize := app.UI.fontSize
	lineHeight := fontSize + 6
	textColor := toColor(diagram.AxisColor)

	state := app.Diagram.controller.State()

	// === READOUTS ===
	if app.View.showReadouts {
		y := float32(10)
		if app.Diagram.presetName != "" {
			rl.DrawTextEx(app.UI.font, app.Diagram.presetName, rl.Vector2{X: 10, Y: y}, fontSize+2, 1, textColor)
			y += lineHeight
		}
		for _, r := range optics.Describe(state.Optics, app.Diagram.cfg.GridSpacing) {
			rl.DrawTextEx(app.UI.font, r.String(), rl.Vector2{X: 10, Y: y}, fontSize, 1, textColor)
			y += lineHeight
		}
		switch {
		case state.OnLensPlane:
			rl.DrawTextEx(app.UI.font, "Object on lens plane: no image", rl.Vector2{X: 10, Y: y}, fontSize, 1, rl.Maroon)
		case state.AtFocalPoint:
			rl.DrawTextEx(app.UI.font, "Object at a focal point: image at infinity", rl.Vector2{X: 10, Y: y}, fontSize, 1, rl.Maroon)
		}
	}

	// Drag label next to the pointer
	if app.Interaction.isDragging {
		id := app.Interaction.dragging
		at := diagram.ToGridUnits(app.Diagram.cfg, state.Position(id))
		text := fmt.Sprintf("%s (%s, %s)", id, optics.FormatLength(at.X), optics.FormatLength(at.Y))

		border := textColor
		snapped := app.Interaction.lastSnapped || time.Since(app.Interaction.snapFlashTime) < snapFlashDuration
		if snapped {
			border = rl.Blue
		}

		size := rl.MeasureTextEx(app.UI.font, text, fontSize, 1)
		pos := rl.Vector2{X: app.Interaction.lastProposed.X + 14, Y: app.Interaction.lastProposed.Y + 14}
		pos = keepOnScreen(pos, size.X+12, size.Y+12, screenWidth, screenHeight)

		label := Label{Text: text, ScreenPos: pos, TextColor: textColor, BorderColor: border, Highlighted: snapped}
		label.Draw(app.UI.font, fontSize, 6)
	}

	// Reload status (top-right corner)
	var status string
	statusColor := rl.DarkGreen
	switch {
	case app.FileWatch.lastError != "":
		status = "Preset error: " + app.FileWatch.lastError
		statusColor = rl.Red
	case time.Since(app.FileWatch.lastReload) < 2*time.Second:
		status = "Preset reloaded"
	}
	if status != "" {
		size := rl.MeasureTextEx(app.UI.font, status, fontSize, 1)
		pos := keepOnScreen(rl.Vector2{X: screenWidth - size.X - 32, Y: 10}, size.X+12, size.Y+12, screenWidth, screenHeight)
		label := Label{Text: status, ScreenPos: pos, TextColor: statusColor, BorderColor: statusColor}
		label.Draw(app.UI.font, fontSize, 6)
	}

	// === HELP ===
	if app.View.showHelp {
		lines := []string{
			"Drag the black point to move the object",
			"Drag the red point to change the focal length",
			"R: reset   G: grid   T: ticks   I: readouts   H: help",
		}
		y := screenHeight - float32(len(lines))*lineHeight - 30
		for _, line := range lines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize, 1, textColor)
			y += lineHeight
		}
	} else {
		rl.DrawTextEx(app.UI.font, "H: help", rl.Vector2{X: 10, Y: screenHeight - lineHeight - 30}, fontSize, 1, rl.Gray)
	}
}
