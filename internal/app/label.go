package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed line of text anchored at its top-left corner
type Label struct {
	Text        string
	ScreenPos   rl.Vector2
	TextColor   rl.Color
	BorderColor rl.Color
	Highlighted bool
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	borderWidth := float32(1)
	if l.Highlighted {
		borderWidth = 2
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	rect := rl.Rectangle{
		X:      l.ScreenPos.X,
		Y:      l.ScreenPos.Y,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(255, 255, 255, 220))
	rl.DrawRectangleLinesEx(rect, borderWidth, l.BorderColor)
	rl.DrawTextEx(font, l.Text, rl.Vector2{X: rect.X + padding, Y: rect.Y + padding}, fontSize, 1, l.TextColor)

	return rect
}

// keepOnScreen shifts a rectangle's origin so it fits inside the window
func keepOnScreen(pos rl.Vector2, width, height, screenWidth, screenHeight float32) rl.Vector2 {
	if pos.X+width > screenWidth {
		pos.X = screenWidth - width
	}
	if pos.Y+height > screenHeight {
		pos.Y = screenHeight - height
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return pos
}
