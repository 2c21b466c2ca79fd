package diagram

import "image/color"

// Style describes how a frontend should paint a primitive
type Style struct {
	Color       color.NRGBA
	StrokeWidth float64
}

var (
	black      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	red        = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	lightGreen = color.NRGBA{R: 144, G: 238, B: 144, A: 255}

	// GridColor is used for the background grid lines.
	GridColor = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	// AxisColor is used for the optical axis, the lens plane, ticks and labels.
	AxisColor = black
	// BackgroundColor fills the canvas.
	BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// StyleOf returns the paint for a primitive. The image tip is drawn slightly
// translucent so it reads as derived.
func StyleOf(id PrimitiveID) Style {
	switch id {
	case PrimFocalPrime, PrimRayFocalPrime:
		return Style{Color: red, StrokeWidth: 1}
	case PrimFocalPoint, PrimRayParallel:
		return Style{Color: lightGreen, StrokeWidth: 1}
	case PrimImageHeight:
		return Style{Color: color.NRGBA{A: 178}, StrokeWidth: 1}
	default:
		return Style{Color: black, StrokeWidth: 1}
	}
}
