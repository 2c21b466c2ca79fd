package optics

import (
	"fmt"
	"math"
)

// Reading is one labelled value of the optics readout
type Reading struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// String formats the reading as "Label: Value"
func (r Reading) String() string {
	return fmt.Sprintf("%s: %s", r.Label, r.Value)
}

// Describe renders a result as readout lines. unit converts pixel distances
// into display units (the grid spacing, so one tick is one unit); a
// non-positive unit leaves values in pixels.
func Describe(r Result, unit float64) []Reading {
	if unit <= 0 {
		unit = 1
	}

	readings := []Reading{
		{Label: "Lens", Value: r.Lens.String()},
		{Label: "Focal length", Value: FormatLength(r.FocalLength / unit)},
		{Label: "Object distance", Value: FormatLength(r.ObjectDistance / unit)},
		{Label: "Object height", Value: FormatLength(r.ObjectHeight / unit)},
		{Label: "Image", Value: r.Image.String()},
	}

	switch r.Image {
	case RealImage, VirtualImage:
		readings = append(readings,
			Reading{Label: "Image distance", Value: FormatLength(r.ImageDistance / unit)},
			Reading{Label: "Image height", Value: FormatLength(math.Abs(r.ImageHeight) / unit)},
			Reading{Label: "Magnification", Value: fmt.Sprintf("%.3f", r.Magnification)},
		)
	case ImageAtInfinity:
		readings = append(readings, Reading{Label: "Image distance", Value: "∞"})
	}

	return readings
}

// FormatLength formats a distance with two decimals, dropping a negative zero
func FormatLength(v float64) string {
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
