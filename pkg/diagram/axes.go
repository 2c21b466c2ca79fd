package diagram

import (
	"math"
	"strconv"

	"github.com/philipparndt/golens/pkg/geometry"
)

// Segment is a straight line between two points
type Segment struct {
	From, To geometry.Point2
}

// Label is a piece of text anchored at its top-left corner
type Label struct {
	Text string
	At   geometry.Point2
}

// Tick is a numbered mark on one of the axes
type Tick struct {
	Value float64
	Mark  Segment
	Label Label
}

const (
	tickHalfLength = 3
	tickLabelGap   = 10
)

// GridLines returns the light background grid, excluding the canvas edges
func GridLines(cfg Config) []Segment {
	var lines []Segment
	for x := cfg.GridSpacing; x < cfg.Width; x += cfg.GridSpacing {
		lines = append(lines, Segment{
			From: geometry.NewPoint2(x, 0),
			To:   geometry.NewPoint2(x, cfg.Height),
		})
	}
	for y := cfg.GridSpacing; y < cfg.Height; y += cfg.GridSpacing {
		lines = append(lines, Segment{
			From: geometry.NewPoint2(0, y),
			To:   geometry.NewPoint2(cfg.Width, y),
		})
	}
	return lines
}

// Axes returns the optical axis and the lens plane
func Axes(cfg Config) [2]Segment {
	return [2]Segment{
		{From: geometry.NewPoint2(0, cfg.AxisY()), To: geometry.NewPoint2(cfg.Width, cfg.AxisY())},
		{From: geometry.NewPoint2(cfg.LensX(), 0), To: geometry.NewPoint2(cfg.LensX(), cfg.Height)},
	}
}

// AxisLabels returns the +x/-x/+y/-y direction labels
func AxisLabels(cfg Config) []Label {
	return []Label{
		{Text: "+x", At: geometry.NewPoint2(cfg.Width-20, cfg.AxisY()-25)},
		{Text: "-x", At: geometry.NewPoint2(cfg.Width/120, cfg.AxisY()-25)},
		{Text: "+y", At: geometry.NewPoint2(cfg.LensX()+25, cfg.Height/60)},
		{Text: "-y", At: geometry.NewPoint2(cfg.LensX()+25, cfg.Height-20)},
	}
}

// Ticks returns the numbered marks along both axes in grid units, with the
// origin at the lens center and y growing upward. The origin is skipped.
func Ticks(cfg Config) []Tick {
	var ticks []Tick
	s := cfg.GridSpacing

	for i := 0; float64(i) <= cfg.Width/s; i++ {
		value := float64(i) - cfg.Width/(2*s)
		if value == 0 {
			continue
		}
		x := float64(i) * s
		ticks = append(ticks, Tick{
			Value: value,
			Mark: Segment{
				From: geometry.NewPoint2(x, cfg.AxisY()-tickHalfLength),
				To:   geometry.NewPoint2(x, cfg.AxisY()+tickHalfLength),
			},
			Label: Label{Text: formatTick(value), At: geometry.NewPoint2(x-5, cfg.AxisY()+tickLabelGap)},
		})
	}

	for i := 0; float64(i) <= cfg.Height/s; i++ {
		value := cfg.Height/(2*s) - float64(i)
		if value == 0 {
			continue
		}
		y := float64(i) * s
		ticks = append(ticks, Tick{
			Value: value,
			Mark: Segment{
				From: geometry.NewPoint2(cfg.LensX()-tickHalfLength, y),
				To:   geometry.NewPoint2(cfg.LensX()+tickHalfLength, y),
			},
			Label: Label{Text: formatTick(value), At: geometry.NewPoint2(cfg.LensX()-(tickLabelGap+10), y-5)},
		})
	}

	return ticks
}

// ToGridUnits converts a screen point to axis coordinates (origin at the
// lens center, one unit per grid cell, y up)
func ToGridUnits(cfg Config, p geometry.Point2) geometry.Point2 {
	return geometry.NewPoint2(
		(p.X-cfg.LensX())/cfg.GridSpacing,
		(cfg.AxisY()-p.Y)/cfg.GridSpacing,
	)
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FromGridUnits converts axis coordinates back to a screen point
func FromGridUnits(cfg Config, p geometry.Point2) geometry.Point2 {
	return geometry.NewPoint2(
		cfg.LensX()+p.X*cfg.GridSpacing,
		cfg.AxisY()-p.Y*cfg.GridSpacing,
	)
}
