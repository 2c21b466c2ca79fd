package geometry

import "math"

// NearestGridIntersection returns the grid intersection closest to p.
// Each coordinate is rounded independently to a multiple of spacing.
func NearestGridIntersection(p Point2, spacing float64) Point2 {
	if spacing <= 0 {
		return p
	}
	return Point2{
		X: math.Round(p.X/spacing) * spacing,
		Y: math.Round(p.Y/spacing) * spacing,
	}
}

// SnapToGrid moves p onto the nearest grid intersection when it lies strictly
// closer than threshold. The second result reports whether a snap happened.
func SnapToGrid(p Point2, spacing, threshold float64) (Point2, bool) {
	intersection := NearestGridIntersection(p, spacing)
	if p.Distance(intersection) < threshold {
		return intersection, true
	}
	return p, false
}
