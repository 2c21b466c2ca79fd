package geometry

// ExtendToBoundary continues the last segment of a polyline until it meets
// the edge of a width x height drawing surface.
//
// The direction comes from the final two points (x1,y1)-(x2,y2):
//   - vertical segments run to y = 0 when pointing up, otherwise to y = height
//   - horizontal segments run to x = 0 when pointing left, otherwise to x = width
//   - all other segments run to x = width when x2 > x1, otherwise to x = 0,
//     with y taken from the segment's slope
//
// Exactly one point is appended. The input slice is not modified.
func ExtendToBoundary(points []Point2, width, height float64) []Point2 {
	extended := make([]Point2, len(points), len(points)+1)
	copy(extended, points)

	if len(points) < 2 {
		return extended
	}

	p1 := points[len(points)-2]
	p2 := points[len(points)-1]

	var end Point2
	switch {
	case p1.X == p2.X:
		end.X = p1.X
		if p2.Y < p1.Y {
			end.Y = 0
		} else {
			end.Y = height
		}
	case p1.Y == p2.Y:
		if p2.X < p1.X {
			end.X = 0
		} else {
			end.X = width
		}
		end.Y = p1.Y
	default:
		slope := (p2.Y - p1.Y) / (p2.X - p1.X)
		if p2.X > p1.X {
			end.X = width
			end.Y = p1.Y + slope*(width-p1.X)
		} else {
			end.X = 0
			end.Y = p1.Y - slope*p1.X
		}
	}

	return append(extended, end)
}
