package geometry

import "math"

// Point2 represents a 2D point or vector in screen space (y grows downward)
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point2) Add(other Point2) Point2 {
	return Point2{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point2) Sub(other Point2) Point2 {
	return Point2{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{X: p.X * scalar, Y: p.Y * scalar}
}

// Length returns the magnitude of the vector
func (p Point2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point2) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Clamp limits v to the closed interval [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// ClampToRect limits a point to the rectangle [minX, maxX] x [minY, maxY]
func ClampToRect(p Point2, minX, minY, maxX, maxY float64) Point2 {
	return Point2{
		X: Clamp(p.X, minX, maxX),
		Y: Clamp(p.Y, minY, maxY),
	}
}
