// Package diagram holds the interactive state of a thin-lens ray diagram:
// the draggable control points, the derived lens, image and ray geometry,
// and the controller that pushes that geometry to a rendering surface.
package diagram

import (
	"fmt"
	"math"

	"github.com/philipparndt/golens/pkg/geometry"
)

// Config describes the drawing surface and interaction constants.
// The optical axis runs horizontally through the middle of the surface and
// the lens plane vertically through its center.
type Config struct {
	Width             float64
	Height            float64
	GridSpacing       float64
	SnapThreshold     float64
	PointRadius       float64 // object, image, focal and focal-prime markers
	FootRadius        float64 // object and image feet on the axis
	FocalPrimePadding float64 // keeps the focal-prime marker off the left/right edges
	HitRadius         float64 // pointer pick radius for draggable points
}

// DefaultConfig returns the 1200x600 layout with a 50 unit grid
func DefaultConfig() Config {
	return Config{
		Width:             1200,
		Height:            600,
		GridSpacing:       50,
		SnapThreshold:     3,
		PointRadius:       5,
		FootRadius:        3,
		FocalPrimePadding: 5,
		HitRadius:         10,
	}
}

// Validate checks that the configuration describes a usable surface
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"grid spacing", c.GridSpacing},
		{"snap threshold", c.SnapThreshold},
		{"point radius", c.PointRadius},
		{"foot radius", c.FootRadius},
		{"focal-prime padding", c.FocalPrimePadding},
		{"hit radius", c.HitRadius},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size %vx%v", c.Width, c.Height)
	}
	if c.GridSpacing <= 0 {
		return fmt.Errorf("grid spacing must be positive, got %v", c.GridSpacing)
	}
	if c.SnapThreshold < 0 {
		return fmt.Errorf("snap threshold must not be negative, got %v", c.SnapThreshold)
	}
	if c.PointRadius < 0 || c.FootRadius < 0 || c.HitRadius < 0 {
		return fmt.Errorf("radii must not be negative")
	}
	if 2*c.PointRadius >= c.Width || 2*c.PointRadius >= c.Height {
		return fmt.Errorf("point radius %v does not fit a %vx%v canvas", c.PointRadius, c.Width, c.Height)
	}
	if c.FocalPrimePadding < 0 || 2*c.FocalPrimePadding >= c.Width {
		return fmt.Errorf("focal-prime padding %v does not fit canvas width %v", c.FocalPrimePadding, c.Width)
	}
	return nil
}

// LensX returns the x coordinate of the lens plane
func (c Config) LensX() float64 {
	return c.Width / 2
}

// AxisY returns the y coordinate of the optical axis
func (c Config) AxisY() float64 {
	return c.Height / 2
}

// Center returns the lens center, where the lens plane crosses the axis
func (c Config) Center() geometry.Point2 {
	return geometry.NewPoint2(c.LensX(), c.AxisY())
}

// Constrain clamps a proposed position for the given point and snaps it to
// the grid. The second result reports whether snapping applied.
func (c Config) Constrain(id PointID, proposed geometry.Point2) (geometry.Point2, bool) {
	switch id {
	case FocalPrimePoint:
		clamped := geometry.NewPoint2(
			geometry.Clamp(proposed.X, c.FocalPrimePadding, c.Width-c.FocalPrimePadding),
			c.AxisY(),
		)
		snapped, ok := geometry.SnapToGrid(clamped, c.GridSpacing, c.SnapThreshold)
		// the focal-prime never leaves the optical axis
		snapped.Y = c.AxisY()
		return snapped, ok
	default:
		clamped := geometry.ClampToRect(proposed,
			c.PointRadius, c.PointRadius,
			c.Width-c.PointRadius, c.Height-c.PointRadius,
		)
		return geometry.SnapToGrid(clamped, c.GridSpacing, c.SnapThreshold)
	}
}

// Layout holds the positions of the two draggable points
type Layout struct {
	Object     geometry.Point2
	FocalPrime geometry.Point2
}

// DefaultLayout places the object two grid cells left of the lens and one
// above the axis, with a converging lens of one grid cell focal length.
func DefaultLayout(c Config) Layout {
	return Layout{
		Object:     geometry.NewPoint2(c.LensX()-2*c.GridSpacing, c.AxisY()-c.GridSpacing),
		FocalPrime: geometry.NewPoint2(c.LensX()-c.GridSpacing, c.AxisY()),
	}
}
