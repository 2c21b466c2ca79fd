package diagram

import (
	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/philipparndt/golens/pkg/optics"
)

// PointID identifies one of the two draggable control points
type PointID int

const (
	ObjectPoint PointID = iota
	FocalPrimePoint
)

// String returns the point name used in logs
func (id PointID) String() string {
	switch id {
	case ObjectPoint:
		return "object"
	case FocalPrimePoint:
		return "focal-prime"
	default:
		return "unknown"
	}
}

// RayKind identifies one of the three canonical rays
type RayKind int

const (
	// RayParallel travels parallel to the axis, then through the far focal point.
	RayParallel RayKind = iota
	// RayCenter passes undeviated through the lens center.
	RayCenter
	// RayFocalPrime passes through the near focal point, then leaves parallel.
	RayFocalPrime

	rayKindCount
)

// String returns the ray name
func (k RayKind) String() string {
	switch k {
	case RayParallel:
		return "parallel-then-focal"
	case RayCenter:
		return "through-center"
	case RayFocalPrime:
		return "through-focal-prime"
	default:
		return "unknown"
	}
}

// LensState holds the focal geometry derived from the focal-prime point.
// FocalPoint and FocalPrime are mirror images about the lens plane, both on
// the optical axis.
type LensState struct {
	FocalLength float64 // signed, positive for a converging lens
	FocalPoint  geometry.Point2
	FocalPrime  geometry.Point2
	Converging  bool
}

// ObjectState holds the draggable object tip and its projection on the axis
type ObjectState struct {
	Height geometry.Point2
	Foot   geometry.Point2
}

// ImageState holds the derived image tip and foot
type ImageState struct {
	Height  geometry.Point2
	Foot    geometry.Point2
	Visible bool
}

// Ray is a polyline ending on the canvas boundary. Hidden rays carry no points.
type Ray struct {
	Kind    RayKind
	Points  []geometry.Point2
	Visible bool
}

// State is the complete derived diagram. It is a pure function of the object
// and focal-prime positions (see Derive).
type State struct {
	Lens   LensState
	Object ObjectState
	Image  ImageState
	Rays   [rayKindCount]Ray
	Optics optics.Result

	// OnLensPlane is set when the object sits on the lens plane.
	OnLensPlane bool
	// AtFocalPoint is set when a converging lens has the object on one of its
	// focal points, which sends the image to infinity.
	AtFocalPoint bool
}

// Position returns the current position of a draggable point
func (s State) Position(id PointID) geometry.Point2 {
	if id == FocalPrimePoint {
		return s.Lens.FocalPrime
	}
	return s.Object.Height
}
