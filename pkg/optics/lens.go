// Package optics implements the thin-lens imaging equation used by the ray diagram.
package optics

import "math"

// LensKind distinguishes converging from diverging lenses
type LensKind int

const (
	Converging LensKind = iota
	Diverging
)

// String returns the lens kind name
func (k LensKind) String() string {
	if k == Diverging {
		return "diverging"
	}
	return "converging"
}

// ImageKind classifies the image formed by the lens
type ImageKind int

const (
	// NoImage is reported when the object sits on the lens plane or the
	// lens has zero focal length.
	NoImage ImageKind = iota
	// RealImage forms on the transmission side and is inverted.
	RealImage
	// VirtualImage forms on the object's side and is upright.
	VirtualImage
	// ImageAtInfinity is the object-at-focal-point case.
	ImageAtInfinity
)

// String returns a human-readable image kind
func (k ImageKind) String() string {
	switch k {
	case RealImage:
		return "real, inverted"
	case VirtualImage:
		return "virtual, upright"
	case ImageAtInfinity:
		return "at infinity"
	default:
		return "none"
	}
}

// Result holds the outcome of a thin-lens computation.
// Distances are unsigned magnitudes on the input side; the sign of
// Magnification carries orientation and side.
type Result struct {
	ObjectDistance float64
	ObjectHeight   float64
	FocalLength    float64

	ImageDistance float64
	Magnification float64
	// MagnifiedDistance is ObjectDistance * Magnification. The diagram places
	// the image this far from the lens plane, mirrored by the object's side.
	MagnifiedDistance float64
	// ImageHeight is ObjectHeight * Magnification.
	ImageHeight float64

	Lens  LensKind
	Image ImageKind
}

// IsConverging reports whether the focal length is non-negative
func (r Result) IsConverging() bool {
	return r.Lens == Converging
}

// ComputeImage applies the thin-lens equation 1/v = 1/f - 1/u.
//
// objectDistance and objectHeight are unsigned. focalLength is signed:
// positive for a converging lens. Non-finite intermediate values (object on a
// focal point or on the lens plane) are clamped to 0.
func ComputeImage(objectDistance, objectHeight, focalLength float64) Result {
	u := objectDistance
	f := focalLength

	imageDistance := 1 / (1/f - 1/u)
	magnification := -imageDistance / u

	kind := classify(u, f, imageDistance, magnification)

	if !isFinite(imageDistance) {
		imageDistance = 0
	}
	if !isFinite(magnification) {
		magnification = 0
	}

	lens := Converging
	if f < 0 {
		lens = Diverging
	}

	return Result{
		ObjectDistance:    u,
		ObjectHeight:      objectHeight,
		FocalLength:       f,
		ImageDistance:     imageDistance,
		Magnification:     magnification,
		MagnifiedDistance: u * magnification,
		ImageHeight:       objectHeight * magnification,
		Lens:              lens,
		Image:             kind,
	}
}

// classify inspects the raw, unclamped values
func classify(u, f, v, m float64) ImageKind {
	switch {
	case u == 0 || f == 0:
		return NoImage
	case !isFinite(v):
		return ImageAtInfinity
	case m < 0:
		return RealImage
	case m > 0:
		return VirtualImage
	default:
		return NoImage
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
