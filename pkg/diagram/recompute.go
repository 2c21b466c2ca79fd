package diagram

import (
	"math"

	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/philipparndt/golens/pkg/optics"
)

// Event is a proposed position for one draggable point
type Event struct {
	Point    PointID
	Proposed geometry.Point2
}

// Recompute applies a drag event to prev and returns the new diagram.
// The moved point is clamped and snapped, then everything else is derived
// from scratch; nothing but the two control point positions carries over.
func Recompute(cfg Config, prev State, ev Event) State {
	object := prev.Object.Height
	focalPrime := prev.Lens.FocalPrime

	applied, _ := cfg.Constrain(ev.Point, ev.Proposed)
	switch ev.Point {
	case ObjectPoint:
		object = applied
	case FocalPrimePoint:
		focalPrime = applied
	}

	return Derive(cfg, object, focalPrime)
}

// Initial constrains both points of a layout and derives the diagram
func Initial(cfg Config, layout Layout) State {
	object, _ := cfg.Constrain(ObjectPoint, layout.Object)
	focalPrime, _ := cfg.Constrain(FocalPrimePoint, layout.FocalPrime)
	return Derive(cfg, object, focalPrime)
}

// Derive computes lens, image and rays for the given control point
// positions. Positions are taken as already constrained.
func Derive(cfg Config, object, focalPrime geometry.Point2) State {
	lensX := cfg.LensX()
	axisY := cfg.AxisY()

	lens := deriveLens(lensX, axisY, focalPrime.X)

	state := State{
		Lens: lens,
		Object: ObjectState{
			Height: object,
			Foot:   geometry.NewPoint2(object.X, axisY),
		},
	}
	for kind := range state.Rays {
		state.Rays[kind].Kind = RayKind(kind)
	}

	objectDistance := math.Abs(object.X - lensX)
	objectHeight := math.Abs(object.Y - axisY)
	state.Optics = optics.ComputeImage(objectDistance, objectHeight, lens.FocalLength)
	state.Image = placeImage(lensX, axisY, object, state.Optics)

	if object.X == lensX {
		state.OnLensPlane = true
		state.Image.Visible = false
		return state
	}

	// decided fresh from this call's lens, never from an earlier recompute
	state.AtFocalPoint = lens.Converging &&
		(object.X == lens.FocalPrime.X || object.X == lens.FocalPoint.X)

	farFocal, nearFocal := lens.FocalPoint, lens.FocalPrime
	if object.X >= lensX {
		farFocal, nearFocal = lens.FocalPrime, lens.FocalPoint
	}
	lensAtObject := geometry.NewPoint2(lensX, object.Y)
	center := cfg.Center()

	var parallel, through, focal []geometry.Point2
	if state.AtFocalPoint {
		state.Image.Visible = false
		parallel = []geometry.Point2{object, lensAtObject, farFocal}
		through = []geometry.Point2{object, center}
	} else {
		image := state.Image.Height
		parallel = []geometry.Point2{object, lensAtObject, farFocal, image}
		through = []geometry.Point2{object, center, image}
		focal = []geometry.Point2{object, nearFocal, geometry.NewPoint2(lensX, image.Y), image}
	}

	state.Rays[RayParallel] = extendRay(cfg, RayParallel, parallel)
	state.Rays[RayCenter] = extendRay(cfg, RayCenter, through)
	state.Rays[RayFocalPrime] = extendRay(cfg, RayFocalPrime, focal)

	return state
}

// deriveLens mirrors the focal-prime x about the lens plane
func deriveLens(lensX, axisY, focalPrimeX float64) LensState {
	focalLength := lensX - focalPrimeX
	return LensState{
		FocalLength: focalLength,
		FocalPoint:  geometry.NewPoint2(lensX+focalLength, axisY),
		FocalPrime:  geometry.NewPoint2(focalPrimeX, axisY),
		Converging:  focalLength >= 0,
	}
}

// placeImage positions the image tip on the side given by the magnification
// sign, mirrored by the object's side of the lens plane and the axis
func placeImage(lensX, axisY float64, object geometry.Point2, result optics.Result) ImageState {
	x := lensX + result.MagnifiedDistance
	if object.X < lensX {
		x = lensX - result.MagnifiedDistance
	}
	y := axisY + result.ImageHeight
	if object.Y < axisY {
		y = axisY - result.ImageHeight
	}

	return ImageState{
		Height:  geometry.NewPoint2(x, y),
		Foot:    geometry.NewPoint2(x, axisY),
		Visible: true,
	}
}

// extendRay builds a visible ray from its construction points; a nil
// construction yields a hidden ray
func extendRay(cfg Config, kind RayKind, points []geometry.Point2) Ray {
	if points == nil {
		return Ray{Kind: kind}
	}
	return Ray{
		Kind:    kind,
		Points:  geometry.ExtendToBoundary(points, cfg.Width, cfg.Height),
		Visible: true,
	}
}
