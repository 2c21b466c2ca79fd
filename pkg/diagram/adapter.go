package diagram

import (
	"slices"

	"github.com/philipparndt/golens/pkg/geometry"
)

// PrimitiveID names one drawable element of the diagram
type PrimitiveID int

const (
	PrimObjectHeight PrimitiveID = iota
	PrimObjectFoot
	PrimImageHeight
	PrimImageFoot
	PrimFocalPoint
	PrimFocalPrime
	PrimRayParallel
	PrimRayCenter
	PrimRayFocalPrime

	primitiveCount
)

var primitiveNames = [primitiveCount]string{
	"object-height-point",
	"object-foot",
	"image-height-point",
	"image-foot",
	"focal-point",
	"focal-prime-point",
	"parallel-ray",
	"center-ray",
	"focal-prime-ray",
}

// String returns the primitive name
func (id PrimitiveID) String() string {
	if id < 0 || id >= primitiveCount {
		return "unknown"
	}
	return primitiveNames[id]
}

// RayPrimitive maps a ray kind to its primitive
func RayPrimitive(kind RayKind) PrimitiveID {
	return PrimRayParallel + PrimitiveID(kind)
}

// Shape distinguishes point markers from polylines
type Shape int

const (
	ShapePoint Shape = iota
	ShapePolyline
)

// RenderAdapter is the drawing surface the controller writes into.
// Calls arrive on the controller's goroutine; BatchDraw closes each update.
type RenderAdapter interface {
	CreatePoint(id PrimitiveID, at geometry.Point2, radius float64, visible bool)
	CreatePolyline(id PrimitiveID, points []geometry.Point2, visible bool)
	SetPosition(id PrimitiveID, at geometry.Point2)
	SetVisible(id PrimitiveID, visible bool)
	SetPoints(id PrimitiveID, points []geometry.Point2)
	BatchDraw()
}

// Primitive is the render-ready form of one diagram element
type Primitive struct {
	ID       PrimitiveID
	Shape    Shape
	Position geometry.Point2
	Radius   float64
	Points   []geometry.Point2
	Visible  bool
}

// Primitives flattens a state into its drawable elements, indexed by PrimitiveID
func Primitives(cfg Config, s State) []Primitive {
	prims := []Primitive{
		{ID: PrimObjectHeight, Shape: ShapePoint, Position: s.Object.Height, Radius: cfg.PointRadius, Visible: true},
		{ID: PrimObjectFoot, Shape: ShapePoint, Position: s.Object.Foot, Radius: cfg.FootRadius, Visible: true},
		{ID: PrimImageHeight, Shape: ShapePoint, Position: s.Image.Height, Radius: cfg.PointRadius, Visible: s.Image.Visible},
		{ID: PrimImageFoot, Shape: ShapePoint, Position: s.Image.Foot, Radius: cfg.FootRadius, Visible: s.Image.Visible},
		{ID: PrimFocalPoint, Shape: ShapePoint, Position: s.Lens.FocalPoint, Radius: cfg.PointRadius, Visible: true},
		{ID: PrimFocalPrime, Shape: ShapePoint, Position: s.Lens.FocalPrime, Radius: cfg.PointRadius, Visible: true},
	}
	for _, ray := range s.Rays {
		prims = append(prims, Primitive{
			ID:      RayPrimitive(ray.Kind),
			Shape:   ShapePolyline,
			Points:  ray.Points,
			Visible: ray.Visible,
		})
	}
	return prims
}

// create registers every primitive with the adapter
func create(adapter RenderAdapter, prims []Primitive) {
	for _, p := range prims {
		if p.Shape == ShapePolyline {
			adapter.CreatePolyline(p.ID, slices.Clone(p.Points), p.Visible)
			continue
		}
		adapter.CreatePoint(p.ID, p.Position, p.Radius, p.Visible)
	}
	adapter.BatchDraw()
}

// push sends the difference between two primitive sets to the adapter and
// returns the number of calls made, excluding BatchDraw. Geometry of hidden
// polylines is not sent.
func push(adapter RenderAdapter, prev, next []Primitive) int {
	calls := 0
	for i, p := range next {
		old := prev[i]
		switch p.Shape {
		case ShapePoint:
			if p.Position != old.Position {
				adapter.SetPosition(p.ID, p.Position)
				calls++
			}
		case ShapePolyline:
			if p.Visible && !slices.Equal(p.Points, old.Points) {
				adapter.SetPoints(p.ID, slices.Clone(p.Points))
				calls++
			}
		}
		if p.Visible != old.Visible {
			adapter.SetVisible(p.ID, p.Visible)
			calls++
		}
	}
	if calls > 0 {
		adapter.BatchDraw()
	}
	return calls
}
