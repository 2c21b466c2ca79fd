package diagram

import (
	"slices"

	"github.com/philipparndt/golens/pkg/geometry"
)

// Scene is a retained RenderAdapter: it records primitives so a frontend
// can draw them later (every frame, or once for an export).
type Scene struct {
	prims map[PrimitiveID]*Primitive
	order []PrimitiveID
	draws int
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{prims: make(map[PrimitiveID]*Primitive)}
}

// CreatePoint adds a point marker
func (s *Scene) CreatePoint(id PrimitiveID, at geometry.Point2, radius float64, visible bool) {
	s.add(&Primitive{ID: id, Shape: ShapePoint, Position: at, Radius: radius, Visible: visible})
}

// CreatePolyline adds a polyline
func (s *Scene) CreatePolyline(id PrimitiveID, points []geometry.Point2, visible bool) {
	s.add(&Primitive{ID: id, Shape: ShapePolyline, Points: slices.Clone(points), Visible: visible})
}

// SetPosition moves a point marker
func (s *Scene) SetPosition(id PrimitiveID, at geometry.Point2) {
	if p, ok := s.prims[id]; ok {
		p.Position = at
	}
}

// SetVisible shows or hides a primitive
func (s *Scene) SetVisible(id PrimitiveID, visible bool) {
	if p, ok := s.prims[id]; ok {
		p.Visible = visible
	}
}

// SetPoints replaces a polyline's points
func (s *Scene) SetPoints(id PrimitiveID, points []geometry.Point2) {
	if p, ok := s.prims[id]; ok {
		p.Points = slices.Clone(points)
	}
}

// BatchDraw counts a redraw request
func (s *Scene) BatchDraw() {
	s.draws++
}

// Primitive returns a copy of one primitive
func (s *Scene) Primitive(id PrimitiveID) (Primitive, bool) {
	p, ok := s.prims[id]
	if !ok {
		return Primitive{}, false
	}
	out := *p
	out.Points = slices.Clone(p.Points)
	return out, true
}

// Primitives returns copies of all primitives in creation order
func (s *Scene) Primitives() []Primitive {
	out := make([]Primitive, 0, len(s.order))
	for _, id := range s.order {
		p, _ := s.Primitive(id)
		out = append(out, p)
	}
	return out
}

// Draws returns the number of BatchDraw requests received
func (s *Scene) Draws() int {
	return s.draws
}

func (s *Scene) add(p *Primitive) {
	if _, exists := s.prims[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.prims[p.ID] = p
}
