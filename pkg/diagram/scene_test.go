package diagram

import (
	"testing"

	"github.com/philipparndt/golens/pkg/geometry"
)

func TestSceneTracksController(t *testing.T) {
	cfg := DefaultConfig()
	scene := NewScene()
	c := NewController(cfg, scene, DefaultLayout(cfg))

	if got := len(scene.Primitives()); got != int(primitiveCount) {
		t.Fatalf("expected %d primitives, got %d", primitiveCount, got)
	}
	c.DragEnd(ObjectPoint, pt(600, 250))

	image, _ := scene.Primitive(PrimImageHeight)
	if image.Visible {
		t.Error("expected image hidden in scene")
	}

	// the scene must match a fresh flattening of the controller state
	for _, want := range Primitives(cfg, c.State()) {
		got, ok := scene.Primitive(want.ID)
		if !ok {
			t.Fatalf("missing primitive %v", want.ID)
		}
		if got.Visible != want.Visible {
			t.Errorf("%v: expected visible=%v, got %v", want.ID, want.Visible, got.Visible)
		}
		if got.Shape == ShapePoint && got.Position != want.Position {
			t.Errorf("%v: expected position %v, got %v", want.ID, want.Position, got.Position)
		}
	}

	if scene.Draws() != 2 {
		t.Errorf("expected 2 draws, got %d", scene.Draws())
	}
}

func TestScenePrimitiveIsACopy(t *testing.T) {
	scene := NewScene()
	points := []geometry.Point2{pt(0, 0), pt(10, 10)}
	scene.CreatePolyline(PrimRayCenter, points, true)

	points[0] = pt(99, 99)
	got, _ := scene.Primitive(PrimRayCenter)
	if got.Points[0] != pt(0, 0) {
		t.Errorf("scene aliased caller slice: %v", got.Points)
	}

	got.Points[1] = pt(42, 42)
	again, _ := scene.Primitive(PrimRayCenter)
	if again.Points[1] != pt(10, 10) {
		t.Errorf("returned primitive aliased scene storage: %v", again.Points)
	}
}

func TestSceneIgnoresUnknownPrimitive(t *testing.T) {
	scene := NewScene()
	scene.SetPosition(PrimFocalPoint, pt(1, 1))
	scene.SetVisible(PrimFocalPoint, false)

	scene.SetPoints(PrimRayCenter, []geometry.Point2{pt(1, 1)})

	if len(scene.Primitives()) != 0 {
		t.Errorf("expected empty scene, got %d primitives", len(scene.Primitives()))
	}
	if _, ok := scene.Primitive(PrimFocalPoint); ok {
		t.Error("unknown primitive was created implicitly")
	}
}
