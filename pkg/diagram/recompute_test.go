package diagram

import (
	"math"
	"reflect"
	"testing"

	"github.com/philipparndt/golens/pkg/geometry"
	"github.com/philipparndt/golens/pkg/optics"
)

func pt(x, y float64) geometry.Point2 {
	return geometry.NewPoint2(x, y)
}

func assertPoints(t *testing.T, name string, got, expected []geometry.Point2) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: expected %d points %v, got %d points %v", name, len(expected), expected, len(got), got)
	}
	for i := range expected {
		if math.Abs(got[i].X-expected[i].X) > 1e-9 || math.Abs(got[i].Y-expected[i].Y) > 1e-9 {
			t.Errorf("%s point %d: expected %v, got %v", name, i, expected[i], got[i])
		}
	}
}

func TestInitialDefaultLayout(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))

	if state.Object.Height != pt(500, 250) {
		t.Errorf("expected object at (500, 250), got %v", state.Object.Height)
	}
	if state.Object.Foot != pt(500, 300) {
		t.Errorf("expected object foot at (500, 300), got %v", state.Object.Foot)
	}
	if state.Lens.FocalLength != 50 || !state.Lens.Converging {
		t.Errorf("expected converging lens with f=50, got %+v", state.Lens)
	}
	if state.Image.Height != pt(700, 350) || !state.Image.Visible {
		t.Errorf("expected visible image at (700, 350), got %+v", state.Image)
	}
	if state.Image.Foot != pt(700, 300) {
		t.Errorf("expected image foot at (700, 300), got %v", state.Image.Foot)
	}

	assertPoints(t, "parallel", state.Rays[RayParallel].Points,
		[]geometry.Point2{pt(500, 250), pt(600, 250), pt(650, 300), pt(700, 350), pt(1200, 850)})
	assertPoints(t, "center", state.Rays[RayCenter].Points,
		[]geometry.Point2{pt(500, 250), pt(600, 300), pt(700, 350), pt(1200, 600)})
	assertPoints(t, "focal-prime", state.Rays[RayFocalPrime].Points,
		[]geometry.Point2{pt(500, 250), pt(550, 300), pt(600, 350), pt(700, 350), pt(1200, 350)})

	for _, ray := range state.Rays {
		if !ray.Visible {
			t.Errorf("expected %v ray visible", ray.Kind)
		}
	}
}

func TestLensSymmetry(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))

	for _, x := range []float64{5, 123.4, 450, 599, 600, 601, 777.7, 1195} {
		state = Recompute(cfg, state, Event{Point: FocalPrimePoint, Proposed: pt(x, 100)})
		lens := state.Lens

		expectedFocalX := 2*cfg.LensX() - lens.FocalPrime.X
		if math.Abs(lens.FocalPoint.X-expectedFocalX) > 1e-9 {
			t.Errorf("x=%v: expected focal point x %v, got %v", x, expectedFocalX, lens.FocalPoint.X)
		}
		if lens.FocalPoint.Y != cfg.AxisY() || lens.FocalPrime.Y != cfg.AxisY() {
			t.Errorf("x=%v: focal points left the axis: %v %v", x, lens.FocalPoint, lens.FocalPrime)
		}
		if lens.Converging != (lens.FocalLength >= 0) {
			t.Errorf("x=%v: converging flag %v disagrees with f=%v", x, lens.Converging, lens.FocalLength)
		}
	}
}

func TestObjectAtTwiceFocalLength(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, Layout{Object: pt(400, 200), FocalPrime: pt(500, 300)})

	// f = 100, u = 200: image at 200 on the far side, inverted, same size
	if state.Optics.Magnification != -1 {
		t.Errorf("expected magnification -1, got %v", state.Optics.Magnification)
	}
	if state.Image.Height != pt(800, 400) {
		t.Errorf("expected image at (800, 400), got %v", state.Image.Height)
	}
}

func TestVirtualImageSameSide(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, Layout{Object: pt(575, 250), FocalPrime: pt(550, 300)})

	if state.Optics.Magnification <= 0 {
		t.Errorf("expected upright image, got magnification %v", state.Optics.Magnification)
	}
	if state.Optics.Image != optics.VirtualImage {
		t.Errorf("expected virtual image, got %v", state.Optics.Image)
	}
	if state.Image.Height != pt(550, 200) {
		t.Errorf("expected image at (550, 200), got %v", state.Image.Height)
	}
}

func TestObjectOnLensPlaneHidesEverything(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))
	state = Recompute(cfg, state, Event{Point: ObjectPoint, Proposed: pt(600, 220)})

	if !state.OnLensPlane {
		t.Fatal("expected object on lens plane")
	}
	if state.Image.Visible {
		t.Error("expected image hidden")
	}
	for _, ray := range state.Rays {
		if ray.Visible || ray.Points != nil {
			t.Errorf("expected %v ray hidden without points, got %+v", ray.Kind, ray)
		}
	}
	if !state.Image.Height.IsFinite() {
		t.Errorf("expected finite image position, got %v", state.Image.Height)
	}
}

func TestObjectAtFocalPrime(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, Layout{Object: pt(550, 250), FocalPrime: pt(550, 300)})

	if !state.AtFocalPoint {
		t.Fatal("expected degenerate focal case")
	}
	if state.Image.Visible {
		t.Error("expected image hidden")
	}
	if state.Optics.Image != optics.ImageAtInfinity {
		t.Errorf("expected image at infinity, got %v", state.Optics.Image)
	}
	if ray := state.Rays[RayFocalPrime]; ray.Visible {
		t.Errorf("expected focal-prime ray hidden, got %+v", ray)
	}
	assertPoints(t, "parallel", state.Rays[RayParallel].Points,
		[]geometry.Point2{pt(550, 250), pt(600, 250), pt(650, 300), pt(1200, 850)})
	assertPoints(t, "center", state.Rays[RayCenter].Points,
		[]geometry.Point2{pt(550, 250), pt(600, 300), pt(1200, 900)})
}

func TestObjectAtFocalPointRightOfLens(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, Layout{Object: pt(650, 250), FocalPrime: pt(550, 300)})

	if !state.AtFocalPoint {
		t.Fatal("expected degenerate focal case")
	}
	assertPoints(t, "parallel", state.Rays[RayParallel].Points,
		[]geometry.Point2{pt(650, 250), pt(600, 250), pt(550, 300), pt(0, 850)})
	assertPoints(t, "center", state.Rays[RayCenter].Points,
		[]geometry.Point2{pt(650, 250), pt(600, 300), pt(0, 900)})
}

func TestDivergingLensAtFocalPrimeIsRegular(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, Layout{Object: pt(650, 250), FocalPrime: pt(650, 300)})

	if state.Lens.Converging {
		t.Fatal("expected diverging lens")
	}
	if state.AtFocalPoint {
		t.Error("diverging lens must not trigger the focal degenerate case")
	}
	if state.Image.Height != pt(625, 275) || !state.Image.Visible {
		t.Errorf("expected visible image at (625, 275), got %+v", state.Image)
	}
	if !state.Rays[RayFocalPrime].Visible {
		t.Error("expected focal-prime ray visible")
	}
}

func TestMovingFocalPrimeRecomputesDegenerateFlag(t *testing.T) {
	cfg := DefaultConfig()
	// diverging lens, object exactly where the focal-prime is about to land
	state := Initial(cfg, Layout{Object: pt(550, 250), FocalPrime: pt(650, 300)})
	if state.AtFocalPoint || !state.Image.Visible {
		t.Fatalf("expected regular diagram before the move, got %+v", state)
	}

	state = Recompute(cfg, state, Event{Point: FocalPrimePoint, Proposed: pt(551, 300)})

	if state.Lens.FocalPrime.X != 550 {
		t.Fatalf("expected focal-prime snapped to 550, got %v", state.Lens.FocalPrime)
	}
	if !state.AtFocalPoint || state.Image.Visible {
		t.Errorf("expected degenerate case after the move, got atFocal=%v imageVisible=%v",
			state.AtFocalPoint, state.Image.Visible)
	}

	// and back out again
	state = Recompute(cfg, state, Event{Point: FocalPrimePoint, Proposed: pt(450, 300)})
	if state.AtFocalPoint || !state.Image.Visible {
		t.Errorf("expected regular diagram after moving away, got atFocal=%v", state.AtFocalPoint)
	}
	if state.Image.Height != pt(525, 225) {
		t.Errorf("expected virtual image at (525, 225), got %v", state.Image.Height)
	}
}

func TestRecomputeClampsObject(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))
	state = Recompute(cfg, state, Event{Point: ObjectPoint, Proposed: pt(1300, -20)})

	if state.Object.Height != pt(1195, 5) {
		t.Errorf("expected object clamped to (1195, 5), got %v", state.Object.Height)
	}
}

func TestRecomputeClampsFocalPrime(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))
	state = Recompute(cfg, state, Event{Point: FocalPrimePoint, Proposed: pt(-40, 10)})

	if state.Lens.FocalPrime != pt(5, 300) {
		t.Errorf("expected focal-prime clamped to (5, 300), got %v", state.Lens.FocalPrime)
	}
	if state.Lens.FocalPoint != pt(1195, 300) {
		t.Errorf("expected focal point at (1195, 300), got %v", state.Lens.FocalPoint)
	}
}

func TestRecomputeSnapsObject(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))

	snapped := Recompute(cfg, state, Event{Point: ObjectPoint, Proposed: pt(52, 248)})
	if snapped.Object.Height != pt(50, 250) {
		t.Errorf("expected snap to (50, 250), got %v", snapped.Object.Height)
	}

	free := Recompute(cfg, state, Event{Point: ObjectPoint, Proposed: pt(55, 248)})
	if free.Object.Height != pt(55, 248) {
		t.Errorf("expected no snap at (55, 248), got %v", free.Object.Height)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	base := Initial(cfg, DefaultLayout(cfg))

	events := []Event{
		{Point: ObjectPoint, Proposed: pt(433.3, 177.7)},
		{Point: ObjectPoint, Proposed: pt(52, 248)},
		{Point: ObjectPoint, Proposed: pt(600, 100)},
		{Point: FocalPrimePoint, Proposed: pt(701.5, 12)},
		{Point: FocalPrimePoint, Proposed: pt(500, 300)},
	}

	for _, ev := range events {
		once := Recompute(cfg, base, ev)
		twice := Recompute(cfg, once, ev)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("%v to %v drifted:\n%+v\n%+v", ev.Point, ev.Proposed, once, twice)
		}
	}
}

func TestDeriveHasNoResidualState(t *testing.T) {
	cfg := DefaultConfig()

	direct := Initial(cfg, Layout{Object: pt(420, 180), FocalPrime: pt(520, 300)})

	viaDetour := Initial(cfg, DefaultLayout(cfg))
	viaDetour = Recompute(cfg, viaDetour, Event{Point: ObjectPoint, Proposed: pt(600, 250)})
	viaDetour = Recompute(cfg, viaDetour, Event{Point: FocalPrimePoint, Proposed: pt(520, 300)})
	viaDetour = Recompute(cfg, viaDetour, Event{Point: ObjectPoint, Proposed: pt(420, 180)})

	if !reflect.DeepEqual(direct, viaDetour) {
		t.Errorf("state depends on history:\n%+v\n%+v", direct, viaDetour)
	}
}

func TestRaysEndOnBoundary(t *testing.T) {
	cfg := DefaultConfig()
	state := Initial(cfg, DefaultLayout(cfg))

	objects := []geometry.Point2{pt(100, 100), pt(300, 500), pt(590, 290), pt(900, 120), pt(1100, 450)}
	for _, object := range objects {
		state = Recompute(cfg, state, Event{Point: ObjectPoint, Proposed: object})
		for _, ray := range state.Rays {
			if !ray.Visible {
				continue
			}
			end := ray.Points[len(ray.Points)-1]
			onEdge := end.X == 0 || end.X == cfg.Width || end.Y == 0 || end.Y == cfg.Height
			if !onEdge {
				t.Errorf("object %v: %v ray ends at %v, not on the boundary", object, ray.Kind, end)
			}
		}
	}
}
