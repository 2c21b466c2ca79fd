package optics

import (
	"math"
	"testing"
)

func TestDescribeRealImage(t *testing.T) {
	readings := Describe(ComputeImage(100, 50, 50), 50)

	expected := map[string]string{
		"Lens":            "converging",
		"Focal length":    "1.00",
		"Object distance": "2.00",
		"Object height":   "1.00",
		"Image":           "real, inverted",
		"Image distance":  "2.00",
		"Image height":    "1.00",
		"Magnification":   "-1.000",
	}

	if len(readings) != len(expected) {
		t.Fatalf("expected %d readings, got %d: %v", len(expected), len(readings), readings)
	}
	for _, r := range readings {
		if want, ok := expected[r.Label]; !ok || want != r.Value {
			t.Errorf("%s: expected %q, got %q", r.Label, want, r.Value)
		}
	}
}

func TestDescribeImageAtInfinity(t *testing.T) {
	readings := Describe(ComputeImage(50, 50, 50), 50)

	last := readings[len(readings)-1]
	if last.String() != "Image distance: ∞" {
		t.Errorf("expected infinity readout, got %q", last.String())
	}
}

func TestDescribePixelsWhenUnitUnset(t *testing.T) {
	readings := Describe(ComputeImage(0, 50, -100), 0)

	if readings[1].Value != "-100.00" {
		t.Errorf("expected focal length in pixels, got %q", readings[1].Value)
	}
	if len(readings) != 5 {
		t.Errorf("expected no image readings for object on lens plane, got %v", readings)
	}
}

func TestFormatLengthNegativeZero(t *testing.T) {
	if got := FormatLength(math.Copysign(0, -1)); got != "0.00" {
		t.Errorf("expected 0.00, got %q", got)
	}
}
