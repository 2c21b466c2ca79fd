package geometry

import (
	"math"
	"testing"
)

func TestPoint2Add(t *testing.T) {
	result := NewPoint2(1, 2).Add(NewPoint2(4, 5))

	expected := NewPoint2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPoint2Sub(t *testing.T) {
	result := NewPoint2(5, 7).Sub(NewPoint2(1, 2))

	expected := NewPoint2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPoint2Distance(t *testing.T) {
	distance := NewPoint2(0, 0).Distance(NewPoint2(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestPoint2IsFinite(t *testing.T) {
	if !NewPoint2(1, -1).IsFinite() {
		t.Error("expected (1,-1) to be finite")
	}
	if NewPoint2(math.Inf(1), 0).IsFinite() {
		t.Error("expected +Inf x to be non-finite")
	}
	if NewPoint2(0, math.NaN()).IsFinite() {
		t.Error("expected NaN y to be non-finite")
	}
}

func TestClampToRect(t *testing.T) {
	tests := []struct {
		name     string
		in       Point2
		expected Point2
	}{
		{"inside", NewPoint2(100, 100), NewPoint2(100, 100)},
		{"left and above", NewPoint2(-20, -3), NewPoint2(5, 5)},
		{"right and below", NewPoint2(1300, 700), NewPoint2(1195, 595)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampToRect(tt.in, 5, 5, 1195, 595)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
