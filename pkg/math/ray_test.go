package math

import "testing"

func TestRay_Position(t *testing.T) {
	ray := NewRay(Point(2, 3, 4), Vector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, Point(2, 3, 4)},
		{1, Point(3, 3, 4)},
		{-1, Point(1, 3, 4)},
		{2.5, Point(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := ray.Position(tt.t); !got.ApproxEqual(tt.expected) {
			t.Errorf("Position(%g): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray := NewRay(Point(1, 2, 3), Vector(0, 1, 0))

	translated := ray.Transform(Translation(3, 4, 5))
	if !translated.Origin.ApproxEqual(Point(4, 6, 8)) || !translated.Direction.ApproxEqual(Vector(0, 1, 0)) {
		t.Errorf("Unexpected translated ray %+v", translated)
	}

	scaled := ray.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.ApproxEqual(Point(2, 6, 12)) || !scaled.Direction.ApproxEqual(Vector(0, 3, 0)) {
		t.Errorf("Unexpected scaled ray %+v", scaled)
	}

	// The original ray is untouched
	if !ray.Origin.ApproxEqual(Point(1, 2, 3)) {
		t.Errorf("Expected original ray to be unchanged, got %+v", ray)
	}
}
