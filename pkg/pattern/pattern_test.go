package pattern

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// object is a minimal ObjectSpace for exercising AtShape
type object struct {
	inverse math.Matrix
}

func (o object) InverseTransform() math.Matrix { return o.inverse }

func newObject(t *testing.T, transform math.Matrix) object {
	t.Helper()
	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return object{inverse: inv}
}

func TestStripe_At(t *testing.T) {
	stripe := NewStripe(core.White, core.Black)

	tests := []struct {
		name     string
		point    math.Tuple
		expected core.Color
	}{
		{"constant in y (0)", math.Point(0, 0, 0), core.White},
		{"constant in y (1)", math.Point(0, 1, 0), core.White},
		{"constant in y (2)", math.Point(0, 2, 0), core.White},
		{"constant in z", math.Point(0, 0, 2), core.White},
		{"alternates in x (0.9)", math.Point(0.9, 0, 0), core.White},
		{"alternates in x (1)", math.Point(1, 0, 0), core.Black},
		{"alternates in x (-0.1)", math.Point(-0.1, 0, 0), core.Black},
		{"alternates in x (-1)", math.Point(-1, 0, 0), core.Black},
		{"alternates in x (-1.1)", math.Point(-1.1, 0, 0), core.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripe.At(tt.point); !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAtShape_Transforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  math.Matrix
		patternTransform math.Matrix
		point            math.Tuple
	}{
		{
			name:             "object transformation",
			objectTransform:  math.Scaling(2, 2, 2),
			patternTransform: math.Identity(),
			point:            math.Point(1.5, 0, 0),
		},
		{
			name:             "pattern transformation",
			objectTransform:  math.Identity(),
			patternTransform: math.Scaling(2, 2, 2),
			point:            math.Point(1.5, 0, 0),
		},
		{
			name:             "object and pattern transformation",
			objectTransform:  math.Scaling(2, 2, 2),
			patternTransform: math.Translation(0.5, 0, 0),
			point:            math.Point(2.5, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stripe := NewStripe(core.White, core.Black)
			if err := stripe.SetTransform(tt.patternTransform); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := AtShape(stripe, newObject(t, tt.objectTransform), tt.point)
			if !got.ApproxEqual(core.White) {
				t.Errorf("Expected white, got %v", got)
			}
		})
	}
}

func TestPattern_SetTransformRejectsSingular(t *testing.T) {
	stripe := NewStripe(core.White, core.Black)
	if err := stripe.SetTransform(math.Translation(1, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err := stripe.SetTransform(math.Scaling(0, 1, 1))
	if !errors.Is(err, math.ErrNotInvertible) {
		t.Fatalf("Expected ErrNotInvertible, got %v", err)
	}
	if !stripe.Transform().ApproxEqual(math.Translation(1, 0, 0)) {
		t.Errorf("Expected previous transform to be kept, got\n%v", stripe.Transform())
	}
}

func TestGradient_At(t *testing.T) {
	gradient := NewGradient(core.White, core.Black)

	tests := []struct {
		point    math.Tuple
		expected core.Color
	}{
		{math.Point(0, 0, 0), core.White},
		{math.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{math.Point(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{math.Point(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		if got := gradient.At(tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("At(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestRing_At(t *testing.T) {
	ring := NewRing(core.White, core.Black)

	tests := []struct {
		point    math.Tuple
		expected core.Color
	}{
		{math.Point(0, 0, 0), core.White},
		{math.Point(1, 0, 0), core.Black},
		{math.Point(0, 0, 1), core.Black},
		{math.Point(0.708, 0, 0.708), core.Black},
	}

	for _, tt := range tests {
		if got := ring.At(tt.point); !got.ApproxEqual(tt.expected) {
			t.Errorf("At(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestChecker_At(t *testing.T) {
	checker := NewChecker(core.White, core.Black)

	tests := []struct {
		name     string
		point    math.Tuple
		expected core.Color
	}{
		{"repeats in x", math.Point(0.99, 0, 0), core.White},
		{"repeats in x", math.Point(1.01, 0, 0), core.Black},
		{"repeats in y", math.Point(0, 0.99, 0), core.White},
		{"repeats in y", math.Point(0, 1.01, 0), core.Black},
		{"repeats in z", math.Point(0, 0, 0.99), core.White},
		{"repeats in z", math.Point(0, 0, 1.01), core.Black},
		{"negative cell", math.Point(-0.5, 0, 0), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.At(tt.point); !got.ApproxEqual(tt.expected) {
				t.Errorf("At(%v): expected %v, got %v", tt.point, tt.expected, got)
			}
		})
	}
}
