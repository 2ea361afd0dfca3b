package geometry

import (
	gomath "math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

func TestCylinder_Miss(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		origin    math.Tuple
		direction math.Tuple
	}{
		{math.Point(1, 0, 0), math.Vector(0, 1, 0)},
		{math.Point(0, 0, 0), math.Vector(0, 1, 0)},
		{math.Point(0, 0, -5), math.Vector(1, 1, 1)},
	}

	for _, tt := range tests {
		ray := math.NewRay(tt.origin, tt.direction.Normalize())
		if xs := cyl.LocalIntersect(ray); len(xs) != 0 {
			t.Errorf("Ray from %v: expected a miss, got %v", tt.origin, xs)
		}
	}
}

func TestCylinder_Hit(t *testing.T) {
	cyl := NewCylinder()

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		t1, t2    float64
	}{
		{"tangent", math.Point(1, 0, -5), math.Vector(0, 0, 1), 5, 5},
		{"through axis", math.Point(0, 0, -5), math.Vector(0, 0, 1), 4, 6},
		{"skewed", math.Point(0.5, 0, -5), math.Vector(0.1, 1, 1), 6.80798, 7.08872},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			xs := cyl.LocalIntersect(ray)
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if gomath.Abs(xs[0]-tt.t1) > 1e-4 || gomath.Abs(xs[1]-tt.t2) > 1e-4 {
				t.Errorf("Expected t=%f,%f, got %v", tt.t1, tt.t2, xs)
			}
		})
	}
}

func TestCylinder_Truncated(t *testing.T) {
	cyl := NewTruncatedCylinder(1, 2, false)

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"escapes from inside", math.Point(0, 1.5, 0), math.Vector(0.1, 1, 0), 0},
		{"above", math.Point(0, 3, -5), math.Vector(0, 0, 1), 0},
		{"below", math.Point(0, 0, -5), math.Vector(0, 0, 1), 0},
		{"at maximum", math.Point(0, 2, -5), math.Vector(0, 0, 1), 0},
		{"at minimum", math.Point(0, 1, -5), math.Vector(0, 0, 1), 0},
		{"through middle", math.Point(0, 1.5, -2), math.Vector(0, 0, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			if xs := cyl.LocalIntersect(ray); len(xs) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(xs))
			}
		})
	}
}

func TestCylinder_Caps(t *testing.T) {
	cyl := NewTruncatedCylinder(1, 2, true)

	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"down through both caps", math.Point(0, 3, 0), math.Vector(0, -1, 0), 2},
		{"cap and side from above", math.Point(0, 3, -2), math.Vector(0, -1, 2), 2},
		{"corner from above", math.Point(0, 4, -2), math.Vector(0, -1, 1), 2},
		{"cap and side from below", math.Point(0, 0, -2), math.Vector(0, 1, 2), 2},
		{"corner from below", math.Point(0, -1, -2), math.Vector(0, 1, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := math.NewRay(tt.origin, tt.direction.Normalize())
			xs := cyl.LocalIntersect(ray)
			if len(xs) != tt.count {
				t.Fatalf("Expected %d intersections, got %d", tt.count, len(xs))
			}
			if xs[0] > xs[1] {
				t.Errorf("Expected ascending t values, got %v", xs)
			}
		})
	}
}

func TestCylinder_LocalNormalAt(t *testing.T) {
	open := NewCylinder()
	closed := NewTruncatedCylinder(1, 2, true)

	tests := []struct {
		name   string
		shape  *Cylinder
		point  math.Tuple
		normal math.Tuple
	}{
		{"side +x", open, math.Point(1, 0, 0), math.Vector(1, 0, 0)},
		{"side -z", open, math.Point(0, 5, -1), math.Vector(0, 0, -1)},
		{"side +z", open, math.Point(0, -2, 1), math.Vector(0, 0, 1)},
		{"side -x", open, math.Point(-1, 1, 0), math.Vector(-1, 0, 0)},
		{"bottom cap center", closed, math.Point(0, 1, 0), math.Vector(0, -1, 0)},
		{"bottom cap", closed, math.Point(0.5, 1, 0), math.Vector(0, -1, 0)},
		{"top cap center", closed, math.Point(0, 2, 0), math.Vector(0, 1, 0)},
		{"top cap", closed, math.Point(0, 2, 0.5), math.Vector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := tt.shape.LocalNormalAt(tt.point); !n.ApproxEqual(tt.normal) {
				t.Errorf("Expected %v, got %v", tt.normal, n)
			}
		})
	}
}

func TestCylinder_Defaults(t *testing.T) {
	cyl := NewCylinder()
	if !gomath.IsInf(cyl.Minimum, -1) || !gomath.IsInf(cyl.Maximum, 1) {
		t.Errorf("Expected an unbounded cylinder, got [%f, %f]", cyl.Minimum, cyl.Maximum)
	}
	if cyl.Closed {
		t.Error("Expected a new cylinder to be open")
	}
}
