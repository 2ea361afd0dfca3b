package geometry

import (
	gomath "math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Cylinder is a radius-1 cylinder around the object-space y axis, truncated
// to Minimum < y < Maximum. Closed adds end caps.
type Cylinder struct {
	Base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite, open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		Base:    NewBase(),
		Minimum: gomath.Inf(-1),
		Maximum: gomath.Inf(1),
	}
}

// NewTruncatedCylinder creates a cylinder spanning minimum < y < maximum
func NewTruncatedCylinder(minimum, maximum float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}

// Kind implements Shape
func (c *Cylinder) Kind() string { return "cylinder" }

// LocalIntersect implements Shape
func (c *Cylinder) LocalIntersect(ray math.Ray) []float64 {
	var xs []float64

	// x^2 + z^2 = 1, ignoring y
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if gomath.Abs(a) >= math.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := gomath.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, t)
			}
		}
	}

	xs = append(xs, c.intersectCaps(ray)...)
	sort.Float64s(xs)
	return xs
}

// intersectCaps tests the ray against the end caps of a closed cylinder
func (c *Cylinder) intersectCaps(ray math.Ray) []float64 {
	if !c.Closed || gomath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}

	var xs []float64
	for _, y := range []float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t) {
			xs = append(xs, t)
		}
	}
	return xs
}

func withinCap(ray math.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// LocalNormalAt points radially outward on the side and along y on the caps
func (c *Cylinder) LocalNormalAt(point math.Tuple) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if c.Closed && dist < 1 {
		if point.Y >= c.Maximum-math.Epsilon {
			return math.Vector(0, 1, 0)
		}
		if point.Y <= c.Minimum+math.Epsilon {
			return math.Vector(0, -1, 0)
		}
	}
	return math.Vector(point.X, 0, point.Z)
}
