package geometry

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Cube is the axis-aligned box spanning [-1, 1] on every object-space axis
type Cube struct {
	Base
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{Base: NewBase()}
}

// Kind implements Shape
func (c *Cube) Kind() string { return "cube" }

// LocalIntersect clips the ray against the three slabs of the cube
func (c *Cube) LocalIntersect(ray math.Ray) []float64 {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := gomath.Max(xMin, gomath.Max(yMin, zMin))
	tMax := gomath.Min(xMax, gomath.Min(yMax, zMax))
	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// checkAxis returns where a ray enters and leaves the slab [-1, 1] on one axis
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if gomath.Abs(direction) >= math.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * gomath.Inf(1)
		tMax = tMaxNumerator * gomath.Inf(1)
	}
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalNormalAt returns the normal of the face the point lies on, picked by
// its largest absolute component
func (c *Cube) LocalNormalAt(point math.Tuple) math.Tuple {
	ax, ay, az := gomath.Abs(point.X), gomath.Abs(point.Y), gomath.Abs(point.Z)
	maxc := gomath.Max(ax, gomath.Max(ay, az))

	switch maxc {
	case ax:
		return math.Vector(point.X, 0, 0)
	case ay:
		return math.Vector(0, point.Y, 0)
	}
	return math.Vector(0, 0, point.Z)
}
