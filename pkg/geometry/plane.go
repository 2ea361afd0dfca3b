package geometry

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// PlaneParallelThreshold is the smallest |direction.y| that still counts as
// crossing the plane. Flatter rays miss.
const PlaneParallelThreshold = 1e-2

// Plane is the infinite xz plane at object-space y=0
type Plane struct {
	Base
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{Base: NewBase()}
}

// Kind implements Shape
func (p *Plane) Kind() string { return "plane" }

// LocalIntersect implements Shape
func (p *Plane) LocalIntersect(ray math.Ray) []float64 {
	if gomath.Abs(ray.Direction.Y) < PlaneParallelThreshold {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt implements Shape
func (p *Plane) LocalNormalAt(point math.Tuple) math.Tuple {
	return math.Vector(0, 1, 0)
}
