package geometry

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Sphere is a unit sphere centered on the object-space origin
type Sphere struct {
	Base
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{Base: NewBase()}
}

// NewGlassSphere creates a unit sphere made of glass
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlass())
	return s
}

// Kind implements Shape
func (s *Sphere) Kind() string { return "sphere" }

// LocalIntersect solves |O + tD|^2 = 1 for the object-space ray
func (s *Sphere) LocalIntersect(ray math.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(math.Point(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil
	}
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := gomath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// LocalNormalAt implements Shape
func (s *Sphere) LocalNormalAt(point math.Tuple) math.Tuple {
	return point.Subtract(math.Point(0, 0, 0))
}
