package geometry

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Triangle is a flat triangle defined by three object-space points
type Triangle struct {
	Base
	P1, P2, P3 math.Tuple

	// Cached edges and face normal
	e1     math.Tuple
	e2     math.Tuple
	normal math.Tuple
}

// NewTriangle creates a triangle with the default material
func NewTriangle(p1, p2, p3 math.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		Base:   NewBase(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		e1:     e1,
		e2:     e2,
		normal: e2.Cross(e1).Normalize(),
	}
}

// Kind implements Shape
func (tr *Triangle) Kind() string { return "triangle" }

// LocalIntersect uses the Möller-Trumbore algorithm
func (tr *Triangle) LocalIntersect(ray math.Ray) []float64 {
	dirCrossE2 := ray.Direction.Cross(tr.e2)
	det := tr.e1.Dot(dirCrossE2)

	// Ray lies in the plane of the triangle
	if gomath.Abs(det) < math.Epsilon {
		return nil
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Subtract(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.e1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	return []float64{f * tr.e2.Dot(originCrossE1)}
}

// LocalNormalAt returns the face normal everywhere on the triangle
func (tr *Triangle) LocalNormalAt(point math.Tuple) math.Tuple {
	return tr.normal
}

// Normal returns the cached face normal
func (tr *Triangle) Normal() math.Tuple { return tr.normal }
