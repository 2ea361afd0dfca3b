package geometry

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// SurfaceOffset is how far over and under points sit from the surface.
// It keeps secondary rays from re-hitting the surface they leave.
const SurfaceOffset = 1e-4

// Computations holds the shading frame for one intersection
type Computations struct {
	T          float64
	Object     Shape
	Point      math.Tuple
	EyeV       math.Tuple
	NormalV    math.Tuple
	Inside     bool
	OverPoint  math.Tuple
	UnderPoint math.Tuple
	ReflectV   math.Tuple
	N1         float64 // refractive index of the medium being left
	N2         float64 // refractive index of the medium being entered
}

// Prepare derives the shading frame for i along ray. xs is every
// intersection of the ray, used to work out which media the ray is
// passing between; i is added to the walk if xs does not contain it.
func (i Intersection) Prepare(ray math.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      i.T,
		Object: i.Object,
		Point:  ray.Position(i.T),
		EyeV:   ray.Direction.Negate(),
	}
	comps.NormalV = NormalAt(i.Object, comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	offset := comps.NormalV.Multiply(SurfaceOffset)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	if !xs.Contains(i) {
		xs = xs.Merge(NewIntersections(i))
	}
	comps.N1, comps.N2 = refractiveIndices(i, xs)

	return comps
}

// refractiveIndices walks xs in t order keeping the stack of shapes the ray
// is inside. The innermost shape on either side of the target gives n1 and n2.
func refractiveIndices(target Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	containers := make([]Shape, 0, xs.Len())

	for _, x := range xs.items {
		isTarget := x.Equal(target)
		if isTarget {
			n1 = innermostIndex(containers)
		}

		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isTarget {
			n2 = innermostIndex(containers)
			break
		}
	}
	return n1, n2
}

func innermostIndex(containers []Shape) float64 {
	if len(containers) == 0 {
		return material.Vacuum
	}
	return containers[len(containers)-1].Material().RefractiveIndex
}

func indexOfShape(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate.ID() == s.ID() {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted. Total internal reflection gives 1.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		ratio := c.N1 / c.N2
		sin2t := ratio * ratio * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = gomath.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*gomath.Pow(1-cos, 5)
}
