package scene

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// ColorAt returns the color seen along ray using the scene's recursion limit
func (s *Scene) ColorAt(ray math.Ray) core.Color {
	return s.ColorAtDepth(ray, s.RecursionLimit)
}

// ColorAtDepth returns the color seen along ray with remaining bounces left.
// Rays that hit nothing are black.
func (s *Scene) ColorAtDepth(ray math.Ray, remaining int) core.Color {
	xs := s.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	return s.ShadeHit(hit.Prepare(ray, xs), remaining)
}

// ShadeHit returns the color at a prepared hit: direct light from every
// light source plus the reflected and refracted contributions. Surfaces
// that both reflect and transmit split the two by Schlick reflectance.
func (s *Scene) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black
	for _, light := range s.Lights {
		shadowed := s.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := s.ReflectedColor(comps, remaining)
	refracted := s.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror ray from the hit and scales it by the
// material's reflectivity
func (s *Scene) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	ray := math.NewRay(comps.OverPoint, comps.ReflectV)
	return s.ColorAtDepth(ray, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray through the hit using Snell's
// law and scales it by the material's transparency. Total internal
// reflection transmits nothing.
func (s *Scene) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	ratio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2t := ratio * ratio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := gomath.Sqrt(1 - sin2t)
	direction := comps.NormalV.Multiply(ratio*cosI - cosT).Subtract(comps.EyeV.Multiply(ratio))

	ray := math.NewRay(comps.UnderPoint, direction)
	return s.ColorAtDepth(ray, remaining-1).Multiply(transparency)
}
