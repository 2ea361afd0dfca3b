// Package material describes how a surface responds to light under the
// Phong reflection model, plus the reflective and refractive coefficients
// used by the recursive tracer.
package material

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
)

// Common refractive indices
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.52
	Diamond = 2.417
)

// Material holds the surface coefficients of a shape. It is a value type:
// copying a Material never shares state except the Pattern, which is
// treated as immutable once attached.
type Material struct {
	Color           core.Color
	Pattern         pattern.Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// New returns the default material: white, matte-ish, opaque
func New() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns a fully transparent material with a refractive index of 1.5
func NewGlass() Material {
	m := New()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// Equal compares every coefficient and the color. Patterns are compared by identity.
func (m Material) Equal(other Material) bool {
	return m.Color.ApproxEqual(other.Color) &&
		m.Pattern == other.Pattern &&
		math.FloatEqual(m.Ambient, other.Ambient) &&
		math.FloatEqual(m.Diffuse, other.Diffuse) &&
		math.FloatEqual(m.Specular, other.Specular) &&
		math.FloatEqual(m.Shininess, other.Shininess) &&
		math.FloatEqual(m.Reflective, other.Reflective) &&
		math.FloatEqual(m.Transparency, other.Transparency) &&
		math.FloatEqual(m.RefractiveIndex, other.RefractiveIndex)
}

// ColorAt returns the surface color at a world point on obj
func (m Material) ColorAt(obj pattern.ObjectSpace, point math.Tuple) core.Color {
	if m.Pattern != nil {
		return pattern.AtShape(m.Pattern, obj, point)
	}
	return m.Color
}

// Lighting evaluates the Phong model for one light at a world point
func (m Material) Lighting(obj pattern.ObjectSpace, light lights.Light, point, eyev, normalv math.Tuple, inShadow bool) core.Color {
	color := m.ColorAt(obj, point)
	if inShadow {
		// Ambient only, independent of the light's intensity
		return color.Multiply(m.Ambient)
	}

	effective := color.Hadamard(light.Intensity())
	ambient := effective.Multiply(m.Ambient)

	lightv := light.Position().Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := gomath.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity().Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
