package pattern

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Stripe alternates between A and B on unit intervals of x
type Stripe struct {
	Base
	A, B core.Color
}

// NewStripe creates a stripe pattern
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{Base: NewBase(), A: a, B: b}
}

// At implements Pattern
func (s *Stripe) At(p math.Tuple) core.Color {
	if isEven(gomath.Floor(p.X)) {
		return s.A
	}
	return s.B
}

// Gradient blends linearly from A to B across each unit of x
type Gradient struct {
	Base
	A, B core.Color
}

// NewGradient creates a gradient pattern
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{Base: NewBase(), A: a, B: b}
}

// At implements Pattern
func (g *Gradient) At(p math.Tuple) core.Color {
	fraction := p.X - gomath.Floor(p.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// Ring alternates between A and B on concentric rings in the xz plane
type Ring struct {
	Base
	A, B core.Color
}

// NewRing creates a ring pattern
func NewRing(a, b core.Color) *Ring {
	return &Ring{Base: NewBase(), A: a, B: b}
}

// At implements Pattern
func (r *Ring) At(p math.Tuple) core.Color {
	if isEven(gomath.Floor(gomath.Sqrt(p.X*p.X + p.Z*p.Z))) {
		return r.A
	}
	return r.B
}

// Checker alternates between A and B on unit cubes
type Checker struct {
	Base
	A, B core.Color
}

// NewChecker creates a 3D checker pattern
func NewChecker(a, b core.Color) *Checker {
	return &Checker{Base: NewBase(), A: a, B: b}
}

// At implements Pattern
func (c *Checker) At(p math.Tuple) core.Color {
	sum := gomath.Floor(p.X) + gomath.Floor(p.Y) + gomath.Floor(p.Z)
	if isEven(sum) {
		return c.A
	}
	return c.B
}

func isEven(v float64) bool {
	return int64(v)%2 == 0
}
