// Package pattern provides procedural colors that vary over a surface.
//
// Patterns live in their own coordinate space. A world point is mapped first
// into the object space of the shape being shaded, then into pattern space.
package pattern

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Pattern returns a color for a point given in pattern space
type Pattern interface {
	At(point math.Tuple) core.Color
	Transform() math.Matrix
	InverseTransform() math.Matrix
	SetTransform(m math.Matrix) error
}

// ObjectSpace is anything that can map world points into its own space.
// Shapes satisfy it; patterns hold no reference back to them.
type ObjectSpace interface {
	InverseTransform() math.Matrix
}

// AtShape evaluates p at a world-space point on obj
func AtShape(p Pattern, obj ObjectSpace, worldPoint math.Tuple) core.Color {
	objectPoint := obj.InverseTransform().MultiplyTuple(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.At(patternPoint)
}

// Base holds the transform shared by every pattern
type Base struct {
	transform math.Matrix
	inverse   math.Matrix
}

// NewBase returns a Base with the identity transform
func NewBase() Base {
	return Base{transform: math.Identity(), inverse: math.Identity()}
}

// Transform returns the pattern transform
func (b *Base) Transform() math.Matrix { return b.transform }

// InverseTransform returns the cached inverse of the pattern transform
func (b *Base) InverseTransform() math.Matrix { return b.inverse }

// SetTransform replaces the transform and recomputes its inverse.
// A singular matrix is rejected and the previous transform kept.
func (b *Base) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	return nil
}
