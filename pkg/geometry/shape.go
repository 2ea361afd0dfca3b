package geometry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Shape is a surface that can be intersected by rays. Implementations only
// supply the object-space math; Intersect and NormalAt handle the mapping
// between world and object space.
type Shape interface {
	ID() uuid.UUID
	Kind() string
	Transform() math.Matrix
	InverseTransform() math.Matrix
	NormalTransform() math.Matrix
	SetTransform(m math.Matrix) error
	Material() *material.Material
	SetMaterial(m material.Material)

	// LocalIntersect returns the t values, ascending, at which an
	// object-space ray meets the surface
	LocalIntersect(ray math.Ray) []float64
	// LocalNormalAt returns the object-space normal at an object-space point
	LocalNormalAt(point math.Tuple) math.Tuple
}

// Base carries the state every shape shares. Shapes embed it.
type Base struct {
	id               uuid.UUID
	transform        math.Matrix
	inverse          math.Matrix
	inverseTranspose math.Matrix
	material         material.Material
}

// NewBase returns a Base with a fresh identity, the identity transform and
// a default material
func NewBase() Base {
	return Base{
		id:               uuid.New(),
		transform:        math.Identity(),
		inverse:          math.Identity(),
		inverseTranspose: math.Identity(),
		material:         material.New(),
	}
}

// ID returns the identity of the shape. Two shapes are the same only if their IDs match.
func (b *Base) ID() uuid.UUID { return b.id }

// Transform returns the object-to-world transform
func (b *Base) Transform() math.Matrix { return b.transform }

// InverseTransform returns the cached world-to-object transform
func (b *Base) InverseTransform() math.Matrix { return b.inverse }

// NormalTransform returns the cached transpose of the inverse transform
func (b *Base) NormalTransform() math.Matrix { return b.inverseTranspose }

// SetTransform replaces the transform and refreshes the cached inverse.
// Singular matrices are rejected and the previous transform is kept.
func (b *Base) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	return nil
}

// Material returns the shape's material for reading or in-place edits
func (b *Base) Material() *material.Material { return &b.material }

// SetMaterial replaces the material
func (b *Base) SetMaterial(m material.Material) { b.material = m }

// Intersect tests a world-space ray against s
func Intersect(s Shape, ray math.Ray) Intersections {
	local := ray.Transform(s.InverseTransform())
	ts := s.LocalIntersect(local)
	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{Object: s, T: t}
	}
	return NewIntersections(xs...)
}

// NormalAt returns the unit world-space normal of s at a world-space point
func NormalAt(s Shape, worldPoint math.Tuple) math.Tuple {
	localPoint := s.InverseTransform().MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.NormalTransform().MultiplyTuple(localNormal)
	// The translation part of the inverse transpose leaks into w
	worldNormal.W = 0
	return worldNormal.Normalize()
}
