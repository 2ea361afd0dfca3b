package math

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used when comparing floating point components.
const Epsilon = 1e-4

// Tuple is a homogeneous coordinate: points have W=1, vectors have W=0
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a position tuple
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a direction tuple
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a position
func (t Tuple) IsPoint() bool {
	return FloatEqual(t.W, 1)
}

// IsVector reports whether the tuple is a direction
func (t Tuple) IsVector() bool {
	return FloatEqual(t.W, 0)
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return fromVec4(t.vec4().Add(other.vec4()))
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return fromVec4(t.vec4().Sub(other.vec4()))
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return fromVec4(t.vec4().Mul(scalar))
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return t.Multiply(1 / scalar)
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.vec4().Dot(other.vec4())
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return t.vec4().Len()
}

// Normalize returns a unit-length tuple in the same direction.
// The zero vector is returned unchanged.
func (t Tuple) Normalize() Tuple {
	length := t.Magnitude()
	if length == 0 {
		return t
	}
	return t.Divide(length)
}

// Cross returns the cross product of two vectors. It panics for points.
func (t Tuple) Cross(other Tuple) Tuple {
	if !t.IsVector() || !other.IsVector() {
		panic(fmt.Sprintf("cross product requires vectors, got %v and %v", t, other))
	}
	c := t.vec4().Vec3().Cross(other.vec4().Vec3())
	return Vector(c.X(), c.Y(), c.Z())
}

// Reflect returns the tuple reflected around the normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// ApproxEqual reports whether every component is within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

func (t Tuple) String() string {
	if t.IsPoint() {
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	if t.IsVector() {
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	}
	return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// FloatEqual compares two floats with the package tolerance
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (t Tuple) vec4() mgl64.Vec4 {
	return mgl64.Vec4{t.X, t.Y, t.Z, t.W}
}

func fromVec4(v mgl64.Vec4) Tuple {
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}
