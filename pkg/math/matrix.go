package math

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a 4x4 affine transform
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from 16 values given in row-major order
func NewMatrix(values ...float64) Matrix {
	if len(values) != 16 {
		panic(fmt.Sprintf("matrix needs 16 values, got %d", len(values)))
	}
	return Matrix{m: mgl64.Mat4FromRows(
		mgl64.Vec4{values[0], values[1], values[2], values[3]},
		mgl64.Vec4{values[4], values[5], values[6], values[7]},
		mgl64.Vec4{values[8], values[9], values[10], values[11]},
		mgl64.Vec4{values[12], values[13], values[14], values[15]},
	)}
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.m.At(row, col)
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{m: m.m.Mul4(other.m)}
}

// MultiplyTuple returns m * t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return fromVec4(m.m.Mul4x1(t.vec4()))
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	return Matrix{m: m.m.Transpose()}
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	return m.m.Det()
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible
func (m Matrix) Inverse() (Matrix, error) {
	det := m.m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrNotInvertible
	}
	return Matrix{m: m.m.Inv()}, nil
}

// ApproxEqual reports whether every element is within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	return m.m.ApproxEqualThreshold(other.m, Epsilon)
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "| %g %g %g %g |\n", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
	return sb.String()
}
