package math

import "github.com/go-gl/mathgl/mgl64"

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling returns a matrix that scales along each axis
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX returns a rotation of r radians around the x axis
func RotationX(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(r)}
}

// RotationY returns a rotation of r radians around the y axis
func RotationY(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(r)}
}

// RotationZ returns a rotation of r radians around the z axis
func RotationZ(r float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(r)}
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms so that the first argument is applied first
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}
