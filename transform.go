package wireframe

import "math"

// RotationX returns the rotation matrix for angle radians about the x axis.
func RotationX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns the rotation matrix for angle radians about the y axis.
//
// The sign pattern is mirrored relative to RotationX and RotationZ: -sin
// sits at row 0 col 2 and +sin at row 2 col 0. The composed reference
// output depends on this exact convention, so it must not be normalized to
// match the other two axes.
func RotationY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		{cos, 0, -sin, 0},
		{0, 1, 0, 0},
		{sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns the rotation matrix for angle radians about the z axis.
func RotationZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return Mat4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scaling returns the scaling matrix with factors xs, ys, zs on the diagonal.
func Scaling(xs, ys, zs float64) Mat4 {
	return Mat4{
		{xs, 0, 0, 0},
		{0, ys, 0, 0},
		{0, 0, zs, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns the translation matrix for offsets xt, yt, zt.
func Translation(xt, yt, zt float64) Mat4 {
	return Mat4{
		{1, 0, 0, xt},
		{0, 1, 0, yt},
		{0, 0, 1, zt},
		{0, 0, 0, 1},
	}
}

// Projection returns the 2x4 matrix that maps a homogeneous (x, y, z, w)
// point to the screen point (x, z): model x becomes screen x and model z
// becomes screen y, while model y (depth) is dropped.
func Projection() Mat2x4 {
	return Mat2x4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	}
}
