package wireframe

// Mat4 is a 4x4 homogeneous transform matrix in row-major order.
// Transform matrices keep [0, 0, 0, 1] in the bottom row; Mul does not
// check or enforce this.
type Mat4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Mat2x4 maps a homogeneous 3D point to a 2D screen point. It is the shape
// of a composed screen transform: a 2x4 projection multiplied through a
// chain of 4x4 transforms.
type Mat2x4 [2][4]float64

// Mul returns the product m * other, narrowing the chain to two output rows.
func (m Mat2x4) Mul(other Mat4) Mat2x4 {
	var out Mat2x4
	for i := range 2 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulEdge transforms both endpoints of an edge at once, returning the
// projected 2D endpoints in order. Column 0 of the edge yields the first
// point, column 1 the second.
func (m Mat2x4) MulEdge(e Edge) (Point, Point) {
	var out [2][2]float64
	for i := range 2 {
		for j := range 2 {
			var sum float64
			for k := range 4 {
				sum += m[i][k] * e[k][j]
			}
			out[i][j] = sum
		}
	}
	return Point{X: out[0][0], Y: out[1][0]}, Point{X: out[0][1], Y: out[1][1]}
}
