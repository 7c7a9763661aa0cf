package wireframe

// Edge is one 3D line segment stored as a 4x2 homogeneous point pair:
// column 0 holds (x1, y1, z1, 1) and column 1 holds (x2, y2, z2, 1).
// Edges are values; once built they are never mutated.
type Edge [4][2]float64

// NewEdge builds an edge between two model-space points.
func NewEdge(a, b Vec3) Edge {
	return Edge{
		{a.X, b.X},
		{a.Y, b.Y},
		{a.Z, b.Z},
		{1, 1},
	}
}

// Start returns the first endpoint.
func (e Edge) Start() Vec3 {
	return Vec3{X: e[0][0], Y: e[1][0], Z: e[2][0]}
}

// End returns the second endpoint.
func (e Edge) End() Vec3 {
	return Vec3{X: e[0][1], Y: e[1][1], Z: e[2][1]}
}

// EdgeList is an ordered wireframe model as produced by ReadEdges.
type EdgeList struct {
	// Edges holds the well-formed edges in input order.
	Edges []Edge

	// Truncated reports that the capacity limit was reached before the
	// input ran out; any remaining records were not read.
	Truncated bool
}

// Len returns the number of edges in the list.
func (l *EdgeList) Len() int {
	return len(l.Edges)
}
