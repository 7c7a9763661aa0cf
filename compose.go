package wireframe

import "math"

// Angles holds the rotation applied to every rendered instance, in radians.
// The rotation is shared: instances differ only in scale, translation and
// color.
type Angles struct {
	X, Y, Z float64
}

// DefaultAngles returns the reference view rotation: 20 degrees about the
// x axis, none about y, and -45 degrees about z.
func DefaultAngles() Angles {
	return Angles{
		X: 20 * math.Pi / 180,
		Y: 0,
		Z: -45 * math.Pi / 180,
	}
}

// Instance describes one rendered copy of the wireframe: a uniform scale
// factor, a translation in model space, and a stroke color.
type Instance struct {
	Scale      float64
	TX, TY, TZ float64
	Color      Color
}

// DefaultInstances returns the four fixed copies drawn by the reference
// pipeline, in draw order: one per canvas quadrant, largest at the top
// left and smallest at the bottom right.
func DefaultInstances() []Instance {
	return []Instance{
		{Scale: 200, TX: 125, TY: 0, TZ: 125, Color: Magenta},
		{Scale: 150, TX: 375, TY: 0, TZ: 125, Color: Cyan},
		{Scale: 100, TX: 125, TY: 0, TZ: 375, Color: Blue},
		{Scale: 50, TX: 375, TY: 0, TZ: 375, Color: Purple},
	}
}

// Compose builds the combined screen transform for one instance:
//
//	M = P * T * S * Rx * Ry * Rz
//
// evaluated right to left, so a point is rotated about z, then y, then x,
// then scaled, translated and projected. The z scale factor is negated
// because the screen's vertical axis grows downward while model z grows
// upward. A fresh matrix is computed on every call; nothing is cached or
// shared between instances.
func Compose(inst Instance, angles Angles) Mat2x4 {
	rot := RotationX(angles.X).Mul(RotationY(angles.Y).Mul(RotationZ(angles.Z)))
	scale := Scaling(inst.Scale, inst.Scale, -inst.Scale)
	translate := Translation(inst.TX, inst.TY, inst.TZ)
	return Projection().Mul(translate.Mul(scale.Mul(rot)))
}
