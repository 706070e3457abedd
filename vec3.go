package lattice

import "math"

// Vec3 is a 3D vector. It is a value type: every operation is pure and
// returns a new value, never mutating the receiver. NaN and infinity inputs
// propagate silently; these are hot-path functions and do not validate.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// One3 returns the all-ones vector (the identity scale).
func One3() Vec3 {
	return Vec3{1, 1, 1}
}

// Right returns the +X unit vector.
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Left returns the -X unit vector.
func Left() Vec3 {
	return Vec3{-1, 0, 0}
}

// Up returns the +Y unit vector.
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Down returns the -Y unit vector.
func Down() Vec3 {
	return Vec3{0, -1, 0}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector; no division by zero occurs.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// RotatedX returns the vector rotated about the X axis by angle radians.
// All three axis rotations mix the perpendicular components as
// (u, v) -> (u·cos − v·sin, u·sin + v·cos).
func (a Vec3) RotatedX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		a.X,
		a.Y*cos - a.Z*sin,
		a.Y*sin + a.Z*cos,
	}
}

// RotatedY returns the vector rotated about the Y axis by angle radians.
func (a Vec3) RotatedY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		a.X*cos - a.Z*sin,
		a.Y,
		a.X*sin + a.Z*cos,
	}
}

// RotatedZ returns the vector rotated about the Z axis by angle radians.
func (a Vec3) RotatedZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
		a.Z,
	}
}
