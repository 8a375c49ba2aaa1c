package geom

import "math"

// Add returns the sum of vectors v and w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of vectors v and w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Dot returns the dot product of the vectors v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of the vectors v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of the vector v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether v is exactly the zero vector.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns the unit vector pointing in the direction of v.
// It returns ErrZeroVector if v has zero length.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n == 0 {
		return Vec3{}, ErrZeroVector
	}

	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}, nil
}

// RotateAround returns v rotated by theta radians about the unit axis.
// The axis must already be normalized; RotateAround does not re-normalize.
// This uses Rodrigues' rotation formula:
//
//	v' = v·cosθ + (axis×v)·sinθ + axis·(axis·v)·(1−cosθ)
func (v Vec3) RotateAround(axis Vec3, theta float64) Vec3 {
	sin, cos := math.Sincos(theta)

	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// EqualWithin reports componentwise equality of v and w within eps.
func (v Vec3) EqualWithin(w Vec3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps &&
		math.Abs(v.Y-w.Y) <= eps &&
		math.Abs(v.Z-w.Z) <= eps
}
