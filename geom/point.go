package geom

import "math"

// Translate returns the point p displaced by the vector v.
func (p Point3) Translate(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement vector from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Vec returns p as a displacement from the origin.
func (p Point3) Vec() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Lerp returns the linear interpolation p + t·(q−p).
// At t=0 it returns p exactly; at t=1 it returns q exactly.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	if t == 0 {
		return p
	}
	if t == 1 {
		return q
	}

	return Point3{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
		Z: p.Z + t*(q.Z-p.Z),
	}
}

// EqualWithin reports componentwise equality of p and q within eps.
func (p Point3) EqualWithin(q Point3, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps &&
		math.Abs(p.Y-q.Y) <= eps &&
		math.Abs(p.Z-q.Z) <= eps
}
