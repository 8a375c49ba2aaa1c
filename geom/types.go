// Package geom defines the core value types and the numeric policy
// for the geom subpackage of github.com/katalvlaran/hop.
package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geometric operations.
var (
	// ErrZeroVector indicates a direction was required but a zero-length
	// vector was supplied.
	ErrZeroVector = errors.New("geom: zero-length vector has no direction")
)

// Numeric policy - single source of truth for tolerance decisions.
const (
	// DefaultEpsilon is the componentwise tolerance used by EqualWithin
	// callers throughout the library and its tests.
	DefaultEpsilon = 1e-9

	// Tau is one full turn in radians (2π).
	Tau = 2 * math.Pi
)

// Vec3 is an immutable displacement/direction in 3D space.
// The zero value is the zero vector.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is an immutable location in 3D space.
// Equality carries no identity beyond the coordinates themselves.
type Point3 struct {
	X, Y, Z float64
}

// Origin returns the point (0, 0, 0).
func Origin() Point3 { return Point3{} }

// UnitX returns the unit vector along +X.
func UnitX() Vec3 { return Vec3{X: 1} }

// UnitY returns the unit vector along +Y.
func UnitY() Vec3 { return Vec3{Y: 1} }

// UnitZ returns the unit vector along +Z.
func UnitZ() Vec3 { return Vec3{Z: 1} }

// finite reports whether every argument is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	var v float64
	for _, v = range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// IsFinite reports whether all three components are finite.
func (v Vec3) IsFinite() bool { return finite(v.X, v.Y, v.Z) }

// IsFinite reports whether all three coordinates are finite.
func (p Point3) IsFinite() bool { return finite(p.X, p.Y, p.Z) }
