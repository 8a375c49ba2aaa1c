// Package pointfn defines the Shape capability interface and sentinel
// errors for the pointfn subpackage of github.com/katalvlaran/hop.
package pointfn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hop/geom"
)

// Sentinel errors for construction and evaluation.
var (
	// ErrNilShape indicates a nil Shape was passed where a child or an
	// evaluation target is required.
	ErrNilShape = errors.New("pointfn: shape is nil")

	// ErrArityMismatch indicates the number of supplied parameters differs
	// from the shape's declared arity, or that Connect children disagree
	// on their parameter domain.
	ErrArityMismatch = errors.New("pointfn: parameter count does not match shape arity")

	// ErrNonFiniteParam indicates an evaluation parameter is NaN or ±Inf.
	ErrNonFiniteParam = errors.New("pointfn: evaluation parameter must be finite")

	// ErrOutOfDomain indicates a parameter lies outside a generator's
	// strict domain (line t and connect blend u are bounded to [0,1]).
	ErrOutOfDomain = errors.New("pointfn: parameter outside generator domain")

	// ErrNonPositiveRadius indicates Circle was constructed with radius ≤ 0.
	ErrNonPositiveRadius = errors.New("pointfn: circle radius must be positive")

	// ErrZeroNormal indicates Circle was constructed with a zero normal vector.
	ErrZeroNormal = errors.New("pointfn: circle normal must be non-zero")

	// ErrZeroAxis indicates Twist was constructed with a zero axis vector.
	ErrZeroAxis = errors.New("pointfn: twist axis must be non-zero")

	// ErrNonFiniteArg indicates a constructor argument is NaN or ±Inf.
	ErrNonFiniteArg = errors.New("pointfn: constructor argument must be finite")

	// ErrNonFiniteResult indicates evaluation produced a non-finite
	// coordinate. This is always a composition bug and is surfaced to the
	// caller rather than clamped.
	ErrNonFiniteResult = errors.New("pointfn: evaluation produced a non-finite coordinate")
)

// Shape is a node of a composition tree: a pure mapping from Arity()
// scalar parameters to a 3D point. Leaves are primitive generators
// (Circle, Line); interior nodes are combinators (Twist, Connect, Loft).
//
// Shapes are immutable after construction and safe to share across
// goroutines and across multiple parent nodes. The evaluation method is
// unexported: all implementations live in this package, which keeps the
// set of tree variants closed and the evaluator total.
type Shape interface {
	// Arity returns the number of scalar parameters the shape consumes.
	Arity() int

	// Describe renders the shape as a nested textual expression,
	// e.g. "twist(circle(center=(0, 0, 0), radius=1, normal=(0, 0, 1)), axis=(0, 0, 1), rate=1)".
	Describe() string

	// eval computes the point at the given parameters. The caller
	// guarantees len(params) == Arity() and that every parameter is finite.
	eval(params []float64) (geom.Point3, error)
}

// fmtPoint renders a point as "(x, y, z)" for Describe output.
func fmtPoint(p geom.Point3) string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// fmtVec renders a vector as "(x, y, z)" for Describe output.
func fmtVec(v geom.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
