package pointfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hop/geom"
)

// Evaluate materializes a concrete point from a composition tree.
//
// It validates the parameter binding against the shape's declared arity
// and finiteness policy, walks the tree (each interior node splitting the
// parameters per its rule and transforming its children's results), and
// checks the final coordinate for finiteness.
//
// Evaluation is a pure function of (shape, params): no global or mutable
// state is consulted, so concurrent calls on one shared tree are safe and
// repeated calls yield identical results. The first error encountered in
// any child is propagated; there are no partial results.
//
// Preconditions and validation (in order):
//  1. shape must be non-nil (ErrNilShape).
//  2. len(params) must equal shape.Arity() (ErrArityMismatch).
//  3. Every parameter must be finite (ErrNonFiniteParam).
//
// Complexity: O(depth) in the combinator nesting, O(1) work per node.
func Evaluate(shape Shape, params ...float64) (geom.Point3, error) {
	// 1) Validate the evaluation target.
	if shape == nil {
		return geom.Point3{}, ErrNilShape
	}

	// 2) Validate the parameter binding against the declared arity.
	if len(params) != shape.Arity() {
		return geom.Point3{}, fmt.Errorf("%w: got %d parameters, want %d",
			ErrArityMismatch, len(params), shape.Arity())
	}

	// 3) Enforce the finiteness policy once, at the boundary.
	var p float64
	for _, p = range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return geom.Point3{}, fmt.Errorf("%w: got %g", ErrNonFiniteParam, p)
		}
	}

	// 4) Walk the tree.
	pt, err := shape.eval(params)
	if err != nil {
		return geom.Point3{}, err
	}

	// 5) A non-finite coordinate is a composition bug; surface it rather
	//    than clamp.
	if !pt.IsFinite() {
		return geom.Point3{}, fmt.Errorf("%w: got (%g, %g, %g)",
			ErrNonFiniteResult, pt.X, pt.Y, pt.Z)
	}

	return pt, nil
}
