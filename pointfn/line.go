package pointfn

import (
	"fmt"

	"github.com/katalvlaran/hop/geom"
)

// lineShape is the leaf generator for the segment p0→p1.
type lineShape struct {
	p0, p1 geom.Point3
}

// Line returns a generator over one parameter t in [0,1] producing the
// point p0 + t·(p1−p0). Evaluation at t=0 yields p0 exactly and at t=1
// yields p1 exactly.
//
// The domain is strict: t outside [0,1] fails with ErrOutOfDomain rather
// than extrapolating. Coincident endpoints are permitted — the result is
// a constant generator, which needs no direction of its own.
//
// Errors:
//   - ErrNonFiniteArg if either endpoint is NaN or ±Inf.
func Line(p0, p1 geom.Point3) (Shape, error) {
	if !p0.IsFinite() || !p1.IsFinite() {
		return nil, ErrNonFiniteArg
	}

	return &lineShape{p0: p0, p1: p1}, nil
}

// Arity returns 1: a line consumes a single position parameter.
func (l *lineShape) Arity() int { return 1 }

// Describe renders the line with its endpoints.
func (l *lineShape) Describe() string {
	return fmt.Sprintf("line(p0=%s, p1=%s)", fmtPoint(l.p0), fmtPoint(l.p1))
}

// eval computes p0 + t·(p1−p0) for t in [0,1].
func (l *lineShape) eval(params []float64) (geom.Point3, error) {
	t := params[0]
	if t < 0 || t > 1 {
		return geom.Point3{}, fmt.Errorf("%w: line t=%g, want [0,1]", ErrOutOfDomain, t)
	}

	return l.p0.Lerp(l.p1, t), nil
}
