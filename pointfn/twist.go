package pointfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hop/geom"
)

// twistShape rotates its child's output about a fixed axis by an angle
// proportional to an appended depth parameter.
type twistShape struct {
	source Shape
	axis   geom.Vec3 // unit axis through the origin
	rate   float64   // radians of rotation per unit of depth
}

// Twist returns a generator whose domain is source's domain augmented with
// one trailing depth parameter d. It evaluates source at the original
// parameters, then rotates the resulting point about axis (through the
// origin) by the angle rate·d. Depth accepts any finite value.
//
// At d=0 the twist is the identity for every rate, and for rate ≠ 0 depths
// d and d+2π/rate differ by exactly one full rotation — twisting a circle
// about its own normal therefore preserves its radius while advancing
// rotation, which is how a flat circle becomes a helical path generator.
//
// Errors:
//   - ErrNilShape if source is nil.
//   - ErrZeroAxis if axis has zero length.
//   - ErrNonFiniteArg if axis or rate is NaN or ±Inf.
func Twist(source Shape, axis geom.Vec3, rate float64) (Shape, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: twist source", ErrNilShape)
	}
	if !axis.IsFinite() || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, ErrNonFiniteArg
	}
	a, err := axis.Normalize()
	if err != nil {
		return nil, ErrZeroAxis
	}

	return &twistShape{source: source, axis: a, rate: rate}, nil
}

// Arity returns the source arity plus one trailing depth parameter.
func (t *twistShape) Arity() int { return t.source.Arity() + 1 }

// Describe renders the twist with its child and constants.
func (t *twistShape) Describe() string {
	return fmt.Sprintf("twist(%s, axis=%s, rate=%g)", t.source.Describe(), fmtVec(t.axis), t.rate)
}

// eval splits off the trailing depth, evaluates the child, then rotates.
func (t *twistShape) eval(params []float64) (geom.Point3, error) {
	// 1) Split: the trailing component is the depth; the rest feeds source.
	depth := params[len(params)-1]

	// 2) Evaluate the child at the original parameters.
	p, err := t.source.eval(params[:len(params)-1])
	if err != nil {
		return geom.Point3{}, err
	}

	// 3) Rotate the child's point about the axis by rate·depth.
	return geom.Origin().Translate(p.Vec().RotateAround(t.axis, t.rate*depth)), nil
}
