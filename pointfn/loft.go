package pointfn

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hop/geom"
)

const (
	// tangentStep is the finite-difference step used to probe the path
	// direction during loft evaluation.
	tangentStep = 1e-6

	// parallelEps decides when a path tangent counts as parallel to ±Z.
	parallelEps = 1e-9
)

// loftShape sweeps a cross-section generator along a path generator,
// re-expressing each cross-section point in the frame transported along
// the path.
type loftShape struct {
	cross, path Shape
	crossArity  int
}

// Loft returns a generator over the concatenation of the cross-section's
// parameters followed by the path's parameters. It evaluates the
// cross-section, interprets the result as an offset from the origin in a
// local frame, and places that offset at the path point, oriented by the
// path's direction of travel.
//
// The local frame is the minimal rotation taking the +Z axis onto the
// path tangent (probed by finite differences along the trailing path
// parameter). Where the tangent is +Z the frame is the identity, so
// lofting along a line up the Z axis reproduces the cross-section
// translated to each path point. A degenerate path with no direction
// sweeps without reorienting.
//
// Errors:
//   - ErrNilShape if cross or path is nil.
func Loft(cross, path Shape) (Shape, error) {
	if cross == nil || path == nil {
		return nil, fmt.Errorf("%w: loft child", ErrNilShape)
	}

	return &loftShape{cross: cross, path: path, crossArity: cross.Arity()}, nil
}

// Arity returns the cross-section arity plus the path arity.
func (l *loftShape) Arity() int { return l.crossArity + l.path.Arity() }

// Describe renders the loft with both children.
func (l *loftShape) Describe() string {
	return fmt.Sprintf("loft(%s, %s)", l.cross.Describe(), l.path.Describe())
}

// eval splits the parameters, evaluates both children, and transports the
// cross-section point into the frame at the path point.
func (l *loftShape) eval(params []float64) (geom.Point3, error) {
	// 1) Split: cross-section parameters first, path parameters after.
	cu := params[:l.crossArity]
	pv := params[l.crossArity:]

	// 2) Evaluate both children.
	section, err := l.cross.eval(cu)
	if err != nil {
		return geom.Point3{}, err
	}
	base, err := l.path.eval(pv)
	if err != nil {
		return geom.Point3{}, err
	}

	// 3) Probe the path direction and orient the cross-section offset.
	tangent, err := l.tangentAt(pv, base)
	if err != nil {
		return geom.Point3{}, err
	}
	offset := orientToTangent(section.Vec(), tangent)

	return base.Translate(offset), nil
}

// tangentAt estimates the path tangent at pv by central finite difference
// along the trailing path parameter, falling back to a one-sided
// difference at a strict domain boundary. A path without a direction
// (constant path) yields the zero vector.
func (l *loftShape) tangentAt(pv []float64, base geom.Point3) (geom.Vec3, error) {
	last := len(pv) - 1
	probe := make([]float64, len(pv))
	copy(probe, pv)

	// Forward sample at v+h.
	probe[last] = pv[last] + tangentStep
	fwd, errF := l.path.eval(probe)
	if errF != nil && !errors.Is(errF, ErrOutOfDomain) {
		return geom.Vec3{}, errF
	}

	// Backward sample at v−h.
	probe[last] = pv[last] - tangentStep
	bwd, errB := l.path.eval(probe)
	if errB != nil && !errors.Is(errB, ErrOutOfDomain) {
		return geom.Vec3{}, errB
	}

	switch {
	case errF == nil && errB == nil:
		return fwd.Sub(bwd).Scale(1 / (2 * tangentStep)), nil
	case errF == nil:
		return fwd.Sub(base).Scale(1 / tangentStep), nil
	case errB == nil:
		return base.Sub(bwd).Scale(1 / tangentStep), nil
	default:
		// Both probes fell outside the domain: the domain is too narrow
		// to orient a sweep, which is a composition bug.
		return geom.Vec3{}, fmt.Errorf("pointfn: loft tangent: %w", errF)
	}
}

// orientToTangent applies the minimal rotation taking +Z onto the path
// tangent to the offset vector. A zero tangent leaves the offset as-is;
// an exactly opposite tangent flips about the X axis.
func orientToTangent(offset geom.Vec3, tangent geom.Vec3) geom.Vec3 {
	t, err := tangent.Normalize()
	if err != nil {
		return offset // degenerate path: sweep without reorienting
	}

	switch {
	case t.Z > 1-parallelEps:
		return offset // already aligned: identity frame
	case t.Z < -(1 - parallelEps):
		return offset.RotateAround(geom.UnitX(), math.Pi)
	default:
		axis, _ := geom.UnitZ().Cross(t).Normalize() // non-zero since t ∦ Z
		angle := math.Acos(math.Max(-1, math.Min(1, t.Z)))

		return offset.RotateAround(axis, angle)
	}
}
