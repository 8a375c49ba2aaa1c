package pointfn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hop/geom"
)

// zAlignedEps decides when a circle normal counts as parallel to ±Z for
// the purpose of choosing the in-plane basis.
const zAlignedEps = 1e-9

// circleShape is the leaf generator for a circle of fixed radius lying in
// the plane through center with the given normal. The in-plane orthonormal
// basis (u, v) is fixed at construction so evaluation is a closed form.
type circleShape struct {
	center geom.Point3
	radius float64
	normal geom.Vec3 // unit normal, kept for Describe
	u, v   geom.Vec3 // unit vectors spanning the circle plane
}

// Circle returns a generator over one angle parameter producing points on
// the circle of the given radius, centered at center, in the plane with
// the given normal.
//
// The angle domain is periodic: any finite angle is valid and is taken
// modulo 2π. The angle origin is fixed deterministically: for a +Z normal
// the circle starts at center+(radius, 0, 0) and proceeds toward +Y, so
// Circle(origin, r, +Z) evaluated at 0 is exactly (r, 0, 0).
//
// Errors:
//   - ErrNonPositiveRadius if radius ≤ 0.
//   - ErrZeroNormal if normal has zero length.
//   - ErrNonFiniteArg if any argument is NaN or ±Inf.
func Circle(center geom.Point3, radius float64, normal geom.Vec3) (Shape, error) {
	// 1) Validate arguments eagerly; a circle is meaningless without a
	//    positive radius and an orientation.
	if !center.IsFinite() || !normal.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrNonFiniteArg
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveRadius, radius)
	}
	n, err := normal.Normalize()
	if err != nil {
		return nil, ErrZeroNormal
	}

	// 2) Fix the in-plane basis once. For normals parallel to ±Z the first
	//    basis vector is +X (this pins the conventional angle origin); for
	//    all other normals the basis derives from Z×n, keeping the frame
	//    right-handed with respect to n.
	var u geom.Vec3
	if math.Abs(n.Z) > 1-zAlignedEps {
		u = geom.UnitX()
	} else {
		u, _ = geom.UnitZ().Cross(n).Normalize() // non-zero since n ∦ Z
	}
	v := n.Cross(u)

	return &circleShape{center: center, radius: radius, normal: n, u: u, v: v}, nil
}

// UnitCircleXY returns the unit circle in the XY plane centered at the
// origin: the most common cross-section and the base of every example.
func UnitCircleXY() Shape {
	c, _ := Circle(geom.Origin(), 1, geom.UnitZ()) // cannot fail

	return c
}

// Arity returns 1: a circle consumes a single angle parameter.
func (c *circleShape) Arity() int { return 1 }

// Describe renders the circle with its defining constants.
func (c *circleShape) Describe() string {
	return fmt.Sprintf("circle(center=%s, radius=%g, normal=%s)",
		fmtPoint(c.center), c.radius, fmtVec(c.normal))
}

// eval computes the closed-form point at the (periodic) angle params[0].
func (c *circleShape) eval(params []float64) (geom.Point3, error) {
	// Wrap the angle into [0, 2π); the domain is periodic by policy.
	ang := math.Mod(params[0], geom.Tau)
	if ang < 0 {
		ang += geom.Tau
	}
	sin, cos := math.Sincos(ang)

	// center + r·cosθ·u + r·sinθ·v
	return c.center.
		Translate(c.u.Scale(c.radius * cos)).
		Translate(c.v.Scale(c.radius * sin)), nil
}
