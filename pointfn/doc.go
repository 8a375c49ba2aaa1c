// Package pointfn is the heart of hop: a higher-order calculus where a
// "point" is a function from parameters to a 3D coordinate, and complex
// parametric shapes are composed from small generators instead of derived
// as closed-form equations.
//
// What:
//
//   - Shape: the single capability every node offers — a declared Arity
//     (number of scalar parameters) and pure evaluation. Leaves are the
//     primitive generators Circle and Line; interior nodes are the
//     combinators Twist, Connect and Loft.
//   - Constructors build an immutable, acyclic composition tree. Nothing is
//     evaluated at construction time; combinators only capture references to
//     their children and their own constant parameters.
//   - Evaluate(shape, params...) walks the tree with a concrete parameter
//     binding and returns a geom.Point3, or the first error encountered.
//
// Why:
//
//   - Twisting a circle yields a helical path; connecting two circles with
//     lines and twisting the result yields a hyperboloid — no surface
//     equation is ever written down by the caller.
//   - Trees are pure data: shareable across goroutines, describable as text,
//     and evaluable arbitrarily many times with identical results.
//
// Parameter splitting (interior nodes):
//
//   - Twist appends one trailing depth parameter d and rotates its child's
//     output about the twist axis by rate·d.
//   - Connect prepends one blend parameter u in [0,1] and interpolates
//     between a(v) and b(v), optionally shaping u with an easing function.
//   - Loft concatenates cross-section parameters before path parameters and
//     re-expresses the cross-section point in the frame transported along
//     the path.
//
// Domain policy (fixed per generator, see Evaluate):
//
//   - Circle angles are periodic: any finite angle is valid, taken modulo 2π.
//   - Line t and Connect blend u are strict: values outside [0,1] fail with
//     ErrOutOfDomain rather than extrapolating silently.
//   - Twist depth accepts any finite value.
//
// Errors (sentinel):
//
//   - ErrNilShape          — a nil Shape was supplied.
//   - ErrArityMismatch     — parameter count differs from the declared arity,
//     or Connect children disagree on arity.
//   - ErrNonFiniteParam    — an evaluation parameter is NaN or ±Inf.
//   - ErrOutOfDomain       — a parameter lies outside a strict domain.
//   - ErrNonPositiveRadius — Circle constructed with radius ≤ 0.
//   - ErrZeroNormal        — Circle constructed with a zero normal.
//   - ErrZeroAxis          — Twist constructed with a zero axis.
//   - ErrNonFiniteArg      — a constructor argument is NaN or ±Inf.
//   - ErrNonFiniteResult   — evaluation produced a non-finite coordinate;
//     always a composition bug, surfaced and never clamped.
//
// Complexity: Evaluate is O(depth) in the nesting of combinators with O(1)
// work per node; no allocation beyond parameter sub-slicing, no locks, no
// global state. Concurrent evaluation of one shared tree is safe.
//
// Example usage:
//
//	circle, _ := pointfn.Circle(geom.Origin(), 1, geom.UnitZ())
//	helix, _ := pointfn.Twist(circle, geom.UnitZ(), 1)
//	pt, err := pointfn.Evaluate(helix, math.Pi/2, 0.25)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("(%.3f, %.3f, %.3f)\n", pt.X, pt.Y, pt.Z)
package pointfn
