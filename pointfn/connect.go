package pointfn

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/katalvlaran/hop/geom"
)

// connectShape interpolates between two child generators sharing a domain.
type connectShape struct {
	a, b   Shape
	easeFn ease.TweenFunc // nil means linear blend
}

// ConnectOption customizes a Connect combinator.
type ConnectOption func(*connectShape)

// WithEase shapes the blend parameter with an easing function from
// gween/ease (ease.InQuad, ease.OutCubic, …). The function is applied to
// u over the unit interval; the default is a linear blend.
// Panics if fn is nil (programmer error).
func WithEase(fn ease.TweenFunc) ConnectOption {
	if fn == nil {
		panic("pointfn: WithEase: easing function must be non-nil")
	}

	return func(c *connectShape) { c.easeFn = fn }
}

// Connect returns a generator over a (u, v…) parameter where the leading
// blend u in [0,1] selects an interpolation position between the points
// a(v…) and b(v…). This is how "circles connected by lines" are expressed:
// the circles are the endpoints and Connect supplies the connecting line
// at each shared parameter value.
//
// Both children must consume the same number of parameters. The blend
// domain is strict: u outside [0,1] fails with ErrOutOfDomain.
//
// Errors:
//   - ErrNilShape if a or b is nil.
//   - ErrArityMismatch if the children disagree on arity.
func Connect(a, b Shape, opts ...ConnectOption) (Shape, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: connect child", ErrNilShape)
	}
	if a.Arity() != b.Arity() {
		return nil, fmt.Errorf("%w: connect children have arity %d and %d",
			ErrArityMismatch, a.Arity(), b.Arity())
	}

	c := &connectShape{a: a, b: b}
	var opt ConnectOption
	for _, opt = range opts {
		opt(c)
	}

	return c, nil
}

// Arity returns the shared child arity plus one leading blend parameter.
func (c *connectShape) Arity() int { return 1 + c.a.Arity() }

// Describe renders the connect with both children.
func (c *connectShape) Describe() string {
	return fmt.Sprintf("connect(%s, %s)", c.a.Describe(), c.b.Describe())
}

// eval splits off the leading blend, evaluates both children at the shared
// sub-parameter, then interpolates.
func (c *connectShape) eval(params []float64) (geom.Point3, error) {
	// 1) Split: the leading component is the blend position u.
	u := params[0]
	if u < 0 || u > 1 {
		return geom.Point3{}, fmt.Errorf("%w: connect blend u=%g, want [0,1]", ErrOutOfDomain, u)
	}

	// 2) Evaluate both endpoints at the shared parameters.
	pa, err := c.a.eval(params[1:])
	if err != nil {
		return geom.Point3{}, err
	}
	pb, err := c.b.eval(params[1:])
	if err != nil {
		return geom.Point3{}, err
	}

	// 3) Blend. The easing function maps the unit interval onto itself;
	//    endpoints stay exact because Lerp is exact at 0 and 1 and every
	//    ease.TweenFunc satisfies f(0)=0, f(1)=1.
	t := u
	if c.easeFn != nil {
		t = float64(c.easeFn(float32(u), 0, 1, 1))
	}

	return pa.Lerp(pb, t), nil
}
