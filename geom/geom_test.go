// Package geom_test contains unit tests for the Vec3/Point3 value types.
// These tests validate vector algebra identities, Rodrigues rotation,
// interpolation exactness at endpoints, and the finiteness/tolerance policy.
package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hop/geom"
)

// ------------------------------------------------------------------------
// 1. Vector algebra: basic identities.
// ------------------------------------------------------------------------

func TestVec3_AddSubScale(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: -4, Y: 0.5, Z: 2}

	assert.Equal(t, geom.Vec3{X: -3, Y: 2.5, Z: 5}, a.Add(b), "componentwise sum")
	assert.Equal(t, a, a.Add(b).Sub(b), "Add then Sub must round-trip exactly")
	assert.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2), "scalar multiple")
}

func TestVec3_DotCross(t *testing.T) {
	x, y, z := geom.UnitX(), geom.UnitY(), geom.UnitZ()

	// Orthonormal basis relations.
	assert.Equal(t, 0.0, x.Dot(y), "orthogonal unit vectors have zero dot")
	assert.Equal(t, 1.0, x.Dot(x), "unit vector has unit self-dot")
	assert.Equal(t, z, x.Cross(y), "x × y = z")
	assert.Equal(t, x, y.Cross(z), "y × z = x")
	assert.Equal(t, y, z.Cross(x), "z × x = y")

	// Anticommutativity.
	assert.Equal(t, z.Scale(-1), y.Cross(x), "cross product is anticommutative")
}

func TestVec3_NormNormalize(t *testing.T) {
	v := geom.Vec3{X: 3, Y: 4, Z: 0}
	assert.Equal(t, 5.0, v.Norm(), "3-4-5 triangle")

	u, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Norm(), geom.DefaultEpsilon, "normalized vector has unit length")
}

func TestVec3_NormalizeZero(t *testing.T) {
	_, err := geom.Vec3{}.Normalize()
	assert.ErrorIs(t, err, geom.ErrZeroVector, "zero vector has no direction")
}

// ------------------------------------------------------------------------
// 2. Rodrigues rotation.
// ------------------------------------------------------------------------

func TestVec3_RotateAround_QuarterTurn(t *testing.T) {
	// Rotating +X a quarter turn about +Z must yield +Y.
	got := geom.UnitX().RotateAround(geom.UnitZ(), geom.Tau/4)
	assert.True(t, got.EqualWithin(geom.UnitY(), geom.DefaultEpsilon),
		"quarter turn about Z: got %+v", got)
}

func TestVec3_RotateAround_FullTurnIsIdentity(t *testing.T) {
	v := geom.Vec3{X: 0.3, Y: -1.2, Z: 2.5}
	got := v.RotateAround(geom.UnitZ(), geom.Tau)
	assert.True(t, got.EqualWithin(v, 1e-12), "full turn must be the identity: got %+v", got)
}

func TestVec3_RotateAround_PreservesNorm(t *testing.T) {
	v := geom.Vec3{X: 1, Y: 2, Z: -3}
	for _, theta := range []float64{0, 0.1, 1, geom.Tau / 3, 5} {
		got := v.RotateAround(geom.UnitY(), theta)
		assert.InDelta(t, v.Norm(), got.Norm(), 1e-12, "rotation must preserve length at θ=%v", theta)
	}
}

func TestVec3_RotateAround_AxisIsFixed(t *testing.T) {
	// Points on the axis itself must not move.
	axis := geom.UnitZ()
	v := axis.Scale(4.2)
	got := v.RotateAround(axis, 1.234)
	assert.True(t, got.EqualWithin(v, 1e-12), "axis-parallel vectors are fixed points")
}

// ------------------------------------------------------------------------
// 3. Point operations.
// ------------------------------------------------------------------------

func TestPoint3_TranslateSub(t *testing.T) {
	p := geom.Point3{X: 1, Y: 1, Z: 1}
	v := geom.Vec3{X: 2, Y: -1, Z: 0.5}

	q := p.Translate(v)
	assert.Equal(t, geom.Point3{X: 3, Y: 0, Z: 1.5}, q)
	assert.Equal(t, v, q.Sub(p), "Sub must recover the displacement exactly")
}

func TestPoint3_Lerp_EndpointsExact(t *testing.T) {
	p := geom.Point3{X: 0.1, Y: 0.2, Z: 0.3}
	q := geom.Point3{X: -7, Y: 11, Z: 0.0001}

	// Endpoint exactness is a hard guarantee, not a tolerance statement.
	if got := p.Lerp(q, 0); got != p {
		t.Fatalf("Lerp(0) = %+v; want %+v exactly", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Fatalf("Lerp(1) = %+v; want %+v exactly", got, q)
	}

	mid := p.Lerp(q, 0.5)
	assert.True(t, mid.EqualWithin(geom.Point3{X: -3.45, Y: 5.6, Z: 0.15005}, geom.DefaultEpsilon))
}

// ------------------------------------------------------------------------
// 4. Finiteness and tolerance policy.
// ------------------------------------------------------------------------

func TestIsFinite(t *testing.T) {
	assert.True(t, geom.Point3{X: 1, Y: 2, Z: 3}.IsFinite())
	assert.True(t, geom.Vec3{}.IsFinite(), "zero vector is finite")

	assert.False(t, geom.Point3{X: math.NaN()}.IsFinite(), "NaN coordinate")
	assert.False(t, geom.Vec3{Z: math.Inf(1)}.IsFinite(), "+Inf component")
	assert.False(t, geom.Point3{Y: math.Inf(-1)}.IsFinite(), "-Inf coordinate")
}

func TestEqualWithin(t *testing.T) {
	p := geom.Point3{X: 1, Y: 1, Z: 1}
	q := geom.Point3{X: 1 + 1e-10, Y: 1, Z: 1 - 1e-10}

	assert.True(t, p.EqualWithin(q, geom.DefaultEpsilon), "within tolerance")
	assert.False(t, p.EqualWithin(geom.Point3{X: 1.001, Y: 1, Z: 1}, geom.DefaultEpsilon), "outside tolerance")
}
