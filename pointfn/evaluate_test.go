package pointfn_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hop/geom"
	"github.com/katalvlaran/hop/pointfn"
)

// ------------------------------------------------------------------------
// 1. Validation: the evaluator rejects bad bindings before walking.
// ------------------------------------------------------------------------

func TestEvaluate_NilShape(t *testing.T) {
	_, err := pointfn.Evaluate(nil, 0)
	assert.ErrorIs(t, err, pointfn.ErrNilShape)
}

func TestEvaluate_ArityMismatch(t *testing.T) {
	c := pointfn.UnitCircleXY()

	_, err := pointfn.Evaluate(c)
	assert.ErrorIs(t, err, pointfn.ErrArityMismatch, "too few parameters")

	_, err = pointfn.Evaluate(c, 1, 2)
	assert.ErrorIs(t, err, pointfn.ErrArityMismatch, "too many parameters")
}

func TestEvaluate_NonFiniteParam(t *testing.T) {
	c := pointfn.UnitCircleXY()

	_, err := pointfn.Evaluate(c, math.NaN())
	assert.ErrorIs(t, err, pointfn.ErrNonFiniteParam, "NaN parameter")

	_, err = pointfn.Evaluate(c, math.Inf(-1))
	assert.ErrorIs(t, err, pointfn.ErrNonFiniteParam, "-Inf parameter")
}

func TestEvaluate_NonFiniteResultSurfaced(t *testing.T) {
	// Finite inputs can still overflow to +Inf during evaluation; the
	// evaluator must surface that as a composition bug, never clamp.
	huge := math.MaxFloat64
	c, err := pointfn.Circle(geom.Point3{X: huge}, huge, geom.UnitZ())
	require.NoError(t, err)

	_, err = pointfn.Evaluate(c, 0)
	assert.ErrorIs(t, err, pointfn.ErrNonFiniteResult)
}

func TestEvaluate_ChildErrorPropagatesFirst(t *testing.T) {
	// A domain failure deep in the tree propagates unchanged; no partial
	// result is produced.
	l, err := pointfn.Line(geom.Origin(), geom.Point3{X: 1})
	require.NoError(t, err)
	tw, err := pointfn.Twist(l, geom.UnitZ(), 1)
	require.NoError(t, err)

	_, err = pointfn.Evaluate(tw, 2, 0) // line t=2 is outside [0,1]
	assert.ErrorIs(t, err, pointfn.ErrOutOfDomain)
}

// ------------------------------------------------------------------------
// 2. End-to-end: the helix scenario.
// ------------------------------------------------------------------------

func TestEvaluate_HelixProjectionStaysOnUnitCircle(t *testing.T) {
	// twist(circle(origin, 1, Z), Z, rate=1) sampled over depth [0, 4π]
	// at 100 steps: the XY projection of every sample lies exactly on the
	// unit circle — twisting preserves the radius while advancing rotation.
	helix, err := pointfn.Twist(pointfn.UnitCircleXY(), geom.UnitZ(), 1)
	require.NoError(t, err)

	const steps = 100
	for i := 0; i <= steps; i++ {
		d := 4 * math.Pi * float64(i) / steps
		pt, evalErr := pointfn.Evaluate(helix, math.Pi/4, d)
		require.NoError(t, evalErr)

		radius := math.Hypot(pt.X, pt.Y)
		assert.InDelta(t, 1.0, radius, 1e-12, "sample %d at depth %v drifted off the unit circle", i, d)
	}
}

// ------------------------------------------------------------------------
// 3. Concurrency: one shared tree, many evaluators, no synchronization.
// ------------------------------------------------------------------------

func TestEvaluate_ConcurrentSharedTree(t *testing.T) {
	// The tree is immutable and evaluation is pure, so goroutines may
	// share it freely; every evaluator must see identical results.
	bottom := pointfn.UnitCircleXY()
	top, err := pointfn.Circle(geom.Point3{Z: 2}, 1, geom.UnitZ())
	require.NoError(t, err)
	tube, err := pointfn.Connect(bottom, top)
	require.NoError(t, err)
	shape, err := pointfn.Twist(tube, geom.UnitZ(), 0.5)
	require.NoError(t, err)

	want, err := pointfn.Evaluate(shape, 0.5, 1.0, 0.25)
	require.NoError(t, err)

	const goroutines = 16
	var wg sync.WaitGroup
	results := make([]geom.Point3, goroutines)
	errs := make([]error, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[idx], errs[idx] = pointfn.Evaluate(shape, 0.5, 1.0, 0.25)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i], "goroutine %d", i)
		if results[i] != want {
			t.Fatalf("goroutine %d saw %+v; want %+v", i, results[i], want)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Describe: the tree is inspectable as a nested expression.
// ------------------------------------------------------------------------

func TestDescribe_NestedExpression(t *testing.T) {
	tube, err := pointfn.Connect(pointfn.UnitCircleXY(), pointfn.UnitCircleXY())
	require.NoError(t, err)
	shape, err := pointfn.Twist(tube, geom.UnitZ(), 1)
	require.NoError(t, err)

	want := "twist(connect(" +
		"circle(center=(0, 0, 0), radius=1, normal=(0, 0, 1)), " +
		"circle(center=(0, 0, 0), radius=1, normal=(0, 0, 1))), " +
		"axis=(0, 0, 1), rate=1)"
	assert.Equal(t, want, shape.Describe())
}
