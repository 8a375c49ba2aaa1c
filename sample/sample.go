package sample

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hop/geom"
	"github.com/katalvlaran/hop/pointfn"
)

// Sample evaluates shape at every cell of the cartesian product of the
// axes and returns the resulting points in row-major order (the last axis
// varies fastest). One axis is required per shape parameter, in the same
// order the shape consumes them.
//
// With WithParallelism(n), cells are sharded across n goroutines; the
// output order and any reported error are identical to a sequential run.
//
// Complexity: O(∏ Steps_i) evaluations, O(∏ Steps_i) memory.
func Sample(shape pointfn.Shape, grid []Axis, opts ...Option) ([]geom.Point3, error) {
	// 1) Validate the shape and the grid against its declared arity.
	if shape == nil {
		return nil, ErrNilShape
	}
	if len(grid) != shape.Arity() {
		return nil, fmt.Errorf("%w: got %d axes, want %d", ErrGridArity, len(grid), shape.Arity())
	}
	var ax Axis
	for _, ax = range grid {
		if !ax.valid() {
			return nil, fmt.Errorf("%w: got %+v", ErrBadAxis, ax)
		}
	}

	// 2) Resolve options and the total cell count.
	cfg := defaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	total := 1
	for _, ax = range grid {
		total *= ax.Steps
	}

	// 3) Evaluate every cell. The cloud is index-addressed, so parallel
	//    workers write disjoint entries and need no synchronization.
	cloud := make([]geom.Point3, total)
	workers := cfg.parallelism
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		if err := evalRange(shape, grid, cloud, 0, total); err != nil {
			return nil, err
		}

		return cloud, nil
	}

	// 4) Shard [0, total) into contiguous chunks, one per worker. Each
	//    worker records only its first failure; the lowest cell index wins
	//    afterwards, keeping errors deterministic.
	var wg sync.WaitGroup
	errs := make([]error, workers)
	chunk := (total + workers - 1) / workers

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			lo := w * chunk
			hi := lo + chunk
			if hi > total {
				hi = total
			}
			errs[w] = evalRange(shape, grid, cloud, lo, hi)
		}(w)
	}
	wg.Wait()

	// Chunks are ordered, so the first non-nil error is the lowest-index one.
	var err error
	for _, err = range errs {
		if err != nil {
			return nil, err
		}
	}

	return cloud, nil
}

// evalRange evaluates cells [lo, hi) into cloud, reusing one parameter
// buffer. It stops at the first error, reported with its cell index.
func evalRange(shape pointfn.Shape, grid []Axis, cloud []geom.Point3, lo, hi int) error {
	params := make([]float64, len(grid))
	var (
		idx int
		err error
	)
	for idx = lo; idx < hi; idx++ {
		paramsAt(grid, idx, params)
		cloud[idx], err = pointfn.Evaluate(shape, params...)
		if err != nil {
			return fmt.Errorf("sample: cell %d: %w", idx, err)
		}
	}

	return nil
}

// paramsAt decodes a row-major cell index into parameter values, writing
// into params. The last axis varies fastest.
func paramsAt(grid []Axis, idx int, params []float64) {
	var k int
	for k = len(grid) - 1; k >= 0; k-- {
		params[k] = grid[k].at(idx % grid[k].Steps)
		idx /= grid[k].Steps
	}
}
