// Package sample materializes point clouds from composition trees by
// evaluating them over a cartesian grid of parameter values.
//
// What:
//
//   - Axis describes one sampled parameter range: [Min, Max] inclusive,
//     subdivided into Steps samples (Steps=1 samples Min only).
//   - Sample(shape, grid) evaluates the shape at every cell of the
//     cartesian product of the axes, in row-major order (the last axis
//     varies fastest), and returns the points in that order.
//   - WithParallelism(n) shards the cells across n goroutines. Evaluation
//     is pure and the tree immutable, so workers need no locks: each
//     writes disjoint indices of the result slice, and the output is
//     identical to a sequential run.
//
// Why:
//
//   - Rendering, export and analysis all start from the same operation:
//     turn a parametric surface into a finite point sequence.
//
// Errors:
//
//   - ErrNilShape: no shape to sample.
//   - ErrBadAxis: Steps < 1, Min > Max, or a non-finite bound.
//   - ErrGridArity: the number of axes differs from the shape's arity.
//   - Evaluation errors propagate from pointfn.Evaluate; with parallel
//     workers the reported error is the one at the lowest cell index, so
//     failures are deterministic too.
//
// Complexity: O(∏ Steps_i) evaluations; memory O(∏ Steps_i) for the cloud.
package sample
