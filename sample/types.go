// Package sample defines grid types, functional options, and sentinel
// errors for the sample subpackage of github.com/katalvlaran/hop.
package sample

import (
	"errors"
	"math"
)

// Sentinel errors for grid sampling.
var (
	// ErrNilShape indicates a nil shape was passed to Sample.
	ErrNilShape = errors.New("sample: shape is nil")

	// ErrBadAxis indicates an axis with Steps < 1, Min > Max, or a
	// non-finite bound.
	ErrBadAxis = errors.New("sample: axis must have Steps ≥ 1 and finite Min ≤ Max")

	// ErrGridArity indicates the number of axes differs from the shape's
	// declared arity.
	ErrGridArity = errors.New("sample: grid axis count does not match shape arity")
)

// DefaultParallelism is the worker count used when WithParallelism is not
// supplied: sampling stays sequential unless asked otherwise.
const DefaultParallelism = 1

// Axis describes one sampled parameter range: Steps values spread evenly
// over [Min, Max], endpoints included. Steps=1 samples Min only.
type Axis struct {
	Min, Max float64
	Steps    int
}

// valid reports whether the axis is usable for sampling.
func (a Axis) valid() bool {
	return a.Steps >= 1 &&
		a.Min <= a.Max &&
		!math.IsNaN(a.Min) && !math.IsInf(a.Min, 0) &&
		!math.IsNaN(a.Max) && !math.IsInf(a.Max, 0)
}

// at returns the i-th sample position on the axis, with exact endpoints.
func (a Axis) at(i int) float64 {
	if a.Steps == 1 || i == 0 {
		return a.Min
	}
	if i == a.Steps-1 {
		return a.Max
	}

	return a.Min + (a.Max-a.Min)*float64(i)/float64(a.Steps-1)
}

// options holds resolved sampling configuration.
type options struct {
	parallelism int
}

// Option customizes a Sample call.
type Option func(*options)

// WithParallelism shards evaluation across n goroutines.
// Panics if n < 1 (programmer error).
func WithParallelism(n int) Option {
	if n < 1 {
		panic("sample: WithParallelism: worker count must be ≥ 1")
	}

	return func(o *options) { o.parallelism = n }
}

// defaultOptions returns the zero-configuration sampling behavior.
func defaultOptions() options {
	return options{parallelism: DefaultParallelism}
}
