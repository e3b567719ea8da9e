package power

import "tvgraph/vector"

// options holds Iterate's tunables, all overridable via Option.
type options struct {
	initialGuess     *vector.Vector
	numIterations    int
	tolerance        float64
	returnEigenvalue bool
	seed             uint64
}

// Option configures a call to Iterate.
type Option func(*options)

func defaultOptions() options {
	return options{
		numIterations: 100,
		tolerance:     0,
		seed:          1,
	}
}

// WithInitialGuess seeds the starting vector: a node present and nonzero
// in guess keeps that value, every other node eligible for inclusion (one
// with at least one incoming directed edge) draws a uniform [0,1) random
// value instead.
func WithInitialGuess(guess *vector.Vector) Option {
	return func(o *options) { o.initialGuess = guess }
}

// WithNumIterations bounds the number of g·v steps (default 100).
func WithNumIterations(n int) Option {
	return func(o *options) { o.numIterations = n }
}

// WithTolerance enables early stopping: once ‖v − t‖₂ ≤ tolerance after a
// step, Iterate stops iterating (it still computes the eigenvalue if
// WithEigenvalue was passed). tolerance <= 0 disables early stopping
// (the default).
func WithTolerance(tolerance float64) Option {
	return func(o *options) { o.tolerance = tolerance }
}

// WithEigenvalue requests the Rayleigh-quotient estimate λ = v·(g·v) be
// computed and returned alongside the converged vector.
func WithEigenvalue(enabled bool) Option {
	return func(o *options) { o.returnEigenvalue = enabled }
}

// WithSeed fixes the seed of the per-call deterministic random source
// used to draw unguessed starting values (default 1). Iterate never
// touches the global math/rand/v2 source, so two calls with the same
// seed and the same graph always produce the same result.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}
