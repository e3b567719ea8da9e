package graph

import "tvgraph/flags"

// defaultEpsilon matches vector's default collapse threshold.
const defaultEpsilon = 1e-6

type options struct {
	bitsSource uint
	bitsTarget uint
	flags      flags.Flags
	eps        float32
}

// Option configures a Graph at construction time.
type Option func(*options)

// WithBitsSource sets the initial source-axis table width; must be in
// [0, 31].
func WithBitsSource(bits uint) Option { return func(o *options) { o.bitsSource = bits } }

// WithBitsTarget sets the initial target-axis table width; must be in
// [0, 31].
func WithBitsTarget(bits uint) Option { return func(o *options) { o.bitsTarget = bits } }

// WithFlags sets the container's flag bitmask. Positive implies
// Nonzero; Directed suppresses the mirror-edge invariant.
func WithFlags(f flags.Flags) Option {
	return func(o *options) { o.flags = flags.Normalize(f) }
}

// WithDirected is shorthand for WithFlags(flags.Directed) composed with
// whatever flags are already set.
func WithDirected() Option {
	return func(o *options) { o.flags |= flags.Directed }
}

// WithEpsilon overrides the eps-collapse threshold.
func WithEpsilon(eps float32) Option {
	return func(o *options) { o.eps = eps }
}

func defaultOptions() options {
	return options{bitsSource: 0, bitsTarget: 0, flags: 0, eps: defaultEpsilon}
}
