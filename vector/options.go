package vector

import "tvgraph/flags"

// defaultEpsilon matches the original source's default collapse
// threshold for NONZERO/POSITIVE containers.
const defaultEpsilon = 1e-6

// options collects the arguments New validates before allocating a
// Vector. It is never exposed directly; callers build it through Option
// values, mirroring core.GraphOption's apply-then-validate shape.
type options struct {
	bits  uint
	flags flags.Flags
	eps   float32
}

// Option configures a Vector at construction time.
type Option func(*options)

// WithBits sets the initial table width: the table holds 2^bits
// buckets. Must be in [0, 31]; New rejects out-of-range values with an
// InvalidArgument-kind error rather than panicking.
func WithBits(bits uint) Option {
	return func(o *options) { o.bits = bits }
}

// WithFlags sets the container's flag bitmask. Positive implies Nonzero
// regardless of whether the caller also passed Nonzero explicitly.
func WithFlags(f flags.Flags) Option {
	return func(o *options) { o.flags = flags.Normalize(f) }
}

// WithEpsilon overrides the default eps-collapse threshold used by the
// NONZERO/POSITIVE flag policy.
func WithEpsilon(eps float32) Option {
	return func(o *options) { o.eps = eps }
}

func defaultOptions() options {
	return options{bits: 0, flags: 0, eps: defaultEpsilon}
}
