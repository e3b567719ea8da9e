package pareto

import (
	"tvgraph/graph"
	"tvgraph/vector"
)

type graphOptions struct {
	base float64
	mean *graph.Graph
}

// GraphOption configures a call to GraphFront.
type GraphOption func(*graphOptions)

func defaultGraphOptions() graphOptions {
	return graphOptions{base: 0}
}

// WithGraphBase sets the weight-escalation base: after each front is
// written, w += 1 when base == 0 (the default), otherwise w *= base.
func WithGraphBase(base float64) GraphOption {
	return func(o *graphOptions) { o.base = base }
}

// WithGraphMean overrides the computed mean with a caller-supplied one,
// skipping the (1/k)·Σ g_i pass entirely.
func WithGraphMean(mean *graph.Graph) GraphOption {
	return func(o *graphOptions) { o.mean = mean }
}

type vectorOptions struct {
	base float64
	mean *vector.Vector
}

// VectorOption configures a call to VectorFront.
type VectorOption func(*vectorOptions)

func defaultVectorOptions() vectorOptions {
	return vectorOptions{base: 0}
}

// WithVectorBase sets the weight-escalation base: after each front is
// written, w += 1 when base == 0 (the default), otherwise w *= base.
func WithVectorBase(base float64) VectorOption {
	return func(o *vectorOptions) { o.base = base }
}

// WithVectorMean overrides the computed mean with a caller-supplied one.
func WithVectorMean(mean *vector.Vector) VectorOption {
	return func(o *vectorOptions) { o.mean = mean }
}
