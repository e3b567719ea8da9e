package kernel

import (
	"tvgraph/graph"
	"tvgraph/vector"
)

// projection accumulates one scalar per node over every stored directed
// edge, using key(source, target) to pick which endpoint to credit and
// value(weight) to pick what to add.
func projection(g *graph.Graph, key func(s, t uint64) uint64, value func(w float32) float32) (*vector.Vector, error) {
	out, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	var addErr error
	g.EachDirected(func(s, t uint64, w float32) bool {
		if err := out.Add(key(s, t), value(w)); err != nil {
			addErr = err
			return false
		}
		return true
	})
	if addErr != nil {
		return nil, addErr
	}
	return out, nil
}

// OutDegrees counts, per source node, how many directed edge records
// leave it (an undirected mirror counts both directions, so a node's
// out-degree equals its total degree).
func OutDegrees(g *graph.Graph) (*vector.Vector, error) {
	return projection(g, func(s, _ uint64) uint64 { return s }, func(float32) float32 { return 1 })
}

// InDegrees counts, per target node, how many directed edge records
// arrive at it.
func InDegrees(g *graph.Graph) (*vector.Vector, error) {
	return projection(g, func(_, t uint64) uint64 { return t }, func(float32) float32 { return 1 })
}

// OutWeights sums, per source node, the weight of every directed edge
// record leaving it.
func OutWeights(g *graph.Graph) (*vector.Vector, error) {
	return projection(g, func(s, _ uint64) uint64 { return s }, func(w float32) float32 { return w })
}

// InWeights sums, per target node, the weight of every directed edge
// record arriving at it.
func InWeights(g *graph.Graph) (*vector.Vector, error) {
	return projection(g, func(_, t uint64) uint64 { return t }, func(w float32) float32 { return w })
}
