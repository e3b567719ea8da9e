package kernel

import (
	"tvgraph/flags"
	"tvgraph/graph"
	"tvgraph/vector"
)

// FilterNodes returns a new graph containing exactly the edges of g
// whose both endpoints are present in nodes (nodes is treated as a set
// via Vector.Has).
func FilterNodes(g *graph.Graph, nodes *vector.Vector) (*graph.Graph, error) {
	out, err := graph.New(
		graph.WithBitsSource(g.BitsSource()),
		graph.WithBitsTarget(g.BitsTarget()),
		graph.WithFlags(g.Flags()&^flags.ReadOnly),
	)
	if err != nil {
		return nil, err
	}
	var setErr error
	g.EachEdge(func(s, t uint64, w float32) bool {
		if !nodes.Has(s) || !nodes.Has(t) {
			return true
		}
		if err := out.Set(s, t, w); err != nil {
			setErr = err
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	return out, nil
}
