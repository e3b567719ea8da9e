package kernel

import (
	"tvgraph/flags"
	"tvgraph/graph"
)

// Normalize returns a new graph where result[s,t] = g[s,t] / (out_weight[s]
// * in_weight[t]); for an undirected graph in_weight equals out_weight.
// Edges whose normalizing denominator would be zero are skipped rather
// than producing NaN/Inf entries.
func Normalize(g *graph.Graph) (*graph.Graph, error) {
	outW, err := OutWeights(g)
	if err != nil {
		return nil, err
	}
	inW := outW
	if g.Directed() {
		inW, err = InWeights(g)
		if err != nil {
			return nil, err
		}
	}

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
		ow, ok1 := outW.Get(s)
		iw, ok2 := inW.Get(t)
		if !ok1 || !ok2 || ow == 0 || iw == 0 {
			return true
		}
		if err := out.Set(s, t, w/(ow*iw)); err != nil {
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
