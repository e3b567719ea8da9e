package kernel

import (
	"tvgraph/graph"
	"tvgraph/vector"
)

// anomaly implements the shared shape of DegreeAnomalies/WeightAnomalies:
// temp[s] = sum_{t:(s,t)∈E} base(t); result[s] =
// base(s) - temp[s]/base(s), computed only for nodes that are the
// source of at least one edge (so an out-degree base(s) is nonzero
// there; an out-weight base(s) can still be zero).
func anomaly(g *graph.Graph, base *vector.Vector) (*vector.Vector, error) {
	temp, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	var addErr error
	g.EachDirected(func(s, t uint64, _ float32) bool {
		bt, _ := base.Get(t)
		if err := temp.Add(s, bt); err != nil {
			addErr = err
			return false
		}
		return true
	})
	if addErr != nil {
		return nil, addErr
	}

	result, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	var setErr error
	temp.Each(func(s uint64, tv float32) bool {
		bs, _ := base.Get(s)
		if err := result.Set(s, bs-tv/bs); err != nil {
			setErr = err
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	return result, nil
}

// DegreeAnomalies computes, per source node s, its out-degree minus the
// mean out-degree of its out-neighbors.
func DegreeAnomalies(g *graph.Graph) (*vector.Vector, error) {
	outDeg, err := OutDegrees(g)
	if err != nil {
		return nil, err
	}
	return anomaly(g, outDeg)
}

// WeightAnomalies computes, per source node s, its out-weight minus the
// summed out-weights of its out-neighbors divided by s's own
// out-weight.
func WeightAnomalies(g *graph.Graph) (*vector.Vector, error) {
	outW, err := OutWeights(g)
	if err != nil {
		return nil, err
	}
	return anomaly(g, outW)
}
