package kernel

import (
	"tvgraph/graph"
	"tvgraph/internal/xerrors"
	"tvgraph/vector"
)

// AddGraph adds w times every edge of g into out: for each stored
// (s, t, weight) in g, out.Add(s, t, w*weight). g and out must agree on
// the Directed flag; undirected mirroring is handled by Graph.Add
// itself.
func AddGraph(out, g *graph.Graph, w float32) error {
	if out.Directed() != g.Directed() {
		return xerrors.New(xerrors.KindInvalidArgument, "kernel: AddGraph requires matching Directed flags")
	}
	var addErr error
	g.EachEdge(func(s, t uint64, weight float32) bool {
		if err := out.Add(s, t, w*weight); err != nil {
			addErr = err
			return false
		}
		return true
	})
	return addErr
}

// SubGraph subtracts w times every edge of g from out.
func SubGraph(out, g *graph.Graph, w float32) error {
	return AddGraph(out, g, -w)
}

// MulVector computes u where u[s] = sum_t g[s,t]*v[t], using the
// two-bucket merge iterator's spirit: for every stored directed edge
// (s, t, weight) it fetches v[t] in O(1) amortized via Vector.Get and
// accumulates into u[s]. A missing v[t] contributes zero.
func MulVector(g *graph.Graph, v *vector.Vector) (*vector.Vector, error) {
	out, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	var addErr error
	g.EachDirected(func(s, t uint64, weight float32) bool {
		vt, ok := v.Get(t)
		if !ok {
			return true
		}
		if err := out.Add(s, weight*vt); err != nil {
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

// SumWeights returns the double-precision sum of every stored directed
// weight in g: an undirected edge is counted on both its mirrored
// sides, so a triangle with weights 2, 3, 4 sums to 18.0, not 9.0.
func SumWeights(g *graph.Graph) float64 {
	var sum float64
	g.EachDirected(func(_, _ uint64, w float32) bool {
		sum += float64(w)
		return true
	})
	return sum
}
