package pareto

import (
	"tvgraph/flags"
	"tvgraph/graph"
	"tvgraph/internal/xerrors"
	"tvgraph/kernel"
)

// GraphFront computes the Pareto edge-stability front across snapshots:
// the mean graph m = (1/k)·Σ snapshots, value1 = -m[e],
// value2 = Σ_i (snapshots[i][e] - m[e])², and the resulting successive
// fronts written into a POSITIVE-flagged result graph. All snapshots (and
// a WithGraphMean override, if given) must agree on the DIRECTED flag.
func GraphFront(snapshots []*graph.Graph, opts ...GraphOption) (*graph.Graph, error) {
	if len(snapshots) == 0 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "pareto: GraphFront requires at least one snapshot")
	}
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}

	directed := snapshots[0].Directed()
	for _, g := range snapshots[1:] {
		if g.Directed() != directed {
			return nil, xerrors.New(xerrors.KindInvalidArgument, "pareto: GraphFront requires matching Directed flags across snapshots")
		}
	}
	if o.mean != nil && o.mean.Directed() != directed {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "pareto: GraphFront mean override must match snapshots' Directed flag")
	}

	mean := o.mean
	if mean == nil {
		var err error
		mean, err = meanGraph(snapshots, directed)
		if err != nil {
			return nil, err
		}
	}

	var (
		candidates       []candidate
		sources, targets []uint64
	)
	mean.EachEdge(func(s, t uint64, mw float32) bool {
		var variance float64
		for _, g := range snapshots {
			w, _ := g.Get(s, t)
			d := float64(w) - float64(mw)
			variance += d * d
		}
		candidates = append(candidates, candidate{value1: -float64(mw), value2: variance})
		sources = append(sources, s)
		targets = append(targets, t)
		return true
	})

	result, err := graph.New(
		graph.WithBitsSource(snapshots[0].BitsSource()),
		graph.WithBitsTarget(snapshots[0].BitsTarget()),
		graph.WithFlags(flags.Positive|boolDirected(directed)),
	)
	if err != nil {
		return nil, err
	}
	err = sweepFronts(candidates, o.base, func(index int, weight float32) error {
		return result.Set(sources[index], targets[index], weight)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func boolDirected(directed bool) flags.Flags {
	if directed {
		return flags.Directed
	}
	return 0
}

func meanGraph(snapshots []*graph.Graph, directed bool) (*graph.Graph, error) {
	sum, err := graph.New(
		graph.WithBitsSource(snapshots[0].BitsSource()),
		graph.WithBitsTarget(snapshots[0].BitsTarget()),
		graph.WithFlags(boolDirected(directed)),
	)
	if err != nil {
		return nil, err
	}
	for _, g := range snapshots {
		if err := kernel.AddGraph(sum, g, 1); err != nil {
			return nil, err
		}
	}
	if err := sum.MulConst(float32(1) / float32(len(snapshots))); err != nil {
		return nil, err
	}
	return sum, nil
}
