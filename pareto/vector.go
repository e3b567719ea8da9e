package pareto

import (
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
	"tvgraph/vector"
)

// VectorFront computes the Pareto index-stability front across
// snapshots, the vector analogue of GraphFront.
func VectorFront(snapshots []*vector.Vector, opts ...VectorOption) (*vector.Vector, error) {
	if len(snapshots) == 0 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "pareto: VectorFront requires at least one snapshot")
	}
	o := defaultVectorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mean := o.mean
	if mean == nil {
		var err error
		mean, err = meanVector(snapshots)
		if err != nil {
			return nil, err
		}
	}

	var (
		candidates []candidate
		indices    []uint64
	)
	mean.Each(func(idx uint64, mw float32) bool {
		var variance float64
		for _, v := range snapshots {
			w, _ := v.Get(idx)
			d := float64(w) - float64(mw)
			variance += d * d
		}
		candidates = append(candidates, candidate{value1: -float64(mw), value2: variance})
		indices = append(indices, idx)
		return true
	})

	result, err := vector.New(
		vector.WithBits(snapshots[0].Bits()),
		vector.WithFlags(flags.Positive),
	)
	if err != nil {
		return nil, err
	}
	err = sweepFronts(candidates, o.base, func(index int, weight float32) error {
		return result.Set(indices[index], weight)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func meanVector(snapshots []*vector.Vector) (*vector.Vector, error) {
	sum, err := vector.New(vector.WithBits(snapshots[0].Bits()))
	if err != nil {
		return nil, err
	}
	for _, v := range snapshots {
		var addErr error
		v.Each(func(idx uint64, w float32) bool {
			if err := sum.Add(idx, w); err != nil {
				addErr = err
				return false
			}
			return true
		})
		if addErr != nil {
			return nil, addErr
		}
	}
	if err := sum.MulConst(float32(1) / float32(len(snapshots))); err != nil {
		return nil, err
	}
	return sum, nil
}
