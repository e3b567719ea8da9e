package power

import (
	"math"
	"math/rand/v2"

	"tvgraph/graph"
	"tvgraph/kernel"
	"tvgraph/vector"
)

// Iterate estimates the dominant eigenvector of g by power iteration.
// It returns the converged vector and, if WithEigenvalue was passed,
// the Rayleigh-quotient eigenvalue estimate λ = v·(g·v).
func Iterate(g *graph.Graph, opts ...Option) (*vector.Vector, float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))
	v, err := buildInitial(g, o, rng)
	if err != nil {
		return nil, 0, err
	}

	for i := 0; i < o.numIterations; i++ {
		t, err := kernel.MulVector(g, v)
		if err != nil {
			return nil, 0, err
		}
		if err := normalize(t); err != nil {
			return nil, 0, err
		}
		if o.tolerance > 0 {
			delta, err := l2Distance(v, t)
			if err != nil {
				return nil, 0, err
			}
			if delta <= o.tolerance {
				v = t
				break
			}
		}
		v = t
	}

	var eigenvalue float64
	if o.returnEigenvalue {
		gv, err := kernel.MulVector(g, v)
		if err != nil {
			return nil, 0, err
		}
		eigenvalue = dot(v, gv)
	}
	return v, eigenvalue, nil
}

// buildInitial seeds one entry per node with at least one incoming
// directed edge: initialGuess's value where present and nonzero,
// otherwise a uniform [0,1) draw from rng.
func buildInitial(g *graph.Graph, o options, rng *rand.Rand) (*vector.Vector, error) {
	v, err := vector.New(vector.WithBits(g.BitsTarget()))
	if err != nil {
		return nil, err
	}
	seen := make(map[uint64]bool)
	var setErr error
	g.EachDirected(func(_, t uint64, _ float32) bool {
		if seen[t] {
			return true
		}
		seen[t] = true
		value := float32(rng.Float64())
		if o.initialGuess != nil {
			if gv, ok := o.initialGuess.Get(t); ok && gv != 0 {
				value = gv
			}
		}
		if err := v.Set(t, value); err != nil {
			setErr = err
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	return v, nil
}

// normalize divides every entry of v by its L2 norm in place. A zero norm
// divides by zero and the resulting Inf/NaN entries propagate; callers
// treat NaN as failure.
func normalize(v *vector.Vector) error {
	norm := l2Norm(v)
	return v.MulConst(float32(1 / norm))
}

func l2Norm(v *vector.Vector) float64 {
	var sumSq float64
	v.Each(func(_ uint64, w float32) bool {
		sumSq += float64(w) * float64(w)
		return true
	})
	return math.Sqrt(sumSq)
}

// l2Distance computes ‖a − b‖₂ over the union of both vectors' entries.
func l2Distance(a, b *vector.Vector) (float64, error) {
	diff, err := b.Clone()
	if err != nil {
		return 0, err
	}
	var subErr error
	a.Each(func(idx uint64, w float32) bool {
		if err := diff.Sub(idx, w); err != nil {
			subErr = err
			return false
		}
		return true
	})
	if subErr != nil {
		return 0, subErr
	}
	return l2Norm(diff), nil
}

func dot(a, b *vector.Vector) float64 {
	var sum float64
	a.Each(func(idx uint64, w float32) bool {
		bw, ok := b.Get(idx)
		if !ok {
			return true
		}
		sum += float64(w) * float64(bw)
		return true
	})
	return sum
}
