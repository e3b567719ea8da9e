package traverse

import (
	"math"

	"tvgraph/flags"
	"tvgraph/graph"
	"tvgraph/internal/xerrors"
	"tvgraph/vector"
)

// DistanceCount returns the number of hops on the shortest unweighted path
// from source to target, or math.MaxUint64 if target is unreachable.
func DistanceCount(g *graph.Graph, source, target uint64) (uint64, error) {
	if source == target {
		return 0, nil
	}
	var (
		result  uint64
		reached bool
	)
	err := BFS(g, source, false, func(entry BfsEntry) (Signal, error) {
		if entry.To == target {
			result, reached = uint64(entry.Hops), true
			return Stop, nil
		}
		return Continue, nil
	})
	if err != nil {
		return 0, err
	}
	if !reached {
		return math.MaxUint64, nil
	}
	return result, nil
}

// DistanceWeight returns the minimal accumulated edge weight on a path
// from source to target, or +Inf if target is unreachable.
func DistanceWeight(g *graph.Graph, source, target uint64) (float64, error) {
	if source == target {
		return 0, nil
	}
	var (
		result  float64
		reached bool
	)
	err := BFS(g, source, true, func(entry BfsEntry) (Signal, error) {
		if entry.To == target {
			result, reached = entry.Weight, true
			return Stop, nil
		}
		return Continue, nil
	})
	if err != nil {
		return 0, err
	}
	if !reached {
		return math.Inf(1), nil
	}
	return result, nil
}

// AllDistancesCount returns, for every node reachable from source within
// maxHops hops, its hop distance from source (source itself included, at
// distance 0). The frontier's non-decreasing pop order means the first
// entry exceeding maxHops proves every remaining entry would too, so the
// walk stops there rather than exhausting the whole graph.
func AllDistancesCount(g *graph.Graph, source uint64, maxHops uint32) (*vector.Vector, error) {
	out, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	err = BFS(g, source, false, func(entry BfsEntry) (Signal, error) {
		if entry.Hops > maxHops {
			return Stop, nil
		}
		if err := out.Set(entry.To, float32(entry.Hops)); err != nil {
			return Continue, err
		}
		return Continue, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AllDistancesWeight returns, for every node reachable from source with
// accumulated weight at most maxWeight, its weighted distance from source.
func AllDistancesWeight(g *graph.Graph, source uint64, maxWeight float64) (*vector.Vector, error) {
	out, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}
	err = BFS(g, source, true, func(entry BfsEntry) (Signal, error) {
		if entry.Weight > maxWeight {
			return Stop, nil
		}
		if err := out.Set(entry.To, float32(entry.Weight)); err != nil {
			return Continue, err
		}
		return Continue, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AllDistancesGraph runs a BFS from every node that appears in g (per
// Graph.Occurrences) and assembles a graph of pairwise distances: result[s,
// t] is the hop count (useWeights false) or accumulated weight (useWeights
// true) from s to t. The diagonal is omitted.
func AllDistancesGraph(g *graph.Graph, useWeights bool) (*graph.Graph, error) {
	nodes, err := g.Occurrences()
	if err != nil {
		return nil, err
	}
	out, err := graph.New(
		graph.WithBitsSource(g.BitsSource()),
		graph.WithBitsTarget(g.BitsTarget()),
		graph.WithFlags(g.Flags()&^flags.ReadOnly),
	)
	if err != nil {
		return nil, err
	}

	var outerErr error
	nodes.Each(func(source uint64, _ float32) bool {
		err := BFS(g, source, useWeights, func(entry BfsEntry) (Signal, error) {
			if entry.To == source {
				return Continue, nil
			}
			metric := float32(entry.Hops)
			if useWeights {
				metric = float32(entry.Weight)
			}
			if err := out.Set(source, entry.To, metric); err != nil {
				return Continue, err
			}
			return Continue, nil
		})
		if err != nil {
			outerErr = err
			return false
		}
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	return out, nil
}

// ConnectedComponents labels every node appearing in g with an integer
// component id, two nodes sharing an id iff an undirected path connects
// them. Directed graphs are rejected: component membership is only
// well-defined for symmetric adjacency.
func ConnectedComponents(g *graph.Graph) (*vector.Vector, error) {
	if g.Directed() {
		return nil, xerrors.New(xerrors.KindUnsupported, "traverse: ConnectedComponents requires an undirected graph")
	}

	nodes, err := g.Occurrences()
	if err != nil {
		return nil, err
	}
	result, err := vector.New(vector.WithBits(g.BitsSource()))
	if err != nil {
		return nil, err
	}

	assigned := make(map[uint64]bool)
	var (
		componentID uint64
		outerErr    error
	)
	nodes.Each(func(source uint64, _ float32) bool {
		if assigned[source] {
			return true
		}
		id := componentID
		err := BFS(g, source, false, func(entry BfsEntry) (Signal, error) {
			assigned[entry.To] = true
			if err := result.Set(entry.To, float32(id)); err != nil {
				return Continue, err
			}
			return Continue, nil
		})
		if err != nil {
			outerErr = err
			return false
		}
		componentID++
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	return result, nil
}
