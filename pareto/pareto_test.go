package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tvgraph/flags"
	"tvgraph/graph"
	"tvgraph/pareto"
	"tvgraph/vector"
)

func buildDirectedTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 2))
	require.NoError(t, g.Set(1, 2, 2))
	require.NoError(t, g.Set(2, 0, 2))
	return g
}

// TestGraphFront_IdenticalCopiesAllWeightOne covers invariant 11: k copies
// of a single graph have variance 0 on every edge, and here every edge
// also shares the same mean, so the entire sweep ties together and is
// selected as one front at weight 1.
func TestGraphFront_IdenticalCopiesAllWeightOne(t *testing.T) {
	g := buildDirectedTriangle(t)
	snapshots := []*graph.Graph{g, g, g}

	front, err := pareto.GraphFront(snapshots)
	require.NoError(t, err)
	require.Equal(t, 3, front.NumEdges())

	front.EachEdge(func(s, tgt uint64, w float32) bool {
		require.Equal(t, float32(1), w)
		return true
	})
}

// TestGraphFront_DistinctMeansSplitAcrossSweeps: two edges with
// different means never tie on value1, so only the first one scanned
// (the edge with the larger mean, since value1 = -mean sorts it first)
// clears the first sweep; the other is picked up alone on the next
// sweep, at the next weight.
func TestGraphFront_DistinctMeansSplitAcrossSweeps(t *testing.T) {
	g1, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g1.Set(0, 1, 5))
	require.NoError(t, g1.Set(0, 2, 1))

	g2, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g2.Set(0, 1, 5))
	require.NoError(t, g2.Set(0, 2, 5))

	g3, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g3.Set(0, 1, 5))
	require.NoError(t, g3.Set(0, 2, 1))

	front, err := pareto.GraphFront([]*graph.Graph{g1, g2, g3})
	require.NoError(t, err)
	require.Equal(t, 2, front.NumEdges())

	w1, ok := front.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, float32(1), w1) // mean 5, variance 0: sole first-sweep pick

	w2, ok := front.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, float32(2), w2) // mean 7/3, variance ~10.67: deferred to sweep 2
}

// TestGraphFront_SharedMeanSplitsAcrossSweeps: two edges with the SAME
// mean (so the same value1) genuinely compete within one group; the
// lower-variance edge wins the first sweep and the other is deferred.
func TestGraphFront_SharedMeanSplitsAcrossSweeps(t *testing.T) {
	g1, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g1.Set(0, 1, 5))
	require.NoError(t, g1.Set(0, 2, 4))

	g2, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g2.Set(0, 1, 5))
	require.NoError(t, g2.Set(0, 2, 6))

	g3, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g3.Set(0, 1, 5))
	require.NoError(t, g3.Set(0, 2, 5))

	front, err := pareto.GraphFront([]*graph.Graph{g1, g2, g3})
	require.NoError(t, err)
	require.Equal(t, 2, front.NumEdges())

	w1, ok := front.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, float32(1), w1) // mean 5, variance 0: wins its group in sweep 1

	w2, ok := front.Get(0, 2)
	require.True(t, ok)
	require.Equal(t, float32(2), w2) // mean 5, variance 2: same group, deferred to sweep 2
}

func TestGraphFront_RejectsMismatchedDirectedFlag(t *testing.T) {
	directed, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	undirected, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3))
	require.NoError(t, err)

	_, err = pareto.GraphFront([]*graph.Graph{directed, undirected})
	require.Error(t, err)
}

func TestGraphFront_ResultIsPositiveFlagged(t *testing.T) {
	g := buildDirectedTriangle(t)
	front, err := pareto.GraphFront([]*graph.Graph{g})
	require.NoError(t, err)
	require.True(t, front.Flags().Has(flags.Positive))
}

func TestVectorFront_IdenticalCopiesAllWeightOne(t *testing.T) {
	v, err := vector.New(vector.WithBits(3))
	require.NoError(t, err)
	require.NoError(t, v.Set(0, 2))
	require.NoError(t, v.Set(1, 2))

	front, err := pareto.VectorFront([]*vector.Vector{v, v})
	require.NoError(t, err)
	require.Equal(t, 2, front.Len())
	front.Each(func(idx uint64, w float32) bool {
		require.Equal(t, float32(1), w)
		return true
	})
}

func TestVectorFront_MultiplicativeBaseWeighting(t *testing.T) {
	// idx0 and idx1 share the same mean (5) across both snapshots, so
	// they genuinely compete within one value1 group: idx0 has zero
	// variance and wins sweep 1, idx1 is deferred to sweep 2.
	v1, err := vector.New(vector.WithBits(3))
	require.NoError(t, err)
	require.NoError(t, v1.Set(0, 5))
	require.NoError(t, v1.Set(1, 4))

	v2, err := vector.New(vector.WithBits(3))
	require.NoError(t, err)
	require.NoError(t, v2.Set(0, 5))
	require.NoError(t, v2.Set(1, 6))

	front, err := pareto.VectorFront([]*vector.Vector{v1, v2}, pareto.WithVectorBase(2))
	require.NoError(t, err)

	w0, ok := front.Get(0)
	require.True(t, ok)
	require.Equal(t, float32(1), w0) // variance 0: first sweep, w starts at 1

	w1, ok := front.Get(1)
	require.True(t, ok)
	require.Equal(t, float32(2), w1) // second sweep: w *= base = 1*2
}
