package traverse_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"tvgraph/graph"
	"tvgraph/traverse"
)

func buildPath(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.WithBitsSource(4), graph.WithBitsTarget(4))
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.Set(uint64(i), uint64(i+1), 1))
	}
	return g
}

func TestBFS_VisitsEachNodeAtMostOnceInNonDecreasingOrder(t *testing.T) {
	g := buildPath(t, 5)
	var order []traverse.BfsEntry
	err := traverse.BFS(g, 0, false, func(e traverse.BfsEntry) (traverse.Signal, error) {
		order = append(order, e)
		return traverse.Continue, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, len(order))

	seen := make(map[uint64]bool)
	var lastHops uint32
	for i, e := range order {
		require.False(t, seen[e.To], "node visited more than once")
		seen[e.To] = true
		if i > 0 {
			require.GreaterOrEqual(t, e.Hops, lastHops)
		}
		lastHops = e.Hops
	}
	require.Equal(t, uint32(0), order[0].Hops)
	require.Equal(t, traverse.Root, order[0].From)
}

// TestBFS_ShortestHops covers E3: path 0-1-2-3-4.
func TestBFS_ShortestHops(t *testing.T) {
	g := buildPath(t, 5)

	count, err := traverse.DistanceCount(g, 0, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(4), count)

	weight, err := traverse.DistanceWeight(g, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 4.0, weight)

	all, err := traverse.AllDistancesCount(g, 0, 2)
	require.NoError(t, err)
	want := map[uint64]float32{0: 0, 1: 1, 2: 2}
	got := make(map[uint64]float32)
	all.Each(func(idx uint64, w float32) bool {
		got[idx] = w
		return true
	})
	require.Equal(t, want, got)
}

func TestDistanceCount_SameNodeIsZero(t *testing.T) {
	g := buildPath(t, 3)
	d, err := traverse.DistanceCount(g, 1, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(0), d)
}

func TestDistanceCount_UnreachableSentinel(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(4), graph.WithBitsTarget(4), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 1))

	d, err := traverse.DistanceCount(g, 1, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), d)
}

func TestBFS_CallbackErrorAborts(t *testing.T) {
	g := buildPath(t, 3)
	boom := errors.New("boom")
	err := traverse.BFS(g, 0, false, func(traverse.BfsEntry) (traverse.Signal, error) {
		return traverse.Continue, boom
	})
	require.ErrorIs(t, err, boom)
}

// TestConnectedComponents covers invariant 10 and E2's triangle case.
func TestConnectedComponents(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 2))
	require.NoError(t, g.Set(1, 2, 3))
	require.NoError(t, g.Set(0, 2, 4))
	require.NoError(t, g.Set(10, 11, 1)) // a separate component

	comp, err := traverse.ConnectedComponents(g)
	require.NoError(t, err)

	c0, _ := comp.Get(0)
	c1, _ := comp.Get(1)
	c2, _ := comp.Get(2)
	require.Equal(t, c0, c1)
	require.Equal(t, c0, c2)

	c10, _ := comp.Get(10)
	c11, _ := comp.Get(11)
	require.Equal(t, c10, c11)
	require.NotEqual(t, c0, c10)
}

func TestConnectedComponents_RejectsDirected(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithDirected())
	require.NoError(t, err)
	_, err = traverse.ConnectedComponents(g)
	require.Error(t, err)
}

func TestAllDistancesGraph(t *testing.T) {
	g := buildPath(t, 4)
	out, err := traverse.AllDistancesGraph(g, false)
	require.NoError(t, err)
	w, ok := out.Get(0, 3)
	require.True(t, ok)
	require.Equal(t, float32(3), w)
}
