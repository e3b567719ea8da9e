package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tvgraph/flags"
	"tvgraph/graph"
)

func TestGraph_MulConst(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3), graph.WithFlags(flags.Nonzero), graph.WithEpsilon(0.1))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 1))
	require.NoError(t, g.Set(1, 2, 0.05)) // |0.05| <= eps, so this Set collapses to a deletion
	require.Equal(t, 1, g.NumEdges())

	require.NoError(t, g.MulConst(2))
	w, ok := g.Get(0, 1)
	require.True(t, ok)
	require.Equal(t, float32(2), w)
	// the collapsed edge was never stored, and scaling does not bring it back
	require.False(t, g.Has(1, 2))
	require.Equal(t, 1, g.NumEdges())
}

func TestGraph_MulConst_One_IsNoOp(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(3), graph.WithBitsTarget(3))
	require.NoError(t, err)
	require.NoError(t, g.Set(0, 1, 3))
	rev := g.Revision()

	require.NoError(t, g.MulConst(1))
	require.Equal(t, rev, g.Revision())
}
