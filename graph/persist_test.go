package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"tvgraph/graph"
)

// TestPersistence_RoundTrip covers E6: build, save, load, compare edge for
// edge.
func TestPersistence_RoundTrip(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(4), graph.WithBitsTarget(4))
	require.NoError(t, err)
	edges := [][3]uint64{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}, {7, 8, 0}}
	weights := []float32{1.5, 2.5, 3.5, 4.5}
	for i, e := range edges {
		require.NoError(t, g.Set(e[0], e[1], weights[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))

	loaded, err := graph.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.BitsSource(), loaded.BitsSource())
	require.Equal(t, g.BitsTarget(), loaded.BitsTarget())
	require.Equal(t, g.NumEdges(), loaded.NumEdges())
	require.Equal(t, g.Directed(), loaded.Directed())

	for i, e := range edges {
		w, ok := loaded.Get(e[0], e[1])
		require.True(t, ok)
		require.Equal(t, weights[i], w)
		// mirror side, since this graph is undirected
		w, ok = loaded.Get(e[1], e[0])
		require.True(t, ok)
		require.Equal(t, weights[i], w)
	}
}

func TestPersistence_DirectedRoundTrip(t *testing.T) {
	g, err := graph.New(graph.WithBitsSource(4), graph.WithBitsTarget(4), graph.WithDirected())
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, 9))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf))
	loaded, err := graph.Load(&buf)
	require.NoError(t, err)

	require.True(t, loaded.Directed())
	require.True(t, loaded.Has(1, 2))
	require.False(t, loaded.Has(2, 1))
	require.Equal(t, 1, loaded.NumEdges())
}

func TestPersistence_RejectsBadTag(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 20))
	_, err := graph.Load(&buf)
	require.Error(t, err)
}
