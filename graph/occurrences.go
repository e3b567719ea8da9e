package graph

import (
	"tvgraph/flags"
	"tvgraph/vector"
)

// Occurrences returns a READONLY vector with one entry per node that
// is the source of at least one stored edge record, weighted by the
// number of records leaving it. For an undirected graph both mirror
// directions are stored, so this is every node with an incident edge,
// weighted by its degree; for a directed graph a node with only
// incoming edges has no entry.
// The result is memoized and invalidated by comparing against
// g.Revision(), so repeated calls between mutations are free.
func (g *Graph) Occurrences() (*vector.Vector, error) {
	if g.occurrencesSeen && g.occurrencesRev == g.revision {
		return g.occurrences, nil
	}
	out, err := vector.New(vector.WithBits(g.bitsSource), vector.WithFlags(flags.Positive))
	if err != nil {
		return nil, err
	}
	var addErr error
	g.EachDirected(func(s, _ uint64, _ float32) bool {
		if err := out.Add(s, 1); err != nil {
			addErr = err
			return false
		}
		return true
	})
	if addErr != nil {
		return nil, addErr
	}
	out.MarkReadOnly()
	g.occurrences = out
	g.occurrencesRev = g.revision
	g.occurrencesSeen = true
	return out, nil
}
