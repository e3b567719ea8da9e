package graph

import (
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
)

// MulConst scales every stored weight by c in place, bumping revision
// exactly once. c == 1 is a no-op, matching vector.Vector.MulConst and
// the original source's early-return behavior: scaling by one is not a
// mutation.
func (g *Graph) MulConst(c float32) error {
	if c == 1 {
		return nil
	}
	if g.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "graph: mul_const on read-only container")
	}
	for i := range g.buckets {
		g.buckets[i].ScaleInPlace(c, g.collapses)
	}
	count := 0
	g.EachEdge(func(uint64, uint64, float32) bool {
		count++
		return true
	})
	g.numEdges = count
	g.revision++
	g.invalidateOccurrences()
	g.optimize--
	if g.optimize <= 0 {
		g.rehash()
	}
	return nil
}
