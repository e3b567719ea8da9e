package graph

import (
	"math"
	"sync/atomic"

	"tvgraph/bucket"
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
	"tvgraph/vector"
)

// initialOptimize mirrors vector.initialOptimize: the mutation
// countdown a freshly allocated or resized Graph starts with.
const initialOptimize = 256

// Graph is the 2-D sparse container keyed by the low bitsSource/
// bitsTarget bits of (source, target), backed by a power-of-two table
// of bucket.Bucket2. Absent the Directed flag, every stored (s, t) with
// s != t has a mirrored (t, s) entry of the same weight; the diagonal
// (s == t) is stored once either way.
type Graph struct {
	bitsSource uint
	bitsTarget uint
	flags      flags.Flags
	eps        float32
	revision   uint64
	optimize   int
	refcount   int32

	buckets  []bucket.Bucket2
	numEdges int // undirected pairs counted once

	tvg   Timeline
	cache CacheList

	occurrences     *vector.Vector
	occurrencesRev  uint64
	occurrencesSeen bool
}

// New allocates a Graph with refcount 1, revision 0, and zero buckets
// sized 2^(bitsSource+bitsTarget). Rejects out-of-range bit widths or
// unrecognized flag bits.
func New(opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.bitsSource > 31 || o.bitsTarget > 31 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "graph: bits out of range [0,31]")
	}
	if !flags.Known(o.flags) {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "graph: unknown flag bit")
	}
	g := &Graph{
		bitsSource: o.bitsSource,
		bitsTarget: o.bitsTarget,
		flags:      o.flags,
		eps:        o.eps,
		refcount:   1,
		optimize:   initialOptimize,
		buckets:    make([]bucket.Bucket2, 1<<(o.bitsSource+o.bitsTarget)),
	}
	return g, nil
}

// BitsSource reports the current source-axis table width.
func (g *Graph) BitsSource() uint { return g.bitsSource }

// BitsTarget reports the current target-axis table width.
func (g *Graph) BitsTarget() uint { return g.bitsTarget }

// Flags reports the container's flag bitmask.
func (g *Graph) Flags() flags.Flags { return g.flags }

// Directed reports whether the Directed flag is set (no mirror-edge
// invariant).
func (g *Graph) Directed() bool { return g.flags.Has(flags.Directed) }

// Epsilon reports the eps-collapse threshold.
func (g *Graph) Epsilon() float32 { return g.eps }

// Revision reports the monotonic mutation counter.
func (g *Graph) Revision() uint64 { return g.revision }

// NumEdges reports the exact edge count in O(1); an undirected mirror
// pair counts once.
func (g *Graph) NumEdges() int { return g.numEdges }

// Grab increments the refcount and returns g.
func (g *Graph) Grab() *Graph {
	atomic.AddInt32(&g.refcount, 1)
	return g
}

// RefCount reports the current reference count.
func (g *Graph) RefCount() int32 { return atomic.LoadInt32(&g.refcount) }

func (g *Graph) numSource() int { return 1 << g.bitsSource }
func (g *Graph) numTarget() int { return 1 << g.bitsTarget }

func (g *Graph) bucketIndex(source, target uint64) int {
	maskS := uint64(g.numSource()) - 1
	maskT := uint64(g.numTarget()) - 1
	return int(source&maskS) | int(target&maskT)*g.numSource()
}

func (g *Graph) collapses(weight float32) bool {
	switch {
	case g.flags.Has(flags.Positive):
		return weight <= g.eps
	case g.flags.Has(flags.Nonzero):
		return float32(math.Abs(float64(weight))) <= g.eps
	default:
		return false
	}
}

// Has reports whether edge (source, target) is stored.
func (g *Graph) Has(source, target uint64) bool {
	_, ok := g.buckets[g.bucketIndex(source, target)].Get(source, target)
	return ok
}

// Get returns the weight of edge (source, target) and whether it was
// present.
func (g *Graph) Get(source, target uint64) (float32, bool) {
	return g.buckets[g.bucketIndex(source, target)].Get(source, target)
}

// rawSet/rawDelete operate on a single (source, target) slot without
// the undirected mirror, flag policy, or revision bump — the building
// block both the single-edge mutators and the mirror-aware mutators
// below compose.

func (g *Graph) rawSet(source, target uint64, weight float32) (existed bool, err error) {
	b := &g.buckets[g.bucketIndex(source, target)]
	_, existed = b.Get(source, target)
	if g.collapses(weight) {
		if existed {
			_, _ = b.Delete(source, target)
		}
		return existed, nil
	}
	if err := b.Set(source, target, weight); err != nil {
		return existed, err
	}
	return existed, nil
}

func (g *Graph) rawCollapsed(source, target uint64) bool {
	b := &g.buckets[g.bucketIndex(source, target)]
	_, ok := b.Get(source, target)
	return !ok
}

func (g *Graph) rawDelete(source, target uint64) bool {
	b := &g.buckets[g.bucketIndex(source, target)]
	_, ok := b.Delete(source, target)
	return ok
}

// mirrorPairs reports the slots a mutation of (s, t) must touch:
// just (s, t) for directed graphs or self-loops, both (s, t) and (t, s)
// otherwise.
func (g *Graph) mirrorPairs(source, target uint64) [][2]uint64 {
	if g.Directed() || source == target {
		return [][2]uint64{{source, target}}
	}
	return [][2]uint64{{source, target}, {target, source}}
}

// Set stores weight for edge (source, target), mirroring to (target,
// source) for undirected graphs with source != target. Both sides
// succeed or both are rolled back.
func (g *Graph) Set(source, target uint64, weight float32) error {
	return g.mutateMirrored(source, target, func(uint64, uint64) (float32, bool) { return weight, true })
}

// Add adds delta to edge (source, target) (absent treated as zero) and
// stores the result, mirrored per Set's rules.
func (g *Graph) Add(source, target uint64, delta float32) error {
	return g.mutateMirrored(source, target, func(s, t uint64) (float32, bool) {
		cur, _ := g.buckets[g.bucketIndex(s, t)].Get(s, t)
		return cur + delta, true
	})
}

// Sub subtracts delta from edge (source, target).
func (g *Graph) Sub(source, target uint64, delta float32) error {
	return g.Add(source, target, -delta)
}

// Del removes edge (source, target) and its mirror if present. No-op
// (no revision bump) if absent in both slots.
func (g *Graph) Del(source, target uint64) error {
	if g.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "graph: delete on read-only container")
	}
	pairs := g.mirrorPairs(source, target)
	removed := false
	for _, p := range pairs {
		if g.rawDelete(p[0], p[1]) {
			removed = true
		}
	}
	if !removed {
		return nil
	}
	g.numEdges--
	g.afterMutation()
	return nil
}

// mutateMirrored applies compute's result to every slot mirrorPairs
// names for (source, target). If any mirrored write fails partway
// through, the already-written sides are rolled back so the graph is
// left exactly as it was: either both sides succeed or both are
// rolled back.
func (g *Graph) mutateMirrored(source, target uint64, compute func(s, t uint64) (float32, bool)) error {
	if g.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "graph: mutation on read-only container")
	}
	pairs := g.mirrorPairs(source, target)

	type priorState struct {
		source, target uint64
		existed        bool
		weight         float32
	}
	prior := make([]priorState, len(pairs))
	for i, p := range pairs {
		w, ok := g.buckets[g.bucketIndex(p[0], p[1])].Get(p[0], p[1])
		prior[i] = priorState{p[0], p[1], ok, w}
	}

	wasNewEdge := !prior[0].existed

	done := 0
	for i, p := range pairs {
		newWeight, _ := compute(p[0], p[1])
		if _, err := g.rawSet(p[0], p[1], newWeight); err != nil {
			for j := 0; j < done; j++ {
				ps := prior[j]
				if ps.existed {
					_, _ = g.rawSet(ps.source, ps.target, ps.weight)
				} else {
					g.rawDelete(ps.source, ps.target)
				}
			}
			return err
		}
		done = i + 1
	}

	nowAbsent := g.rawCollapsed(pairs[0][0], pairs[0][1])
	switch {
	case wasNewEdge && !nowAbsent:
		g.numEdges++
	case !wasNewEdge && nowAbsent:
		g.numEdges--
	}
	g.afterMutation()
	return nil
}

func (g *Graph) afterMutation() {
	g.revision++
	g.invalidateOccurrences()
	g.optimize--
	if g.optimize <= 0 {
		g.rehash()
	}
}

func (g *Graph) invalidateOccurrences() {
	// Occurrences() recomputes lazily by comparing g.revision against
	// occurrencesRev; nothing to do here beyond letting the counters
	// drift out of sync.
}

// EachDirected walks every stored (source, target, weight) triple in
// bucket order, including both sides of an undirected mirror pair.
// Stops early if fn returns false.
func (g *Graph) EachDirected(fn func(source, target uint64, weight float32) bool) {
	for i := range g.buckets {
		stop := false
		g.buckets[i].Each(func(e bucket.Entry2) bool {
			if !fn(e.Source, e.Target, e.Weight) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// EachEdge walks every edge once: for undirected graphs, only the
// (source <= target) side of a mirror pair (or the lone diagonal
// entry); for directed graphs, every stored entry.
func (g *Graph) EachEdge(fn func(source, target uint64, weight float32) bool) {
	g.EachDirected(func(s, t uint64, w float32) bool {
		if !g.Directed() && s > t {
			return true
		}
		return fn(s, t, w)
	})
}

// EachAdjacent walks every stored (source, t, weight) triple leaving
// source. Because the bucket index mixes the low bits of both source
// and target, a fixed source can appear in any of the numTarget()
// buckets sharing its source bits; this scans exactly that many
// buckets rather than the whole table.
func (g *Graph) EachAdjacent(source uint64, fn func(target uint64, weight float32) bool) {
	ns := g.numSource()
	sourceLow := int(source & (uint64(ns) - 1))
	for tIdx := 0; tIdx < g.numTarget(); tIdx++ {
		bIdx := sourceLow + tIdx*ns
		stop := false
		g.buckets[bIdx].Each(func(e bucket.Entry2) bool {
			if e.Source != source {
				return true
			}
			if !fn(e.Target, e.Weight) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// Clone returns an independent copy of g with refcount 1, no timeline
// or cache membership, and the same revision, flags, and edges.
func (g *Graph) Clone() (*Graph, error) {
	out, err := New(
		WithBitsSource(g.bitsSource),
		WithBitsTarget(g.bitsTarget),
		WithFlags(g.flags&^flags.ReadOnly),
		WithEpsilon(g.eps),
	)
	if err != nil {
		return nil, err
	}
	var setErr error
	g.EachEdge(func(s, t uint64, w float32) bool {
		if err := out.Set(s, t, w); err != nil {
			setErr = err
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	out.flags = g.flags
	out.revision = g.revision
	return out, nil
}
