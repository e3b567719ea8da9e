package graph

import (
	"sync/atomic"

	"tvgraph/flags"
	"tvgraph/internal/xerrors"
)

// loadNext and loadPrev are derived sentinels carried in graph flags by
// timeline code: hints that a neighboring snapshot requires reloading.
// They live outside the known-flag set New validates against, since
// they are set only by Unlink, never by a caller's WithFlags.
const (
	loadNext flags.Flags = 1 << 16
	loadPrev flags.Flags = 1 << 17
)

// Timeline is the narrow hook the owning timeline collaborator
// implements; the core calls into it only to find neighbors and to be
// told a graph was detached. The timeline's own storage is out of
// scope for this package.
type Timeline interface {
	// Prev returns the graph immediately before this one in timeline
	// order, or nil if none.
	Prev() *Graph
	// Next returns the graph immediately after this one, or nil if
	// none.
	Next() *Graph
	// Unlinked is invoked once, by (*Graph).Unlink, to tell the
	// timeline this graph has been detached.
	Unlinked(g *Graph)
}

// CacheList is the narrow hook an LRU cache of materialized snapshots
// implements; a Graph's cache-list membership is valid iff its cache
// field is non-nil.
type CacheList interface {
	// Refresh repositions g in the LRU ordering; called by
	// (*Graph).RefreshCache.
	Refresh(g *Graph)
}

// SetTimeline installs t as g's weak, non-owning timeline backpointer.
// Only the timeline collaborator should call this, per its own
// discipline.
func (g *Graph) SetTimeline(t Timeline) { g.tvg = t }

// TimelineOf returns g's timeline backpointer, or nil if unattached.
func (g *Graph) TimelineOf() Timeline { return g.tvg }

// SetCache installs g's cache-list membership, or clears it if c is
// nil.
func (g *Graph) SetCache(c CacheList) { g.cache = c }

// InCache reports whether g is a member of a cache list.
func (g *Graph) InCache() bool { return g.cache != nil }

// LoadHints returns the LOAD_NEXT/LOAD_PREV bits currently set on g.
func (g *Graph) LoadHints() flags.Flags { return g.flags & (loadNext | loadPrev) }

// ClearLoadHints clears both LOAD_NEXT and LOAD_PREV. The core only
// clears or propagates them on unlink.
func (g *Graph) ClearLoadHints() { g.flags &^= loadNext | loadPrev }

// Unlink detaches g from its timeline and cache, propagates a LOAD_NEXT
// hint to the predecessor and a LOAD_PREV hint to the successor (so
// each neighbor knows its adjacent snapshot changed), and drops one
// reference. If g has no timeline, it only clears the cache membership
// and drops the reference.
func (g *Graph) Unlink() bool {
	if g.tvg != nil {
		if prev := g.tvg.Prev(); prev != nil {
			prev.flags |= loadNext
		}
		if next := g.tvg.Next(); next != nil {
			next.flags |= loadPrev
		}
		g.tvg.Unlinked(g)
		g.tvg = nil
	}
	g.cache = nil
	return g.Release()
}

// RefreshCache signals the owning cache list to reposition g in its LRU
// ordering. Requires a non-nil timeline backpointer.
func (g *Graph) RefreshCache() error {
	if g.tvg == nil {
		return xerrors.New(xerrors.KindInvalidArgument, "graph: refresh_cache requires a timeline backpointer")
	}
	if g.cache != nil {
		g.cache.Refresh(g)
	}
	return nil
}

// Release decrements the refcount. It returns true once the last
// reference is dropped; the caller must not use g again in that case.
// It does not check timeline or cache attachment; ReleaseChecked
// reports freeing a still-attached graph as an InvalidArgument-kind
// error.
func (g *Graph) Release() bool {
	if atomic.AddInt32(&g.refcount, -1) != 0 {
		return false
	}
	return true
}

// ReleaseChecked is Release with a timeline/cache attachment assertion;
// Unlink already detaches both before dropping its reference, so this
// is for callers that drop a reference directly without going through
// Unlink.
func (g *Graph) ReleaseChecked() (freed bool, err error) {
	if g.tvg != nil || g.cache != nil {
		if atomic.LoadInt32(&g.refcount) == 1 {
			return false, xerrors.New(xerrors.KindInvalidArgument, "graph: free of a graph still attached to a timeline or cache")
		}
	}
	return g.Release(), nil
}
