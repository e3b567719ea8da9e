package traverse

import (
	"container/heap"

	"tvgraph/graph"
)

// Signal is the continue/stop part of a BFS callback's result; the
// third outcome, abort, is a non-nil error returned alongside it.
type Signal int

const (
	// Continue tells the driver to keep expanding the frontier.
	Continue Signal = 0
	// Stop tells the driver the search is complete and to return
	// immediately without visiting the remaining frontier.
	Stop Signal = 1
)

// Root is the From value carried by the entry seeded for the source node.
const Root = ^uint64(0)

// Callback is invoked once per node popped off the frontier, in
// non-decreasing distance order. Returning a non-nil error aborts the walk
// and that error propagates out of BFS. Returning Stop ends the walk after
// this node without error; relying on this requires the caller to know
// that, once one popped entry exceeds some bound, every later entry does
// too (true for any node-monotonic stopping predicate, since the heap pops
// in non-decreasing order).
type Callback func(entry BfsEntry) (Signal, error)

// BFS walks g breadth-first from source, popping the nearest unvisited
// node at each step (nearest meaning smallest accumulated weight when
// useWeights is true, otherwise smallest hop count) and invoking cb
// exactly once per popped node before marking it visited and expanding its
// adjacency. The source itself is visited first, with Hops 0, Weight 0,
// and From set to Root.
func BFS(g *graph.Graph, source uint64, useWeights bool, cb Callback) error {
	f := &frontier{useWeights: useWeights}
	heap.Init(f)
	heap.Push(f, BfsEntry{From: Root, To: source})

	visited := make(map[uint64]bool)
	for f.Len() > 0 {
		entry := heap.Pop(f).(BfsEntry)
		if visited[entry.To] {
			continue
		}

		signal, err := cb(entry)
		if err != nil {
			return err
		}
		visited[entry.To] = true
		if signal == Stop {
			return nil
		}

		g.EachAdjacent(entry.To, func(target uint64, weight float32) bool {
			if visited[target] {
				return true
			}
			next := BfsEntry{
				Weight: entry.Weight + float64(weight),
				Hops:   entry.Hops + 1,
				From:   entry.To,
				To:     target,
			}
			heap.Push(f, next)
			return true
		})
	}
	return nil
}
