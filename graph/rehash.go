package graph

import (
	"tvgraph/bucket"
)

// rehashRetryCountdown matches vector's retry delay after a failed
// resize: set optimize = 1024 to retry later rather than thrash on
// every mutation.
const rehashRetryCountdown = 1024

// rehash implements the optimize policy: grow the table (preferring to
// widen whichever of bitsSource/bitsTarget is smaller) while entries
// are dense, shrink it (preferring to narrow whichever is larger) while
// they are sparse. Each single-dimension
// resize step is built from a scratch copy of the live buckets via
// bucket.Bucket2.SplitMask/Merge and swapped in only on success, so a
// mid-resize allocation failure leaves g completely unchanged.
func (g *Graph) rehash() {
	n := g.numEdges
	b := g.numSource() * g.numTarget()
	switch {
	case n >= 256*b:
		for g.bitsSource < 31 || g.bitsTarget < 31 {
			b = g.numSource() * g.numTarget()
			if g.numEdges < 64*b {
				break
			}
			var err error
			if g.bitsSource <= g.bitsTarget && g.bitsSource < 31 {
				err = g.resizeDoubleSource()
			} else if g.bitsTarget < 31 {
				err = g.resizeDoubleTarget()
			} else {
				err = g.resizeDoubleSource()
			}
			if err != nil {
				g.optimize = rehashRetryCountdown
				return
			}
		}
	case b >= 2 && n < 16*b:
		for g.bitsSource+g.bitsTarget > 0 {
			b = g.numSource() * g.numTarget()
			if g.numEdges >= 64*b {
				break
			}
			var err error
			switch {
			case g.bitsSource >= g.bitsTarget && g.bitsSource > 0:
				err = g.resizeHalveSource()
			case g.bitsTarget > 0:
				err = g.resizeHalveTarget()
			default:
				return
			}
			if err != nil {
				g.optimize = rehashRetryCountdown
				return
			}
		}
	}
	newB := g.numSource() * g.numTarget()
	lo := 256*newB - g.numEdges
	hi := g.numEdges - 16*newB
	next := lo
	if hi < next {
		next = hi
	}
	if next < initialOptimize {
		next = initialOptimize
	}
	if !g.Directed() {
		next /= 2
	}
	g.optimize = next
}

// resizeDoubleSource widens bitsSource by one, splitting each bucket on
// the newly significant source bit.
func (g *Graph) resizeDoubleSource() error {
	ns, nt := g.numSource(), g.numTarget()
	mask := uint64(ns)
	scratch := make([]bucket.Bucket2, len(g.buckets))
	copy(scratch, g.buckets)

	newBuckets := make([]bucket.Bucket2, len(g.buckets)*2)
	newNS := ns * 2
	for t := 0; t < nt; t++ {
		for s := 0; s < ns; s++ {
			oldIdx := s + t*ns
			moved, err := scratch[oldIdx].SplitMask(mask, 0)
			if err != nil {
				return err
			}
			newBuckets[s+t*newNS] = scratch[oldIdx]
			newBuckets[(s+ns)+t*newNS] = *moved
		}
	}
	g.buckets = newBuckets
	g.bitsSource++
	return nil
}

// resizeDoubleTarget widens bitsTarget by one, splitting each bucket on
// the newly significant target bit.
func (g *Graph) resizeDoubleTarget() error {
	ns, nt := g.numSource(), g.numTarget()
	mask := uint64(nt)
	scratch := make([]bucket.Bucket2, len(g.buckets))
	copy(scratch, g.buckets)

	newBuckets := make([]bucket.Bucket2, len(g.buckets)*2)
	for t := 0; t < nt; t++ {
		for s := 0; s < ns; s++ {
			oldIdx := s + t*ns
			moved, err := scratch[oldIdx].SplitMask(0, mask)
			if err != nil {
				return err
			}
			newBuckets[s+t*ns] = scratch[oldIdx]
			newBuckets[s+(t+nt)*ns] = *moved
		}
	}
	g.buckets = newBuckets
	g.bitsTarget++
	return nil
}

// resizeHalveSource narrows bitsSource by one, merging the bucket pair
// that collapses onto the same slot once the source bit is dropped.
func (g *Graph) resizeHalveSource() error {
	ns, nt := g.numSource(), g.numTarget()
	newNS := ns / 2
	scratch := make([]bucket.Bucket2, len(g.buckets))
	copy(scratch, g.buckets)

	newBuckets := make([]bucket.Bucket2, newNS*nt)
	for t := 0; t < nt; t++ {
		for s := 0; s < newNS; s++ {
			a := s + t*ns
			b := (s + newNS) + t*ns
			if err := scratch[a].Merge(&scratch[b]); err != nil {
				return err
			}
			newBuckets[s+t*newNS] = scratch[a]
		}
	}
	g.buckets = newBuckets
	g.bitsSource--
	return nil
}

// resizeHalveTarget narrows bitsTarget by one, merging the bucket pair
// that collapses onto the same slot once the target bit is dropped.
func (g *Graph) resizeHalveTarget() error {
	ns, nt := g.numSource(), g.numTarget()
	newNT := nt / 2
	scratch := make([]bucket.Bucket2, len(g.buckets))
	copy(scratch, g.buckets)

	newBuckets := make([]bucket.Bucket2, ns*newNT)
	for t := 0; t < newNT; t++ {
		for s := 0; s < ns; s++ {
			a := s + t*ns
			b := s + (t+newNT)*ns
			if err := scratch[a].Merge(&scratch[b]); err != nil {
				return err
			}
			newBuckets[s+t*ns] = scratch[a]
		}
	}
	g.buckets = newBuckets
	g.bitsTarget--
	return nil
}

// forceRehash exposes the rehash trigger to tests without requiring
// thousands of mutations to exhaust the optimize countdown.
func (g *Graph) forceRehash() { g.rehash() }
