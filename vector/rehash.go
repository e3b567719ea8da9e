package vector

import (
	"tvgraph/bucket"
)

// rehashRetryCountdown is the optimize countdown installed after a
// failed resize, so the next attempt is deferred rather than retried on
// every subsequent mutation.
const rehashRetryCountdown = 1024

// rehash implements the optimize policy: grow while entries are dense
// relative to the table, shrink while they are sparse, each resize
// built into a fresh bucket array and swapped in only on full success
// so a mid-resize allocation failure leaves v completely unchanged —
// trading peak memory for simpler error handling.
func (v *Vector) rehash() {
	n, b := v.numEntries, 1<<v.bits
	switch {
	case n >= 256*b:
		for v.bits < 31 {
			b = 1 << v.bits
			if v.numEntries < 64*b {
				break
			}
			if err := v.resizeDouble(); err != nil {
				v.optimize = rehashRetryCountdown
				return
			}
		}
	case b >= 2 && n < 16*b:
		for v.bits > 0 {
			b = 1 << v.bits
			if v.numEntries >= 64*b {
				break
			}
			if err := v.resizeHalve(); err != nil {
				v.optimize = rehashRetryCountdown
				return
			}
		}
	}
	newB := 1 << v.bits
	lo := 256*newB - v.numEntries
	hi := v.numEntries - 16*newB
	next := lo
	if hi < next {
		next = hi
	}
	if next < initialOptimize {
		next = initialOptimize
	}
	v.optimize = next
}

// resizeDouble doubles the table width by splitting every bucket on the
// newly significant bit, using bucket.Bucket1.Split. The split is
// performed on a scratch copy of the current buckets so a failure
// partway through leaves the live table untouched.
func (v *Vector) resizeDouble() error {
	oldSize := 1 << v.bits
	mask := uint64(oldSize)
	scratch := make([]bucket.Bucket1, oldSize)
	copy(scratch, v.buckets)

	newBuckets := make([]bucket.Bucket1, oldSize*2)
	for i := 0; i < oldSize; i++ {
		moved, err := scratch[i].Split(mask)
		if err != nil {
			return err
		}
		newBuckets[i] = scratch[i]
		newBuckets[i+oldSize] = *moved
	}
	v.buckets = newBuckets
	v.bits++
	return nil
}

// resizeHalve halves the table width by merging bucket i with bucket
// i+newSize for every i, using bucket.Bucket1.Merge. Built on a scratch
// copy so a failure partway through leaves the live table untouched.
func (v *Vector) resizeHalve() error {
	newSize := 1 << (v.bits - 1)
	scratch := make([]bucket.Bucket1, len(v.buckets))
	copy(scratch, v.buckets)

	newBuckets := make([]bucket.Bucket1, newSize)
	for i := 0; i < newSize; i++ {
		if err := scratch[i].Merge(&scratch[i+newSize]); err != nil {
			return err
		}
		newBuckets[i] = scratch[i]
	}
	v.buckets = newBuckets
	v.bits--
	return nil
}

// forceRehash exposes the rehash trigger to tests without requiring
// thousands of mutations to exhaust the optimize countdown.
func (v *Vector) forceRehash() { v.rehash() }
