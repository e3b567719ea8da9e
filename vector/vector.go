package vector

import (
	"math"
	"sync/atomic"

	"tvgraph/bucket"
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
)

// initialOptimize is the mutation countdown a freshly allocated or
// resized Vector starts with before its first rehash check.
const initialOptimize = 256

// Vector is the 1-D sparse container: a power-of-two table of
// bucket.Bucket1 keyed by the low `bits` bits of the index.
//
// A Vector has no internal lock: no operation suspends or blocks, and
// every method runs single-threaded cooperative within an object; only
// refcount is safe to touch from multiple goroutines, and only via
// Grab/Release.
type Vector struct {
	bits     uint
	flags    flags.Flags
	eps      float32
	revision uint64
	optimize int
	refcount int32

	buckets    []bucket.Bucket1
	numEntries int
}

// New allocates a Vector with refcount 1, revision 0, and zero buckets
// of capacity 2^bits, per the options supplied. It returns
// InvalidArgument if bits is out of [0,31] or flags contains an
// unrecognized bit.
func New(opts ...Option) (*Vector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.bits > 31 {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "vector: bits out of range [0,31]")
	}
	if !flags.Known(o.flags) {
		return nil, xerrors.New(xerrors.KindInvalidArgument, "vector: unknown flag bit")
	}
	v := &Vector{
		bits:     o.bits,
		flags:    o.flags,
		eps:      o.eps,
		refcount: 1,
		optimize: initialOptimize,
		buckets:  make([]bucket.Bucket1, 1<<o.bits),
	}
	return v, nil
}

// Bits reports the current table width (2^Bits() buckets).
func (v *Vector) Bits() uint { return v.bits }

// Flags reports the container's flag bitmask.
func (v *Vector) Flags() flags.Flags { return v.flags }

// Epsilon reports the eps-collapse threshold.
func (v *Vector) Epsilon() float32 { return v.eps }

// Revision reports the monotonic mutation counter; consumers cache
// derived data keyed by (identity, Revision()).
func (v *Vector) Revision() uint64 { return v.revision }

// Len reports the exact number of stored entries in O(1).
func (v *Vector) Len() int { return v.numEntries }

// Grab increments the refcount and returns v, matching the core
// engine's shared-ownership discipline.
func (v *Vector) Grab() *Vector {
	atomic.AddInt32(&v.refcount, 1)
	return v
}

// Release decrements the refcount; the caller must not use v again if
// Release returns true (the last reference was dropped).
func (v *Vector) Release() bool {
	return atomic.AddInt32(&v.refcount, -1) == 0
}

// RefCount reports the current reference count, for diagnostics/tests.
func (v *Vector) RefCount() int32 { return atomic.LoadInt32(&v.refcount) }

// MarkReadOnly sets the READONLY flag on v. It exists for derived,
// cached vectors (e.g. graph.Graph.Occurrences) that must reject
// mutation after being built once; ordinary callers configure READONLY
// at construction via WithFlags instead.
func (v *Vector) MarkReadOnly() { v.flags |= flags.ReadOnly }

func (v *Vector) bucketIndex(index uint64) int {
	mask := uint64(1)<<v.bits - 1
	return int(index & mask)
}

// Has reports whether index has a stored entry.
func (v *Vector) Has(index uint64) bool {
	_, ok := v.buckets[v.bucketIndex(index)].Get(index)
	return ok
}

// Get returns the weight stored at index and whether it was present.
func (v *Vector) Get(index uint64) (float32, bool) {
	return v.buckets[v.bucketIndex(index)].Get(index)
}

// collapse reports whether weight must be treated as absent under the
// container's NONZERO/POSITIVE flag policy.
func (v *Vector) collapses(weight float32) bool {
	switch {
	case v.flags.Has(flags.Positive):
		return weight <= v.eps
	case v.flags.Has(flags.Nonzero):
		return float32(math.Abs(float64(weight))) <= v.eps
	default:
		return false
	}
}

// Set stores weight at index, replacing any existing value. A result
// that collapses under the flag policy deletes the entry instead.
func (v *Vector) Set(index uint64, weight float32) error {
	return v.mutate(index, func(uint64) (float32, bool) { return weight, true })
}

// Add adds delta to the value at index (treating an absent entry as
// zero) and stores the result, subject to the same collapse policy as
// Set.
func (v *Vector) Add(index uint64, delta float32) error {
	return v.mutate(index, func(idx uint64) (float32, bool) {
		cur, _ := v.buckets[v.bucketIndex(idx)].Get(idx)
		return cur + delta, true
	})
}

// Sub subtracts delta from the value at index.
func (v *Vector) Sub(index uint64, delta float32) error {
	return v.Add(index, -delta)
}

// Del removes the entry at index if present. It is a no-op (no
// revision bump) when index was already absent.
func (v *Vector) Del(index uint64) error {
	if v.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "vector: delete on read-only container")
	}
	b := &v.buckets[v.bucketIndex(index)]
	if _, ok := b.Delete(index); !ok {
		return nil
	}
	v.numEntries--
	v.afterMutation()
	return nil
}

// mutate centralizes the mutation contract every write goes through:
// READONLY rejection, the bucket-level write, flag-policy collapse,
// revision bump, and the rehash countdown.
func (v *Vector) mutate(index uint64, compute func(uint64) (float32, bool)) error {
	if v.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "vector: mutation on read-only container")
	}
	b := &v.buckets[v.bucketIndex(index)]
	newWeight, _ := compute(index)
	_, existed := b.Get(index)
	if v.collapses(newWeight) {
		if existed {
			if _, ok := b.Delete(index); ok {
				v.numEntries--
			}
		}
		v.afterMutation()
		return nil
	}
	if err := b.Set(index, newWeight); err != nil {
		return err
	}
	if !existed {
		v.numEntries++
	}
	v.afterMutation()
	return nil
}

func (v *Vector) afterMutation() {
	v.revision++
	v.optimize--
	if v.optimize <= 0 {
		v.rehash()
	}
}

// Each walks stored entries in bucket order (then ascending index
// within a bucket) — NOT a global sort order over all stored keys.
// Stops early if fn returns false.
func (v *Vector) Each(fn func(index uint64, weight float32) bool) {
	for i := range v.buckets {
		stop := false
		v.buckets[i].Each(func(e bucket.Entry1) bool {
			if !fn(e.Index, e.Weight) {
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

// Clone returns an independent copy of v with refcount 1 and the same
// revision, flags, and entries.
func (v *Vector) Clone() (*Vector, error) {
	out, err := New(WithBits(v.bits), WithFlags(v.flags&^flags.ReadOnly), WithEpsilon(v.eps))
	if err != nil {
		return nil, err
	}
	var setErr error
	v.Each(func(idx uint64, w float32) bool {
		if err := out.Set(idx, w); err != nil {
			setErr = err
			return false
		}
		return true
	})
	if setErr != nil {
		return nil, setErr
	}
	out.flags = v.flags
	out.revision = v.revision
	return out, nil
}
