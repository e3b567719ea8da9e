package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tvgraph/bucket"
)

func TestBucket1_SetGetSortedNoDuplicates(t *testing.T) {
	var b bucket.Bucket1
	for _, idx := range []uint64{5, 1, 3, 9, 2} {
		require.NoError(t, b.Set(idx, float32(idx)))
	}
	// overwrite an existing key
	require.NoError(t, b.Set(3, 30))

	require.Equal(t, 5, b.Len())
	var lastIndex uint64
	var count int
	b.Each(func(e bucket.Entry1) bool {
		if count > 0 {
			require.Less(t, lastIndex, e.Index, "entries must be strictly sorted with no duplicates")
		}
		lastIndex = e.Index
		count++
		return true
	})
	require.Equal(t, 5, count)

	w, ok := b.Get(3)
	require.True(t, ok)
	require.Equal(t, float32(30), w)

	_, ok = b.Get(42)
	require.False(t, ok)
}

func TestBucket1_Delete(t *testing.T) {
	var b bucket.Bucket1
	require.NoError(t, b.Set(1, 1))
	require.NoError(t, b.Set(2, 2))
	require.NoError(t, b.Set(3, 3))

	w, ok := b.Delete(2)
	require.True(t, ok)
	require.Equal(t, float32(2), w)
	require.Equal(t, 2, b.Len())

	_, ok = b.Get(2)
	require.False(t, ok)

	_, ok = b.Delete(2)
	require.False(t, ok)
}

func TestBucket1_SplitAndMerge(t *testing.T) {
	var b bucket.Bucket1
	for i := uint64(0); i < 16; i++ {
		require.NoError(t, b.Set(i, float32(i)))
	}

	moved, err := b.Split(1) // odd indices move out
	require.NoError(t, err)

	var kept []uint64
	b.Each(func(e bucket.Entry1) bool {
		kept = append(kept, e.Index)
		require.Zero(t, e.Index&1)
		return true
	})
	var movedIdx []uint64
	moved.Each(func(e bucket.Entry1) bool {
		movedIdx = append(movedIdx, e.Index)
		require.Equal(t, uint64(1), e.Index&1)
		return true
	})
	require.Equal(t, 8, len(kept))
	require.Equal(t, 8, len(movedIdx))

	require.NoError(t, b.Merge(moved))
	require.Equal(t, 16, b.Len())
	require.Equal(t, 0, moved.Len())

	var prev uint64
	var seen int
	b.Each(func(e bucket.Entry1) bool {
		if seen > 0 {
			require.Less(t, prev, e.Index)
		}
		prev = e.Index
		seen++
		return true
	})
	require.Equal(t, 16, seen)
}

func TestBucket1_ScaleInPlace(t *testing.T) {
	var b bucket.Bucket1
	require.NoError(t, b.Set(1, 1))
	require.NoError(t, b.Set(2, 2))
	require.NoError(t, b.Set(3, 0.01))

	collapse := func(w float32) bool { return w <= 0.5 }
	removed := b.ScaleInPlace(2, collapse)
	require.Equal(t, 1, removed) // 0.01*2=0.02 collapses
	require.Equal(t, 2, b.Len())

	w, ok := b.Get(1)
	require.True(t, ok)
	require.Equal(t, float32(2), w)

	w, ok = b.Get(2)
	require.True(t, ok)
	require.Equal(t, float32(4), w)

	_, ok = b.Get(3)
	require.False(t, ok)
}

func TestBucket1_GrowHookSimulatesOutOfMemory(t *testing.T) {
	bucket.SetGrowHook(func(wantCap int) bool { return true })
	defer bucket.SetGrowHook(nil)

	var b bucket.Bucket1
	err := b.Set(1, 1)
	require.Error(t, err)
	require.Equal(t, 0, b.Len(), "failed Set must leave the bucket unchanged")
}

func TestMerge1_ThreeWayOutput(t *testing.T) {
	var a, b bucket.Bucket1
	require.NoError(t, a.Set(1, 10))
	require.NoError(t, a.Set(2, 20))
	require.NoError(t, b.Set(2, 200))
	require.NoError(t, b.Set(3, 300))

	var onlyA, onlyB, both int
	bucket.Merge1(&a, &b, func(ea, eb *bucket.Entry1) {
		switch {
		case ea != nil && eb != nil:
			both++
			require.Equal(t, ea.Index, eb.Index)
		case ea != nil:
			onlyA++
		case eb != nil:
			onlyB++
		}
	})
	require.Equal(t, 1, onlyA)
	require.Equal(t, 1, onlyB)
	require.Equal(t, 1, both)
}
