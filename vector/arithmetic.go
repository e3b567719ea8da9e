package vector

import (
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
)

// MulConst scales every stored weight by c in place, bumping revision
// exactly once. Matching the original source's early-return behavior,
// c == 1 is a literal no-op: it does not touch entries and does not
// bump revision.
func (v *Vector) MulConst(c float32) error {
	if c == 1 {
		return nil
	}
	if v.flags.Has(flags.ReadOnly) {
		return xerrors.New(xerrors.KindReadOnly, "vector: mul_const on read-only container")
	}
	removed := 0
	for i := range v.buckets {
		removed += v.buckets[i].ScaleInPlace(c, v.collapses)
	}
	v.numEntries -= removed
	v.revision++
	v.optimize--
	if v.optimize <= 0 {
		v.rehash()
	}
	return nil
}
