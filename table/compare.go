package table

import (
	"iter"

	"fixint.lol/alphabet"
	"fixint.lol/field"
)

// Mismatch is a key two tables disagree on.
type Mismatch struct {
	Key  u32
	A, B int32
}

// Compare looks every key up in both tables and collects at most limit keys
// where they differ, counting all of them. Tables of different widths compare
// by value.
func Compare[A, B Value](a *T[A], b *T[B], keys iter.Seq[u32], limit no) (checked,
	mismatched u64, diff []Mismatch) {

	for k := range keys {
		checked++
		va, vb := int32(a.Lookup(k)), int32(b.Lookup(k))
		if va == vb {
			continue
		}
		mismatched++
		if len(diff) < limit {
			diff = append(diff, Mismatch{k, va, vb})
		}
	}
	return
}

// Keys yields the key of every chunk of an alphabet.
func Keys(a *alphabet.T) iter.Seq[u32] {
	return func(yield func(u32) bool) {
		stop := false
		a.Each(func(c [alphabet.Width]byte) {
			if !stop && !yield(field.Key(c[:])) {
				stop = true
			}
		})
	}
}

// Range yields every key in [lo, hi).
func Range(lo, hi u64) iter.Seq[u32] {
	if hi > Size {
		hi = Size
	}
	return func(yield func(u32) bool) {
		for k := lo; k < hi; k++ {
			if !yield(u32(k)) {
				return
			}
		}
	}
}
