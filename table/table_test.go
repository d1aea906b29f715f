package table

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"fixint.lol/alphabet"
	"fixint.lol/field"
	"fixint.lol/scalar"
)

// build returns a table or skips the test when the host will not reserve the
// address space for one.
func build[V Value](t *testing.T, opts ...Option) (tb *T[V]) {
	t.Helper()
	var err error
	if tb, err = New[V](opts...); err != nil {
		t.Skipf("cannot build %s table: %v", WidthName[V](), err)
	}
	t.Cleanup(func() { _ = tb.Release() })
	return
}

func reserved[V Value](t *testing.T) (tb *T[V]) {
	t.Helper()
	var err error
	if tb, err = Reserve[V](); err != nil {
		t.Skipf("cannot reserve %s table: %v", WidthName[V](), err)
	}
	t.Cleanup(func() { _ = tb.Release() })
	return
}

func checkSparse[V Value](t *testing.T) {
	tb := build[V](t)
	alphabet.Standard.Each(func(c [alphabet.Width]byte) {
		if got, want := int32(tb.LookupChunk(c)), scalar.Parse4(c); got != want {
			t.Fatalf("%s lookup %q = %d, want %d", WidthName[V](), c[:], got, want)
		}
	})
	require.Equal(t, u64(alphabet.Standard.Count()), tb.Stats().Written)
}

func TestSparseMatchesReference(t *testing.T) {
	t.Run("narrow", checkSparse[int16])
	t.Run("wide", checkSparse[int32])
}

func TestUnpopulatedKeysReadZero(t *testing.T) {
	tb := build[int16](t)
	for range 100000 {
		c := field.Chunk(u32(frand.Uint64n(Size)))
		if alphabet.Standard.Contains(c) {
			continue
		}
		require.Zero(t, tb.LookupChunk(c), "chunk %q", c[:])
	}
	for _, s := range []string{"   \x7f", "\x7f123", "12\x7f4", "  -1", "\t123", "\x00\x00\x00\x00"} {
		var c [alphabet.Width]byte
		copy(c[:], s)
		require.Zero(t, tb.LookupChunk(c), "chunk %q", s)
	}
}

func TestSparseAgreesWithDenseOnReachableKeys(t *testing.T) {
	sparse := build[int16](t)
	dense := reserved[int32](t)
	dense.FillKeys(Keys(alphabet.Reachable))
	checked, mismatched, diff := Compare(sparse, dense, Keys(alphabet.Reachable), 8)
	require.Equal(t, u64(alphabet.Reachable.Count()), checked)
	require.Zero(t, mismatched, "%v", diff)
}

func TestFillRangeWindow(t *testing.T) {
	// every key whose last chunk byte is '5'
	lo, hi := u64('5')<<24, u64('6')<<24
	dense := reserved[int16](t)
	dense.FillRange(lo, hi)
	require.Equal(t, hi-lo, dense.Stats().Written)
	for range 100000 {
		k := u32(lo + frand.Uint64n(hi-lo))
		require.Equal(t, scalar.Parse4(field.Chunk(k)), int32(dense.Lookup(k)))
	}
	require.Zero(t, dense.Lookup(u32(lo-1)))
	require.Zero(t, dense.Lookup(u32(hi)+0x31))
	sparse := build[int32](t)
	inWindow := func(yield func(u32) bool) {
		for k := range Keys(alphabet.Standard) {
			if u64(k) >= lo && u64(k) < hi && !yield(k) {
				return
			}
		}
	}
	checked, mismatched, diff := Compare(sparse, dense, inWindow, 8)
	require.Equal(t, u64(12*12*12), checked)
	require.Zero(t, mismatched, "%v", diff)
}

func TestFillWindowMatchesFillRange(t *testing.T) {
	lo, hi := u64('5')<<24, u64('6')<<24
	sharded := reserved[int16](t)
	require.NoError(t, sharded.FillWindow(lo, hi, 4))
	require.Equal(t, hi-lo, sharded.Stats().Written)
	serial := reserved[int32](t)
	serial.FillRange(lo, hi)
	checked, mismatched, diff := Compare(sharded, serial, Range(lo, hi), 8)
	require.Equal(t, hi-lo, checked)
	require.Zero(t, mismatched, "%v", diff)
	require.Zero(t, sharded.Lookup(u32(lo-1)))
	require.Zero(t, sharded.Lookup(u32(hi)))
	sparse := build[int32](t)
	_, mismatched, diff = Compare(sparse, sharded, Range(lo, hi), 8)
	require.NotZero(t, mismatched, "sparse leaves invalid chunks unwritten")
	inWindow := func(yield func(u32) bool) {
		for k := range Keys(alphabet.Reachable) {
			if u64(k) >= lo && u64(k) < hi && !yield(k) {
				return
			}
		}
	}
	_, mismatched, diff = Compare(sparse, sharded, inWindow, 8)
	require.Zero(t, mismatched, "%v", diff)
}

func TestFillWindowUnevenShards(t *testing.T) {
	tb := reserved[int32](t)
	// 1000 keys do not split evenly into the shards
	lo, hi := u64(0x34333231)-500, u64(0x34333231)+500
	require.NoError(t, tb.FillWindow(lo, hi, 3))
	require.Equal(t, hi-lo, tb.Stats().Written)
	for k := range Range(lo, hi) {
		require.Equal(t, scalar.Parse4(field.Chunk(k)), int32(tb.Lookup(k)), "key %08x", k)
	}
	require.EqualValues(t, 1234, tb.LookupChunk([alphabet.Width]byte{'1', '2', '3', '4'}))
	require.Zero(t, tb.Lookup(u32(hi)))
	require.NoError(t, tb.FillWindow(hi, hi, 2))
	require.NoError(t, tb.FillWindow(Size-3, Size+10, 0))
	require.Equal(t, hi-lo+3, tb.Stats().Written)
}

func TestRangeClamps(t *testing.T) {
	var n int
	for k := range Range(Size-2, Size+5) {
		require.GreaterOrEqual(t, u64(k), Size-2)
		n++
	}
	require.Equal(t, 2, n)
	for range Range(7, 3) {
		t.Fatal("empty range yielded a key")
	}
}

func TestTerminatedAlphabet(t *testing.T) {
	tb := build[int32](t, WithAlphabet(alphabet.Terminated))
	s := tb.Stats()
	require.Equal(t, "terminated", s.Alphabet)
	require.Equal(t, u64(alphabet.Terminated.Count()), s.Written)
	require.Zero(t, tb.LookupChunk([alphabet.Width]byte{0, '1', '2', '3'}))
	require.EqualValues(t, 123, tb.LookupChunk([alphabet.Width]byte{' ', '1', '2', '3'}))
}

func TestRelease(t *testing.T) {
	tb := build[int16](t)
	require.EqualValues(t, 1234, tb.LookupChunk([alphabet.Width]byte{'1', '2', '3', '4'}))
	require.NoError(t, tb.Release())
	require.True(t, tb.Released())
	require.True(t, errors.Is(tb.Release(), ErrReleased))
	require.Panics(t, func() { tb.Lookup(0) })
}

func TestStrategyNames(t *testing.T) {
	for _, s := range []Strategy{Sparse, Dense} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := ParseStrategy("lazy")
	require.Error(t, err)
	require.Equal(t, "Strategy(7)", Strategy(7).String())
	require.Equal(t, "narrow", WidthName[int16]())
	require.Equal(t, "wide", WidthName[int32]())
}

func TestStats(t *testing.T) {
	tb := build[int32](t)
	s := tb.Stats()
	require.Equal(t, Sparse, s.Strategy)
	require.Equal(t, "wide", s.Width)
	require.Equal(t, "standard", s.Alphabet)
	require.Equal(t, Size*4, s.Reserved)
	require.Contains(t, s.String(), "20,736 entries")
}

// TestDenseFull fills the whole key space. It needs 8GiB of memory and a few
// minutes, so it only runs with FIXINT_DENSE_TEST=1.
func TestDenseFull(t *testing.T) {
	if testing.Short() || os.Getenv("FIXINT_DENSE_TEST") != "1" {
		t.Skip("set FIXINT_DENSE_TEST=1 to fill a full dense table")
	}
	dense := build[int16](t, WithStrategy(Dense))
	sparse := build[int16](t)
	_, mismatched, diff := Compare(sparse, dense, Keys(alphabet.Reachable), 8)
	require.Zero(t, mismatched, "%v", diff)
	for range 1000000 {
		k := u32(frand.Uint64n(Size))
		require.Equal(t, scalar.Parse4(field.Chunk(k)), int32(dense.Lookup(k)))
	}
}
