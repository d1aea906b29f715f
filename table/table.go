// Package table is a direct indexed lookup table from every possible four byte
// chunk to the decimal value the reference parser gives it. A table is built
// once, is read only afterwards and can be shared by any number of goroutines
// without locking.
//
// The value type picks the entry width: int16 (narrow, 8GiB of address space)
// or int32 (wide, 16GiB). Both hold 0..9999 and widen to int32 on lookup.
package table

import (
	"fmt"
	"iter"
	"runtime"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"fixint.lol/alphabet"
	"fixint.lol/field"
	"fixint.lol/scalar"
)

// Size is the number of entries, one per four byte key.
const Size u64 = 1 << 32

var (
	ErrAddressSpace = errors.New("table does not fit the address space")
	ErrReleased     = errors.New("table already released")
)

// Value is the entry width.
type Value interface{ ~int16 | ~int32 }

// Strategy is how a table is populated.
type Strategy no

const (
	// Sparse writes only the chunks of an alphabet and leaves the rest of the
	// zeroed storage alone.
	Sparse Strategy = iota
	// Dense runs the reference parser over the whole key space.
	Dense
)

var strategyNames = []string{"sparse", "dense"}

func (s Strategy) String() string {
	if s >= 0 && no(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", no(s))
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (s Strategy, err error) {
	for i := range strategyNames {
		if strategyNames[i] == name {
			return Strategy(i), nil
		}
	}
	err = errors.Errorf("unknown table strategy %q", name)
	return
}

// Names of the two entry widths.
const (
	Narrow = "narrow"
	Wide   = "wide"
)

// WidthName is Narrow for int16 entries and Wide for int32.
func WidthName[V Value]() string {
	var v V
	if unsafe.Sizeof(v) == 2 {
		return Narrow
	}
	return Wide
}

type options struct {
	strategy Strategy
	alphabet *alphabet.T
	workers  no
}

// Option configures New.
type Option func(o *options)

func WithStrategy(s Strategy) Option    { return func(o *options) { o.strategy = s } }
func WithAlphabet(a *alphabet.T) Option { return func(o *options) { o.alphabet = a } }
func WithWorkers(n no) Option           { return func(o *options) { o.workers = n } }

// T is a lookup table with entries of type V.
type T[V Value] struct {
	s        []V
	release  func() error
	strategy Strategy
	alphabet *alphabet.T
	written  atomic.Uint64
	built    time.Duration
	reserved u64
}

// Reserve allocates a zeroed, unpopulated table. Every key reads 0 until it is
// filled.
func Reserve[V Value]() (t *T[V], err error) {
	t = &T[V]{}
	if t.s, t.release, err = reserve[V](Size); err != nil {
		t = nil
		return
	}
	var v V
	t.reserved = Size * u64(unsafe.Sizeof(v))
	log.D.F("reserved %s for a %s table", humanize.IBytes(t.reserved), WidthName[V]())
	return
}

// New reserves and populates a table. Sparse over alphabet.Standard is the
// default.
func New[V Value](opts ...Option) (t *T[V], err error) {
	o := &options{alphabet: alphabet.Standard, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(o)
	}
	if t, err = Reserve[V](); err != nil {
		return
	}
	start := time.Now()
	switch o.strategy {
	case Sparse:
		t.FillAlphabet(o.alphabet)
	case Dense:
		if err = t.FillDense(o.workers); chk.E(err) {
			_ = t.Release()
			t = nil
			return
		}
	default:
		_ = t.Release()
		t = nil
		err = errors.Errorf("unknown table strategy %d", o.strategy)
		return
	}
	t.strategy = o.strategy
	t.built = time.Since(start)
	log.I.Ln("built", t.Stats())
	return
}

// Lookup returns the value for key k. It panics once the table is released.
func (t *T[V]) Lookup(k u32) V { return t.s[k] }

// LookupChunk is Lookup on the key of a chunk.
func (t *T[V]) LookupChunk(c [field.ChunkWidth]byte) V { return t.s[field.Key(c[:])] }

// Released reports whether Release has been called.
func (t *T[V]) Released() bo { return t.s == nil }

// Release hands the storage back. The table must not be looked up afterwards.
func (t *T[V]) Release() (err error) {
	if t.s == nil {
		return ErrReleased
	}
	t.s = nil
	if t.release != nil {
		err = t.release()
		t.release = nil
	}
	log.D.F("released %s %s table", WidthName[V](), humanize.IBytes(t.reserved))
	return
}

// FillAlphabet writes the reference value of every chunk in a. Chunks are
// distinct, so no slot is written twice.
func (t *T[V]) FillAlphabet(a *alphabet.T) {
	var n u64
	a.Each(func(c [alphabet.Width]byte) {
		t.s[field.Key(c[:])] = V(scalar.Parse4(c))
		n++
	})
	t.written.Add(n)
	t.alphabet = a
}

// FillKeys writes the reference value of each key.
func (t *T[V]) FillKeys(keys iter.Seq[u32]) {
	var n u64
	for k := range keys {
		t.s[k] = V(scalar.Parse4(field.Chunk(k)))
		n++
	}
	t.written.Add(n)
}

// FillRange writes the reference value of every key in [lo, hi). Disjoint
// ranges may be filled concurrently.
func (t *T[V]) FillRange(lo, hi u64) {
	if hi > Size {
		hi = Size
	}
	for k := lo; k < hi; k++ {
		t.s[k] = V(scalar.Parse4(field.Chunk(u32(k))))
	}
	if hi > lo {
		t.written.Add(hi - lo)
	}
}

// Stats describes a table.
type Stats struct {
	Strategy Strategy
	Width    string
	Alphabet string
	Reserved u64
	Written  u64
	Built    time.Duration
}

func (s Stats) String() string {
	a := ""
	if s.Alphabet != "" {
		a = " " + s.Alphabet
	}
	return fmt.Sprintf("%s %s%s table: %s reserved, %s entries written in %v",
		s.Width, s.Strategy, a, humanize.IBytes(s.Reserved), humanize.Comma(int64(s.Written)),
		s.Built)
}

func (t *T[V]) Stats() (s Stats) {
	s = Stats{
		Strategy: t.strategy,
		Width:    WidthName[V](),
		Reserved: t.reserved,
		Written:  t.written.Load(),
		Built:    t.built,
	}
	if t.alphabet != nil && t.strategy == Sparse {
		s.Alphabet = t.alphabet.Name
	}
	return
}
