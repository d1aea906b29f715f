// Package parser turns an eight byte decimal field into its value with two
// table lookups and one multiply-add, and no loop over the digits.
//
// The fast path never reports an error. A half that the reference parser would
// reject contributes 0, so a malformed field can come back as a smaller,
// plausible number. Callers that need to know use ParseStrict.
package parser

import (
	"github.com/pkg/errors"

	"fixint.lol/field"
	"fixint.lol/table"
)

// Base is the place value of the high chunk.
const Base = 10000

var (
	ErrNoTable = errors.New("parser needs a built table")
)

// P is a composite parser over a table of V entries. It holds no state of its
// own and is safe for concurrent use.
type P[V table.Value] struct {
	t *table.T[V]
}

// New returns a parser reading from t, which must stay unreleased for as long
// as the parser is used.
func New[V table.Value](t *table.T[V]) (p *P[V], err error) {
	if t == nil {
		err = ErrNoTable
		return
	}
	if t.Released() {
		err = errors.Wrap(ErrNoTable, "table is released")
		return
	}
	p = &P[V]{t}
	return
}

// Table returns the table the parser reads.
func (p *P[V]) Table() *table.T[V] { return p.t }

// Parse decodes a normalised field.
func (p *P[V]) Parse(f *field.T) int32 {
	hi, lo := f.Keys()
	return int32(p.t.Lookup(hi))*Base + int32(p.t.Lookup(lo))
}

// ParseBytes normalises b into a field and decodes it. It never fails; see the
// package documentation for what malformed input yields.
func (p *P[V]) ParseBytes(b []byte) int32 {
	var f field.T
	field.Normalize(&f, b)
	return p.Parse(&f)
}

// ParseString is ParseBytes for a string.
func (p *P[V]) ParseString(s string) int32 {
	var f field.T
	field.Normalize(&f, []byte(s))
	return p.Parse(&f)
}

// ParseStrict validates b before decoding it, and so tells a real zero apart
// from a rejected field.
func (p *P[V]) ParseStrict(b []byte) (v int32, err error) {
	if err = field.Validate(b); err != nil {
		err = errors.Wrapf(err, "parse %q", b)
		return
	}
	v = p.ParseBytes(b)
	return
}
