// Package fixint parses eight byte, right aligned decimal fields with two
// lookups into a precomputed table instead of a loop over the digits.
//
// The pieces are in their own packages: scalar is the reference decoder a table
// is built from, table holds the lookup table and its two ways of being filled,
// field is the input layout and its normaliser, and parser puts them together.
// This package picks the entry width at run time for callers that only know it
// from configuration.
package fixint

import (
	"github.com/pkg/errors"

	"fixint.lol/field"
	"fixint.lol/parser"
	"fixint.lol/table"
)

// Parser is a composite parser over a table of either width.
type Parser interface {
	Parse(f *field.T) int32
	ParseBytes(b []byte) int32
	ParseString(s string) int32
	ParseStrict(b []byte) (int32, error)
}

// Table is the lifecycle of a table of either width.
type Table interface {
	Stats() table.Stats
	Released() bool
	Release() error
}

// Open builds a table with entries of the named width, table.Narrow or
// table.Wide, and a parser reading it. The table must be released once the
// parser is no longer used.
func Open(width string, opts ...table.Option) (p Parser, t Table, err error) {
	switch width {
	case table.Narrow:
		return open[int16](opts...)
	case table.Wide:
		return open[int32](opts...)
	}
	err = errors.Errorf("unknown table width %q", width)
	return
}

func open[V table.Value](opts ...table.Option) (Parser, Table, error) {
	t, err := table.New[V](opts...)
	if err != nil {
		return nil, nil, err
	}
	var p *parser.P[V]
	if p, err = parser.New(t); err != nil {
		_ = t.Release()
		return nil, nil, err
	}
	return p, p.Table(), nil
}
