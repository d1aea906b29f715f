// Package field is the eight byte, right aligned, space padded decimal field
// that the composite parser consumes, and the normaliser that produces one
// from arbitrary input.
package field

import (
	"encoding/binary"

	"fixint.lol/alphabet"
	"fixint.lol/scalar"
)

const (
	// Width is the size of a field.
	Width = 8
	// ChunkWidth is the size of each of the two halves that are looked up.
	ChunkWidth = alphabet.Width
)

// T is a field. The first chunk carries the ten-thousands and above, the second
// the units through thousands.
type T [Width]byte

// Key reads a chunk as a table index. The byte order is pinned to little endian
// so the first byte of the chunk is always the least significant byte of the
// key, whatever the host.
func Key(c []byte) uint32 { return binary.LittleEndian.Uint32(c) }

// Chunk is the inverse of Key.
func Chunk(k uint32) (c [ChunkWidth]byte) {
	binary.LittleEndian.PutUint32(c[:], k)
	return
}

// Keys returns the table indexes of the high and low chunks.
func (f *T) Keys() (hi, lo uint32) {
	return Key(f[:ChunkWidth]), Key(f[ChunkWidth:])
}

// High and Low return the two chunks.
func (f *T) High() (c [ChunkWidth]byte) { copy(c[:], f[:ChunkWidth]); return }
func (f *T) Low() (c [ChunkWidth]byte)  { copy(c[:], f[ChunkWidth:]); return }

func (f *T) String() string { return string(f[:]) }

var fold [256]byte

func init() {
	for i := range fold {
		fold[i] = alphabet.Invalid
	}
	for _, c := range alphabet.Symbols {
		fold[c] = c
	}
	for c := range fold {
		if scalar.IsSpace(byte(c)) {
			fold[c] = ' '
		}
	}
}

// Normalize right aligns b into dst. Trailing whitespace is dropped first so
// the digits sit against the end of the field, then input longer than Width
// keeps only its last Width bytes and shorter input is padded on the left with
// spaces. Remaining whitespace becomes a space and other bytes outside
// alphabet.Symbols are replaced with alphabet.Invalid, so every chunk of dst is
// either a member of alphabet.Standard or invalid under the reference parser.
func Normalize(dst *T, b []byte) {
	n := trimRight(b)
	if n > Width {
		b = b[n-Width : n]
		n = Width
	}
	pad := Width - n
	for i := 0; i < pad; i++ {
		dst[i] = ' '
	}
	for i := 0; i < n; i++ {
		dst[pad+i] = fold[b[i]]
	}
}

// New returns the normalised field for b.
func New(b []byte) (f T) {
	Normalize(&f, b)
	return
}

// Reachable reports whether c is a chunk Normalize can emit: only members of
// alphabet.Symbols or alphabet.Invalid.
func Reachable(c [ChunkWidth]byte) bool {
	for _, b := range c {
		if fold[b] != b {
			return false
		}
	}
	return true
}

// trimRight is the length of b without trailing whitespace.
func trimRight(b []byte) (n int) {
	n = len(b)
	for n > 0 && scalar.IsSpace(b[n-1]) {
		n--
	}
	return
}

// Canonical reports whether Normalize keeps every significant byte of b
// unchanged, that is, nothing is folded and nothing but padding is cut off.
func Canonical(b []byte) bool {
	n := trimRight(b)
	var i int
	for i < n && scalar.IsSpace(b[i]) {
		i++
	}
	if n-i > Width {
		return false
	}
	for ; i < n; i++ {
		if fold[b[i]] != b[i] {
			return false
		}
	}
	return true
}
