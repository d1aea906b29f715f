// Package scalar is the reference decoder for a single four byte chunk of a
// fixed width decimal field. It is the ground truth the lookup tables are
// built from and is never used on the lookup path.
package scalar

// Width is the number of bytes a chunk covers.
const Width = 4

const (
	zero = '0'
	nine = '9'
	plus = '+'
	sp   = ' '
)

// IsSpace reports whether c is skipped as leading padding: space, tab, newline,
// vertical tab, form feed or carriage return.
func IsSpace(c byte) bool { return c == sp || (c >= '\t' && c <= '\r') }

// Parse4 decodes a chunk. Leading whitespace is skipped, one '+' is permitted
// after it, then digits accumulate and spaces are skipped. Any other byte makes
// the whole chunk 0, as does a chunk with no digits in it.
func Parse4(c [Width]byte) (v int32) {
	var i int
	for i < Width && IsSpace(c[i]) {
		i++
	}
	if i < Width && c[i] == plus {
		i++
	}
	var digits int
	for ; i < Width; i++ {
		ch := c[i]
		switch {
		case ch >= zero && ch <= nine:
			v = v*10 + int32(ch-zero)
			digits++
		case ch == sp:
			// trailing padding
		default:
			return 0
		}
	}
	if digits == 0 {
		return 0
	}
	return
}

// Parse4Bytes is Parse4 over the first Width bytes of b. b must hold at least
// Width bytes.
func Parse4Bytes(b []byte) int32 {
	_ = b[Width-1]
	return Parse4([Width]byte{b[0], b[1], b[2], b[3]})
}
