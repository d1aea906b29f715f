// Package ints writes and reads decimal numbers in ASCII. Writing uses a base of
// 10000 and a lookup table of every four digit group, the mirror image of the
// table the parser reads fields with, and can lay a value out as a right
// aligned, space padded fixed width field.
package ints

import (
	_ "embed"
	"io"

	"github.com/pkg/errors"

	"fixint.lol/errorf"
)

// run this to regenerate (pointlessly) the base 10 array of 4 places per entry
//go:generate go run ./gen/.

//go:embed base10k.txt
var base10k []byte

const base = 10000

const (
	// FieldWidth is the width AppendField lays values out in.
	FieldWidth = 8
	// MaxField is the largest value that fits a field.
	MaxField = 99999999
)

var ErrTooWide = errors.New("value does not fit the field")

type T struct {
	N uint64
}

func New[V uint | int | uint64 | uint32 | uint16 | uint8 | int64 | int32 | int16 | int8](n V) *T {
	return &T{uint64(n)}
}

func (n *T) Uint64() uint64 { return n.N }
func (n *T) Int64() int64   { return int64(n.N) }
func (n *T) Int32() int32   { return int32(n.N) }

var powers = []uint64{
	1,
	1_0000,
	1_0000_0000,
	1_0000_0000_0000,
	1_0000_0000_0000_0000,
}

const zero = '0'
const nine = '9'

// Marshal appends the decimal text of n with no leading zeros.
func (n *T) Marshal(dst []byte) (b []byte) {
	b = dst
	if n.N == 0 {
		b = append(b, '0')
		return
	}
	rem := n.N
	var trimmed bool
	k := len(powers)
	for k > 0 {
		k--
		q := rem / powers[k]
		if !trimmed && q == 0 {
			continue
		}
		offset := q * 4
		bb := base10k[offset : offset+4]
		if !trimmed {
			for i := range bb {
				if bb[i] != zero {
					bb = bb[i:]
					trimmed = true
					break
				}
			}
		}
		b = append(b, bb...)
		rem -= q * powers[k]
	}
	return
}

// AppendField appends n right aligned in FieldWidth bytes, padded on the left
// with spaces, with a '+' directly before the digits if plus is set.
func (n *T) AppendField(dst []byte, plus bool) (b []byte, err error) {
	b = dst
	var scratch [20]byte
	digits := n.Marshal(scratch[:0])
	w := len(digits)
	if plus {
		w++
	}
	if w > FieldWidth {
		err = errors.Wrapf(ErrTooWide, "%d needs %d bytes", n.N, w)
		return
	}
	for ; w < FieldWidth; w++ {
		b = append(b, ' ')
	}
	if plus {
		b = append(b, '+')
	}
	b = append(b, digits...)
	return
}

// Unmarshal reads a positive decimal integer no larger than math.MaxUint64,
// skipping any non-numeric content before it, and returns what follows the
// digits. Leading zeros are padding, so a zero padded field such as "00012345"
// reads as 12345.
func (n *T) Unmarshal(b []byte) (r []byte, err error) {
	if len(b) < 1 {
		err = errorf.E("zero length number")
		return
	}
	var sLen int
	// skip non-number characters
	for i, v := range b {
		if v >= zero && v <= nine {
			b = b[i:]
			break
		}
	}
	if b[0] < zero || b[0] > nine {
		err = io.EOF
		return
	}
	// zeros ahead of another digit are padding
	for len(b) > 1 && b[0] == zero && b[1] >= zero && b[1] <= nine {
		b = b[1:]
	}
	// count the digits
	for ; sLen < len(b) && b[sLen] >= zero && b[sLen] <= nine; sLen++ {
	}
	if sLen > 20 {
		err = errorf.E("too big number for uint64")
		return
	}
	// the length of the string found
	r = b[sLen:]
	b = b[:sLen]
	n.N = 0
	for _, ch := range b {
		ch -= zero
		n.N = n.N*10 + uint64(ch)
	}
	return
}
