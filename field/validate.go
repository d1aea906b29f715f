package field

import (
	"github.com/pkg/errors"

	"fixint.lol/scalar"
)

var (
	ErrEmpty       = errors.New("empty field")
	ErrTooLong     = errors.New("field wider than 8 significant bytes")
	ErrInvalidByte = errors.New("invalid byte in field")
	ErrNoDigits    = errors.New("field has no digits")
)

// Validate is the strict check the lookup path deliberately skips. It accepts
// optional whitespace padding either side of an optional '+' and one or more digits,
// with no more than Width bytes between the padding.
func Validate(b []byte) (err error) {
	start, end := 0, trimRight(b)
	for start < end && scalar.IsSpace(b[start]) {
		start++
	}
	if start == end {
		return ErrEmpty
	}
	if end-start > Width {
		return errors.Wrapf(ErrTooLong, "%d bytes", end-start)
	}
	i := start
	if b[i] == '+' {
		i++
	}
	if i == end {
		return ErrNoDigits
	}
	for ; i < end; i++ {
		if b[i] < '0' || b[i] > '9' {
			return errors.Wrapf(ErrInvalidByte, "%q at offset %d", b[i], i)
		}
	}
	return
}
