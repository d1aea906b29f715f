//go:build !(linux || darwin)

package table

import (
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// reserve falls back to the Go heap where there is no anonymous mmap wired up.
// make zeroes the slice; a failure to find the memory is a runtime fatal rather
// than an error here.
func reserve[V Value](n u64) (s []V, release func() error, err error) {
	var v V
	size := n * u64(unsafe.Sizeof(v))
	if size > math.MaxInt {
		err = errors.Wrapf(ErrAddressSpace, "%s table", humanize.IBytes(size))
		return
	}
	s = make([]V, no(n))
	release = func() error { return nil }
	return
}
