//go:build linux || darwin

package table

import (
	"math"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// reserve maps an anonymous private region for n entries. The kernel hands out
// zero pages, and MAP_NORESERVE keeps untouched pages from being charged, so a
// sparse table only costs the pages it writes.
func reserve[V Value](n u64) (s []V, release func() error, err error) {
	var v V
	size := n * u64(unsafe.Sizeof(v))
	if size > math.MaxInt {
		err = errors.Wrapf(ErrAddressSpace, "%s table", humanize.IBytes(size))
		return
	}
	var b []byte
	if b, err = unix.Mmap(-1, 0, no(size), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE|unix.MAP_NORESERVE); err != nil {
		err = errors.Wrapf(err, "mmap %s", humanize.IBytes(size))
		return
	}
	s = unsafe.Slice((*V)(unsafe.Pointer(&b[0])), n)
	release = func() error { return unix.Munmap(b) }
	return
}
