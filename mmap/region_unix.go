//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// MapFile memory-maps the region of f starting at offset for length
// bytes, read-only, shared across processes that map the same range.
func MapFile(f *os.File, offset, length int64) (*Region, error) {
	data, err := unix.Mmap(int(f.Fd()), offset, int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	closer := func() error { return unix.Munmap(data) }
	return newMapped(data, closer), nil
}
