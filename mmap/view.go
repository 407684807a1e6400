package mmap

import (
	"errors"
	"unsafe"
)

// ErrViewSize indicates a Region's length is not an exact multiple of
// an element type's size, so it cannot be viewed without truncation.
var ErrViewSize = errors.New("mmap: region length is not a multiple of element size")

// ErrViewAlignment indicates a Region's backing address does not meet
// the alignment an element type requires for View.
var ErrViewAlignment = errors.New("mmap: region is not aligned for this element type")

// View reinterprets r's backing bytes as a slice of E without copying:
// the returned slice aliases r's memory directly. E must be a
// fixed-size value with no pointers (an arc/element struct of plain
// integers and fixed-width weights, not anything holding a slice or
// interface) whose Go memory layout matches the bytes' on-disk layout
// field-for-field — true for a codec that does a straight little-endian
// put/get per field on a little-endian host. The returned slice
// must not be retained past r.Close.
func View[E any](r *Region) ([]E, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	var zero E
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return nil, nil
	}
	if len(data)%sz != 0 {
		return nil, ErrViewSize
	}
	if len(data) == 0 {
		return nil, nil
	}
	if uintptr(unsafe.Pointer(&data[0]))%unsafe.Alignof(zero) != 0 {
		return nil, ErrViewAlignment
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&data[0])), len(data)/sz), nil
}
