package mmap

import (
	"errors"
	"unsafe"

	"github.com/google/uuid"
)

// Provenance identifies how a Region obtained its backing bytes, and
// therefore what Close must do to release them.
type Provenance int

const (
	// Heap backing is a plain Go-allocated byte slice; Close only marks
	// the Region closed and drops its slice.
	Heap Provenance = iota
	// Mapped backing came from MapFile; Close unmaps it.
	Mapped
	// Borrowed backing is owned by the caller; Close only marks the
	// Region closed, and the caller must keep the buffer alive for the
	// Region's lifetime.
	Borrowed
)

// ErrClosed is returned by Bytes on a Region that has already been
// released.
var ErrClosed = errors.New("mmap: region is closed")

// Region owns (or borrows) a contiguous byte range. Its address is
// stable for its lifetime; for a Mapped region the mapping is shared
// read-only across processes that map the same file range.
type Region struct {
	id     uuid.UUID
	prov   Provenance
	data   []byte
	closer func() error
	closed bool
}

// ID returns a handle unique to this Region instance, generated once at
// construction. It carries no semantic meaning beyond letting a caller
// correlate a Region across log lines or a diagnostics dump — two
// Regions backed by the same underlying bytes (e.g. one AllocateHeap
// call followed by wrapping its slice in a Borrow) get distinct IDs.
func (r *Region) ID() uuid.UUID { return r.id }

// AllocateHeap wraps a freshly allocated, optionally aligned byte slice.
// align, if > 0, must be a power of two; the returned Region's Bytes()
// begins at an address that is a multiple of align within the process's
// address space when the Go runtime's allocator itself permits it (Go
// does not expose raw alignment control, so this over-allocates and
// slices to the first aligned offset it can find).
func AllocateHeap(size, align int) *Region {
	if align <= 1 {
		return &Region{id: uuid.New(), prov: Heap, data: make([]byte, size)}
	}
	buf := make([]byte, size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) % uintptr(align)); rem != 0 {
		off = align - rem
	}
	return &Region{id: uuid.New(), prov: Heap, data: buf[off : off+size]}
}

// Borrow wraps a caller-owned buffer without taking ownership.
func Borrow(data []byte) *Region {
	return &Region{id: uuid.New(), prov: Borrowed, data: data}
}

// newMapped is used by the platform-specific MapFile implementations to
// construct the Region around an OS mapping plus its unmap closure.
func newMapped(data []byte, closer func() error) *Region {
	return &Region{id: uuid.New(), prov: Mapped, data: data, closer: closer}
}

// Provenance reports how the Region's bytes were obtained.
func (r *Region) Provenance() Provenance { return r.prov }

// Bytes returns the Region's backing slice. The returned slice must not
// be retained past Close.
func (r *Region) Bytes() ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.data, nil
}

// Len returns the Region's length in bytes.
func (r *Region) Len() int { return len(r.data) }

// Close releases the Region's backing bytes: it unmaps a Mapped region,
// and for every provenance marks the Region closed so later Bytes calls
// return ErrClosed. Calling Close more than once is safe.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.data = nil
	if r.closer != nil {
		return r.closer()
	}
	return nil
}
