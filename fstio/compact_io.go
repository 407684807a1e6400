package fstio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/wfstlib/wfst/compact"
	"github.com/wfstlib/wfst/mmap"
	"github.com/wfstlib/wfst/semiring"
)

// ElementCodec encodes/decodes one Compactor Element to/from its fixed-
// width wire form; the caller supplies one per Element type, since a
// generic function cannot otherwise know an arbitrary E's byte layout.
type ElementCodec[E any] struct {
	Size   int // bytes per Element, for alignment padding
	Encode func(E) []byte
	Decode func([]byte) E
}

// WriteCompact serializes a CompactFst's body per spec §4.6: the
// compactor's own parameters via its WriteTo, then (variable layout
// only) the states offset array with alignment padding, then the
// compacts array with alignment padding. posAfterHeader is the stream's
// absolute position right after the compactor's WriteTo output, used to
// compute alignment padding; the caller supplies it because
// Compactor.WriteTo does not report its own length.
func WriteCompact[S semiring.Semiring[S], E any](w io.Writer, compactor compact.Compactor[S, E], store *compact.DefaultCompactStore[E], codec ElementCodec[E], aligned bool, posAfterHeader int64) (int64, error) {
	if err := compactor.WriteTo(w); err != nil {
		return posAfterHeader, err
	}
	pos := posAfterHeader
	if store.Size() < 0 {
		if aligned {
			padded, err := PadTo(w, pos, 8)
			if err != nil {
				return pos, err
			}
			pos += int64(padded)
		}
		for _, off := range store.States() {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], uint64(off))
			if _, err := w.Write(buf[:]); err != nil {
				return pos, err
			}
			pos += 8
		}
	}
	if aligned {
		padded, err := PadTo(w, pos, codec.Size)
		if err != nil {
			return pos, err
		}
		pos += int64(padded)
	}
	for i := 0; i < store.NumCompacts(); i++ {
		buf := codec.Encode(store.Element(i))
		if _, err := w.Write(buf); err != nil {
			return pos, err
		}
		pos += int64(len(buf))
	}
	return pos, nil
}

// ReadCompact reconstructs a DefaultCompactStore from its serialized
// body. size is the compactor's Size() (positive k, or -1 for variable);
// nstates/ncompacts come from the FstHeader's NumStates/NumArcs fields
// (ncompacts is used only for size > 0; for size == -1 the element
// count is taken from the last states offset instead).
func ReadCompact[E any](r io.Reader, size, nstates, ncompacts int, codec ElementCodec[E], aligned bool, posAfterHeader int64) (*compact.DefaultCompactStore[E], int64, error) {
	pos := posAfterHeader
	var states []int64
	if size < 0 {
		if aligned {
			skipped, err := SkipTo(r, pos, 8)
			if err != nil {
				return nil, pos, err
			}
			pos += int64(skipped)
		}
		states = make([]int64, nstates+1)
		for i := range states {
			var buf [8]byte
			if _, err := io.ReadFull(r, buf[:]); err != nil {
				return nil, pos, ErrTruncated
			}
			states[i] = int64(binary.LittleEndian.Uint64(buf[:]))
			pos += 8
		}
		ncompacts = int(states[nstates])
	}
	if aligned {
		skipped, err := SkipTo(r, pos, codec.Size)
		if err != nil {
			return nil, pos, err
		}
		pos += int64(skipped)
	}
	elems := make([]E, ncompacts)
	for i := range elems {
		buf := make([]byte, codec.Size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, pos, ErrTruncated
		}
		elems[i] = codec.Decode(buf)
		pos += int64(codec.Size)
	}
	var store *compact.DefaultCompactStore[E]
	var err error
	if size > 0 {
		store, err = compact.NewFixedStore(size, nstates, elems)
	} else {
		store, err = compact.NewVariableStore(nstates, states, elems)
	}
	return store, pos, err
}

// ReadCompactMapped reconstructs a DefaultCompactStore the same way
// ReadCompact does, except the states/compacts sections are views over
// a single memory mapping of f rather than copies onto the heap: spec
// §4.7's "Compact stores use it to expose states/compacts as typed
// slices without copy." It maps the whole file once from offset 0 (the
// only offset mmap(2) guarantees page alignment for) and slices the
// states/compacts sections out of that mapping with ordinary Go slicing
// rather than issuing a separate mmap per section. The result is
// bit-identical to ReadCompact's only when codec's wire encoding matches
// E's native Go memory layout field-for-field — true for a straight
// little-endian put/get codec on a little-endian host; codec.Decode is not
// consulted at all on this path, so a codec that transforms bytes
// beyond a byte-order swap (e.g. a host running big-endian) must not be
// used here.
func ReadCompactMapped[E any](f *os.File, size, nstates, ncompacts int, codec ElementCodec[E], aligned bool, posAfterHeader int64) (*compact.DefaultCompactStore[E], int64, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, posAfterHeader, err
	}
	root, err := mmap.MapFile(f, 0, info.Size())
	if err != nil {
		return nil, posAfterHeader, err
	}
	data, err := root.Bytes()
	if err != nil {
		root.Close()
		return nil, posAfterHeader, err
	}

	pos := posAfterHeader
	var statesRegion *mmap.Region
	if size < 0 {
		if aligned {
			pos += int64(AlignOffset(pos, 8))
		}
		statesLen := int64(nstates+1) * 8
		if pos+statesLen > int64(len(data)) {
			root.Close()
			return nil, pos, ErrTruncated
		}
		statesRegion = mmap.Borrow(data[pos : pos+statesLen])
		states, err := mmap.View[int64](statesRegion)
		if err != nil {
			root.Close()
			return nil, pos, err
		}
		pos += statesLen
		ncompacts = int(states[nstates])
	}
	if aligned {
		pos += int64(AlignOffset(pos, codec.Size))
	}
	compactsLen := int64(ncompacts) * int64(codec.Size)
	if pos+compactsLen > int64(len(data)) {
		root.Close()
		return nil, pos, ErrTruncated
	}
	compactsRegion := mmap.Borrow(data[pos : pos+compactsLen])
	pos += compactsLen

	var store *compact.DefaultCompactStore[E]
	if size > 0 {
		store, err = compact.NewFixedStoreFromRegion[E](size, nstates, compactsRegion)
	} else {
		store, err = compact.NewVariableStoreFromRegion[E](nstates, statesRegion, compactsRegion)
	}
	if err != nil {
		root.Close()
		return nil, pos, err
	}
	store.RetainRegion(root)
	return store, pos, nil
}
