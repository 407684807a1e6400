package far

import (
	"io"
)

// sttableIndexEntry is one (key, fst-offset) pair in the tail index.
type sttableIndexEntry struct {
	key    string
	offset int64
}

// STTableWriter builds a sorted, random-access archive: keys must be
// added in strictly increasing order. Close writes the tail index and
// the trailing index-offset i64, per spec §4.8's STTABLE layout, ported
// from the magic-number/record-layout conventions in original_source's
// sttable.cc.
type STTableWriter struct {
	w        io.Writer
	pos      int64
	lastKey  string
	hasLast  bool
	index    []sttableIndexEntry
	closed   bool
}

// CreateSTTable opens a new STTABLE archive writing to w.
func CreateSTTable(w io.Writer) (*STTableWriter, error) {
	if err := writeI32(w, MagicSTTable); err != nil {
		return nil, err
	}
	return &STTableWriter{w: w, pos: 4}, nil
}

// Add appends key/fstBytes; key must be strictly greater than the
// previously added key.
func (sw *STTableWriter) Add(key string, fstBytes []byte) error {
	if sw.closed {
		return ErrClosed
	}
	if sw.hasLast && compareKeys(key, sw.lastKey) <= 0 {
		return ErrOutOfOrderKey
	}
	sw.index = append(sw.index, sttableIndexEntry{key: key, offset: sw.pos})
	if err := writeLenPrefixed(sw.w, []byte(key)); err != nil {
		return err
	}
	sw.pos += 4 + int64(len(key))
	if err := writeLenPrefixed(sw.w, fstBytes); err != nil {
		return err
	}
	sw.pos += 4 + int64(len(fstBytes))
	sw.lastKey, sw.hasLast = key, true
	return nil
}

// Close writes the tail index (key, fst-offset)* followed by the i64
// index-offset trailer.
func (sw *STTableWriter) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true
	indexStart := sw.pos
	for _, e := range sw.index {
		if err := writeLenPrefixed(sw.w, []byte(e.key)); err != nil {
			return err
		}
		if err := writeI64(sw.w, e.offset); err != nil {
			return err
		}
	}
	return writeI64(sw.w, indexStart)
}

// STTableReader provides random-access Find via binary search over the
// tail index, plus sequential Done/Next/GetKey/GetFST iteration.
type STTableReader struct {
	r     io.ReaderAt
	index []sttableIndexEntry
	pos   int // cursor into index for sequential iteration
}

// OpenSTTable reads size bytes of STTABLE-formatted data from r (an
// io.ReaderAt over the whole archive, so Find can seek directly to any
// record without disturbing sequential iteration state).
func OpenSTTable(r io.ReaderAt, size int64) (*STTableReader, error) {
	var magicBuf [4]byte
	if _, err := r.ReadAt(magicBuf[:], 0); err != nil {
		return nil, err
	}
	magic := int32(magicBuf[0]) | int32(magicBuf[1])<<8 | int32(magicBuf[2])<<16 | int32(magicBuf[3])<<24
	if magic != MagicSTTable {
		return nil, ErrBadMagic
	}
	var trailerBuf [8]byte
	if _, err := r.ReadAt(trailerBuf[:], size-8); err != nil {
		return nil, err
	}
	indexOffset := int64(0)
	for i := 7; i >= 0; i-- {
		indexOffset = indexOffset<<8 | int64(trailerBuf[i])
	}
	sr := io.NewSectionReader(r, indexOffset, size-8-indexOffset)
	var index []sttableIndexEntry
	for {
		key, err := readLenPrefixed(sr)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		off, err := readI64(sr)
		if err != nil {
			return nil, err
		}
		index = append(index, sttableIndexEntry{key: string(key), offset: off})
	}
	return &STTableReader{r: r, index: index}, nil
}

func (tr *STTableReader) Done() bool { return tr.pos >= len(tr.index) }

func (tr *STTableReader) Next() { tr.pos++ }

func (tr *STTableReader) Reset() { tr.pos = 0 }

func (tr *STTableReader) GetKey() string {
	if tr.Done() {
		return ""
	}
	return tr.index[tr.pos].key
}

func (tr *STTableReader) GetFST() []byte {
	if tr.Done() {
		return nil
	}
	return tr.readRecordAt(tr.index[tr.pos].offset)
}

func (tr *STTableReader) readRecordAt(offset int64) []byte {
	sr := io.NewSectionReader(tr.r, offset, 1<<62)
	if _, err := readLenPrefixed(sr); err != nil { // key, discarded
		return nil
	}
	fstBytes, err := readLenPrefixed(sr)
	if err != nil {
		return nil
	}
	return fstBytes
}

// Find binary-searches the tail index for key, positioning the cursor
// on it if found.
func (tr *STTableReader) Find(key string) bool {
	lo, hi := 0, len(tr.index)
	for lo < hi {
		mid := (lo + hi) / 2
		if compareKeys(tr.index[mid].key, key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(tr.index) && tr.index[lo].key == key {
		tr.pos = lo
		return true
	}
	tr.pos = len(tr.index)
	return false
}
