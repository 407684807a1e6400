package far

import "io"

// STListWriter builds a streamable archive with no tail index: entries
// are concatenated (key-length, key, fst-length, fst-bytes) records,
// writable to stdout since Close needs no backward seek.
type STListWriter struct {
	w      io.Writer
	closed bool
}

// CreateSTList opens a new STLIST archive writing to w.
func CreateSTList(w io.Writer) (*STListWriter, error) {
	if err := writeI32(w, MagicSTList); err != nil {
		return nil, err
	}
	return &STListWriter{w: w}, nil
}

// Add appends key/fstBytes; STLIST imposes no ordering requirement.
func (lw *STListWriter) Add(key string, fstBytes []byte) error {
	if lw.closed {
		return ErrClosed
	}
	if err := writeLenPrefixed(lw.w, []byte(key)); err != nil {
		return err
	}
	return writeLenPrefixed(lw.w, fstBytes)
}

// Close is a no-op beyond marking the writer closed: STLIST has no tail
// structure to finalize.
func (lw *STListWriter) Close() error {
	lw.closed = true
	return nil
}

// STListReader reads entries sequentially; Find is a linear forward
// seek from the current position (it never seeks backward, matching a
// genuinely streamable source such as stdin).
type STListReader struct {
	r       io.Reader
	key     string
	fst     []byte
	done    bool
	started bool
}

// OpenSTList validates r's magic number and returns a reader already
// positioned on the first entry (or Done if the archive is empty).
func OpenSTList(r io.Reader) (*STListReader, error) {
	magic, err := readI32(r)
	if err != nil {
		return nil, err
	}
	if magic != MagicSTList {
		return nil, ErrBadMagic
	}
	lr := &STListReader{r: r}
	lr.Next()
	return lr, nil
}

func (lr *STListReader) Done() bool { return lr.done }

// Next advances to the next entry, or sets Done on EOF.
func (lr *STListReader) Next() {
	keyBytes, err := readLenPrefixed(lr.r)
	if err != nil {
		lr.done = true
		return
	}
	fstBytes, err := readLenPrefixed(lr.r)
	if err != nil {
		lr.done = true
		return
	}
	lr.key, lr.fst = string(keyBytes), fstBytes
	lr.started = true
}

func (lr *STListReader) GetKey() string { return lr.key }

func (lr *STListReader) GetFST() []byte { return lr.fst }

// Find scans forward from the current position until key is reached or
// passed (STLIST carries no ordering guarantee, so "passed" only means
// "not found in the remainder of a single forward pass").
func (lr *STListReader) Find(key string) bool {
	for !lr.done {
		if lr.started && lr.key == key {
			return true
		}
		lr.Next()
	}
	return false
}

// Reset is unsupported for a genuinely streamable (e.g. stdin-backed)
// source; callers that need to re-scan must reopen the archive.
func (lr *STListReader) Reset() {}
