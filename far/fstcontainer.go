package far

import (
	"io"
	"path/filepath"
)

// FSTWriter is the degenerate single-entry archive: Add may be called
// at most once, and Close writes nothing further since the plain FST
// file has no archive framing of its own.
type FSTWriter struct {
	w      io.Writer
	added  bool
	closed bool
}

// CreateFST opens a degenerate archive writing to w.
func CreateFST(w io.Writer) (*FSTWriter, error) { return &FSTWriter{w: w}, nil }

// Add writes fstBytes verbatim; key is ignored on the wire (a plain FST
// file carries no key) but must be supplied for interface conformance.
func (fw *FSTWriter) Add(key string, fstBytes []byte) error {
	if fw.closed {
		return ErrClosed
	}
	if fw.added {
		return ErrOutOfOrderKey
	}
	fw.added = true
	_, err := fw.w.Write(fstBytes)
	return err
}

func (fw *FSTWriter) Close() error { fw.closed = true; return nil }

// FSTReader wraps a single FST's raw bytes as a one-entry archive; its
// key is the basename of source, per spec §4.8.
type FSTReader struct {
	key  string
	data []byte
	done bool
}

// OpenFSTEntry reads all of r as a single FST archive entry, keyed by
// the basename of sourcePath.
func OpenFSTEntry(r io.Reader, sourcePath string) (*FSTReader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &FSTReader{key: filepath.Base(sourcePath), data: data}, nil
}

func (fr *FSTReader) Done() bool { return fr.done }

func (fr *FSTReader) Next() { fr.done = true }

func (fr *FSTReader) GetKey() string { return fr.key }

func (fr *FSTReader) GetFST() []byte { return fr.data }

func (fr *FSTReader) Find(key string) bool {
	if key == fr.key {
		fr.done = false
		return true
	}
	return false
}

func (fr *FSTReader) Reset() { fr.done = false }
