package far

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ArchiveType selects a FAR container layout.
type ArchiveType int

const (
	STTable ArchiveType = iota
	STList
	FST
)

// EntryType selects how a text-to-string-FST conversion layer (outside
// this package) interprets a text source: one line per FST, or one
// whole file per FST. FAR itself never inspects these; the enum is
// carried purely as a typed constant for that out-of-scope layer.
type EntryType int

const (
	Line EntryType = iota
	File
)

// TokenType selects how that same out-of-scope layer tokenizes text
// into labels: raw bytes, UTF-8 codepoints, or a provided SymbolTable.
type TokenType int

const (
	ByteToken TokenType = iota
	UTF8Token
	SymbolToken
)

// Magic numbers per spec §4.8.
const (
	MagicSTTable int32 = 0x71a8c0e6
	MagicSTList  int32 = 0x3cb9b4b8
)

var (
	// ErrOutOfOrderKey is returned by an STTABLE Writer's Add when key is
	// not strictly greater than the previously added key.
	ErrOutOfOrderKey = errors.New("far: key out of order for STTABLE")

	// ErrBadMagic is returned when an archive's magic number doesn't
	// match the expected container type.
	ErrBadMagic = errors.New("far: bad magic number")

	// ErrKeyNotFound names the no-match outcome; Find itself reports a
	// miss through its bool result and does not return this error.
	ErrKeyNotFound = errors.New("far: key not found")

	// ErrClosed is returned by Add on an already-closed Writer; Close on
	// an already-closed Writer returns nil.
	ErrClosed = errors.New("far: writer is closed")
)

func writeLenPrefixed(w io.Writer, b []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readLenPrefixed(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeI32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func readI32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func writeI64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func readI64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// Entry is one key/FST-bytes pair, the unit ExtractRange returns.
type Entry struct {
	Key   string
	FST   []byte
}

// Reader is the read side common to every container: sequential
// iteration plus random-access Find. STLIST implements Find as a linear
// forward seek; STTABLE as a binary search over its tail index.
type Reader interface {
	Done() bool
	Next()
	GetKey() string
	GetFST() []byte
	Find(key string) bool
	Reset()
}

// Writer is the write side common to every container.
type Writer interface {
	Add(key string, fstBytes []byte) error
	Close() error
}

// compareKeys compares two keys lexicographically as raw bytes.
func compareKeys(a, b string) int { return bytes.Compare([]byte(a), []byte(b)) }
