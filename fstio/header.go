package fstio

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

// Magic is the fixed 32-bit value every FST file begins with.
const Magic int32 = 0x7eb2fdd4

// ErrBadMagic is returned when a stream does not begin with Magic.
var ErrBadMagic = errors.New("fstio: bad magic number")

// ErrUnsupportedVersion is returned when a header names a Version
// outside the reader's [MinSupported, Current] range for that fst_type.
var ErrUnsupportedVersion = errors.New("fstio: unsupported format version")

// ErrTruncated is returned when a read runs out of bytes mid-field.
var ErrTruncated = errors.New("fstio: truncated stream")

// ByteOrderMode records the intended weight-payload byte order for a
// file. Every weight codec in this module currently writes/reads
// little-endian unconditionally (see package doc), so HostEndian and
// LittleEndian are presently equivalent on disk; the mode is still
// written and read so existing files carry a stable, round-trippable
// value and a future per-weight host-endian path has a place to read
// its setting from without another format bump.
type ByteOrderMode int32

const (
	HostEndian ByteOrderMode = iota
	LittleEndian
)

// Flag bits packed into Header.Flags.
const (
	FlagHasInputSymbols  int32 = 1 << 0
	FlagHasOutputSymbols int32 = 1 << 1
	FlagIsAligned        int32 = 1 << 2
)

// Header is the fixed-shape preamble written at the start of every FST
// file, matching spec §4.6's field table exactly plus the ByteOrderMode
// extension resolving the byte-order open question.
type Header struct {
	FstType       string
	ArcType       string
	Version       int32
	Flags         int32
	Properties    uint64
	Start         int64
	NumStates     int64
	NumArcs       int64
	ByteOrderMode ByteOrderMode
}

// HasInputSymbols reports Flags bit 0.
func (h Header) HasInputSymbols() bool { return h.Flags&FlagHasInputSymbols != 0 }

// HasOutputSymbols reports Flags bit 1.
func (h Header) HasOutputSymbols() bool { return h.Flags&FlagHasOutputSymbols != 0 }

// IsAligned reports Flags bit 2.
func (h Header) IsAligned() bool { return h.Flags&FlagIsAligned != 0 }

func writeString(w io.Writer, s string) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(s)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", ErrTruncated
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrTruncated
	}
	return string(buf), nil
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
		return 0, ErrTruncated
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func writeU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func writeI64(w io.Writer, v int64) error { return writeU64(w, uint64(v)) }

func readI64(r io.Reader) (int64, error) {
	v, err := readU64(r)
	return int64(v), err
}

// WriteHeader serializes h: magic, fst_type, arc_type, version, flags,
// properties, start, numstates, numarcs, then (as an extension beyond
// spec.md's literal field list) the ByteOrderMode int32.
func WriteHeader(w io.Writer, h Header) error {
	if err := writeI32(w, Magic); err != nil {
		return err
	}
	if err := writeString(w, h.FstType); err != nil {
		return err
	}
	if err := writeString(w, h.ArcType); err != nil {
		return err
	}
	version := h.Version
	if h.ByteOrderMode == LittleEndian && version < 2 {
		version = 2
	}
	if err := writeI32(w, version); err != nil {
		return err
	}
	if err := writeI32(w, h.Flags); err != nil {
		return err
	}
	if err := writeU64(w, h.Properties); err != nil {
		return err
	}
	if err := writeI64(w, h.Start); err != nil {
		return err
	}
	if err := writeI64(w, h.NumStates); err != nil {
		return err
	}
	if err := writeI64(w, h.NumArcs); err != nil {
		return err
	}
	return writeI32(w, int32(h.ByteOrderMode))
}

// versionRangeFor returns the VersionRange a reader should enforce for
// fstType, and whether one is known; an unrecognized fst_type (e.g. a
// forward-compatible type this reader predates) has no range to check
// against and is let through unchecked.
func versionRangeFor(fstType string) (VersionRange, bool) {
	switch {
	case fstType == "vector":
		return VectorVersions, true
	case strings.HasPrefix(fstType, "compact_"):
		return CompactVersions, true
	default:
		return VersionRange{}, false
	}
}

// ReadHeader parses a Header, validating the magic number and — per
// spec §7 ("wrong version -> return null FST") — the Version field
// against the known range for h.FstType: a file outside that range is
// rejected here rather than being silently accepted and misread later.
func ReadHeader(r io.Reader) (Header, error) {
	magic, err := readI32(r)
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, ErrBadMagic
	}
	var h Header
	if h.FstType, err = readString(r); err != nil {
		return Header{}, err
	}
	if h.ArcType, err = readString(r); err != nil {
		return Header{}, err
	}
	if h.Version, err = readI32(r); err != nil {
		return Header{}, err
	}
	if h.Flags, err = readI32(r); err != nil {
		return Header{}, err
	}
	if h.Properties, err = readU64(r); err != nil {
		return Header{}, err
	}
	if h.Start, err = readI64(r); err != nil {
		return Header{}, err
	}
	if h.NumStates, err = readI64(r); err != nil {
		return Header{}, err
	}
	if h.NumArcs, err = readI64(r); err != nil {
		return Header{}, err
	}
	bom, err := readI32(r)
	if err != nil {
		return Header{}, err
	}
	h.ByteOrderMode = ByteOrderMode(bom)
	if vr, ok := versionRangeFor(h.FstType); ok {
		if err := vr.CheckVersion(h.Version); err != nil {
			return Header{}, err
		}
	}
	return h, nil
}

// VersionRange bounds the versions a reader accepts for one fst_type.
type VersionRange struct {
	Min, Current int32
}

// CheckVersion rejects a version outside [r.Min, r.Current].
func (r VersionRange) CheckVersion(v int32) error {
	if v < r.Min || v > r.Current {
		return ErrUnsupportedVersion
	}
	return nil
}

// VectorVersions is the supported version range for fst_type "vector".
// Version 2 is used when ByteOrderMode == LittleEndian (the bump spec §9
// calls for); version 1 is the historical HostEndian-only format.
var VectorVersions = VersionRange{Min: 1, Current: 2}

// CompactVersions is the supported version range for fst_type
// "compact_*"; version 2 carries the same LittleEndian bump as Vector.
var CompactVersions = VersionRange{Min: 1, Current: 2}
