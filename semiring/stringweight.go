package semiring

import (
	"encoding/binary"
	"errors"
	"io"
)

// StringLabel mirrors the underlying integer type of an FST arc label,
// restated locally so this package has no dependency on package fst.
type StringLabel int64

// StringKind selects which of OpenFst's three string-semiring variants a
// StringWeight belongs to. Times concatenates left-to-right for
// StringLeft, right-to-left for StringRight, and StringRestrict behaves
// like StringLeft but additionally requires Plus's two operands to be
// equal, reporting a non-member result otherwise.
type StringKind int

const (
	StringLeft StringKind = iota
	StringRight
	StringRestrict
)

func (k StringKind) String() string {
	switch k {
	case StringLeft:
		return "left_string"
	case StringRight:
		return "right_string"
	case StringRestrict:
		return "restricted_string"
	default:
		return "string"
	}
}

// ErrStringKindMismatch is returned by operations combining StringWeights
// of different StringKind.
var ErrStringKindMismatch = errors.New("semiring: StringWeight kind mismatch")

// StringWeight represents a (possibly empty) sequence of labels, plus the
// distinguished infinite element that serves as Zero: Plus(x, Zero) = x.
// Times is sequence concatenation; Plus is longest-common-prefix (Left),
// longest-common-suffix (Right), or exact-match-or-invalid (Restrict).
type StringWeight struct {
	kind     StringKind
	infinite bool
	invalid  bool
	labels   []StringLabel
}

// NewStringWeight builds a finite StringWeight over the given labels.
func NewStringWeight(kind StringKind, labels ...StringLabel) StringWeight {
	cp := make([]StringLabel, len(labels))
	copy(cp, labels)
	return StringWeight{kind: kind, labels: cp}
}

// StringZero returns the infinite-string Zero element for the given kind.
func StringZero(kind StringKind) StringWeight { return StringWeight{kind: kind, infinite: true} }

// StringOne returns the empty-string One element for the given kind.
func StringOne(kind StringKind) StringWeight { return StringWeight{kind: kind} }

// Kind reports which of the three string-semiring variants w belongs to.
func (w StringWeight) Kind() StringKind { return w.kind }

// Labels returns the underlying label sequence; meaningless if Zero.
func (w StringWeight) Labels() []StringLabel { return w.labels }

func commonLen(a, b []StringLabel, fromEnd bool) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n {
		var x, y StringLabel
		if fromEnd {
			x, y = a[len(a)-1-i], b[len(b)-1-i]
		} else {
			x, y = a[i], b[i]
		}
		if x != y {
			break
		}
		i++
	}
	return i
}

func slice(a []StringLabel, fromEnd bool, n int) []StringLabel {
	if fromEnd {
		return a[len(a)-n:]
	}
	return a[:n]
}

// Plus picks the longest common prefix (Left), longest common suffix
// (Right), or requires exact equality (Restrict); Zero is absorbed.
func (w StringWeight) Plus(other StringWeight) StringWeight {
	if w.infinite {
		return other
	}
	if other.infinite {
		return w
	}
	switch w.kind {
	case StringRestrict:
		if len(w.labels) != len(other.labels) {
			return StringWeight{kind: w.kind, invalid: true}
		}
		for i := range w.labels {
			if w.labels[i] != other.labels[i] {
				return StringWeight{kind: w.kind, invalid: true}
			}
		}
		return w
	case StringRight:
		n := commonLen(w.labels, other.labels, true)
		return StringWeight{kind: w.kind, labels: slice(w.labels, true, n)}
	default: // StringLeft
		n := commonLen(w.labels, other.labels, false)
		return StringWeight{kind: w.kind, labels: slice(w.labels, false, n)}
	}
}

// Times concatenates label sequences: self then other for Left/Restrict,
// other then self for Right. Zero annihilates.
func (w StringWeight) Times(other StringWeight) StringWeight {
	if w.infinite || other.infinite {
		return StringWeight{kind: w.kind, infinite: true}
	}
	out := make([]StringLabel, 0, len(w.labels)+len(other.labels))
	if w.kind == StringRight {
		out = append(out, other.labels...)
		out = append(out, w.labels...)
	} else {
		out = append(out, w.labels...)
		out = append(out, other.labels...)
	}
	return StringWeight{kind: w.kind, labels: out}
}

func (w StringWeight) Member() bool { return !w.invalid }

// Quantize is a no-op: string weights carry no continuous component.
func (w StringWeight) Quantize(delta float64) StringWeight { return w }

// Reverse reverses the label sequence, matching how an FST's path labels
// read in the opposite direction once the FST itself is reversed.
func (w StringWeight) Reverse() StringWeight {
	if w.infinite || w.invalid {
		return w
	}
	out := make([]StringLabel, len(w.labels))
	for i, l := range w.labels {
		out[len(out)-1-i] = l
	}
	return StringWeight{kind: w.kind, labels: out}
}

func (w StringWeight) ApproxEqual(other StringWeight, delta float64) bool {
	if w.infinite != other.infinite || w.invalid != other.invalid {
		return false
	}
	if len(w.labels) != len(other.labels) {
		return false
	}
	for i := range w.labels {
		if w.labels[i] != other.labels[i] {
			return false
		}
	}
	return true
}

func (w StringWeight) Type() string { return w.kind.String() }

func (w StringWeight) Properties() Properties {
	switch w.kind {
	case StringLeft:
		return LeftSemiring | Idempotent | Path
	case StringRight:
		return RightSemiring | Idempotent | Path
	default:
		return SemiringSemiring | Idempotent
	}
}

func (w StringWeight) WriteTo(dst io.Writer) error {
	var hdr [2]byte
	if w.infinite {
		hdr[0] = 1
	}
	if w.invalid {
		hdr[1] = 1
	}
	if _, err := dst.Write(hdr[:]); err != nil {
		return err
	}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(w.labels)))
	if _, err := dst.Write(lenBuf[:]); err != nil {
		return err
	}
	for _, l := range w.labels {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(l))
		if _, err := dst.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadStringWeight reads the payload written by WriteTo for the given kind.
func ReadStringWeight(kind StringKind, src io.Reader) (StringWeight, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(src, hdr[:]); err != nil {
		return StringWeight{}, err
	}
	var lenBuf [4]byte
	if _, err := io.ReadFull(src, lenBuf[:]); err != nil {
		return StringWeight{}, err
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	labels := make([]StringLabel, n)
	for i := range labels {
		var buf [8]byte
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return StringWeight{}, err
		}
		labels[i] = StringLabel(binary.LittleEndian.Uint64(buf[:]))
	}
	return StringWeight{kind: kind, infinite: hdr[0] == 1, invalid: hdr[1] == 1, labels: labels}, nil
}
