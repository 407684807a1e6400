package fstio

import "io"

// ErrAlignment describes a section whose start offset cannot be
// determined, so an aligned section cannot be positioned correctly. No
// function in this package returns it.
type ErrAlignment struct{ Reason string }

func (e *ErrAlignment) Error() string { return "fstio: alignment failure: " + e.Reason }

// Pad writes n NUL bytes to w.
func Pad(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	zeros := make([]byte, n)
	_, err := w.Write(zeros)
	return err
}

// Skip discards n bytes from r.
func Skip(r io.Reader, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.CopyN(io.Discard, r, int64(n))
	return err
}

// AlignOffset computes (-pos) mod alignment: the number of padding bytes
// needed so a section starting after them begins at a multiple of
// alignment. alignment must be a positive power of two.
func AlignOffset(pos int64, alignment int) int {
	if alignment <= 1 {
		return 0
	}
	rem := int(pos % int64(alignment))
	if rem == 0 {
		return 0
	}
	return alignment - rem
}

// PadTo pads w so that a section beginning right after this call starts
// at a multiple of alignment, given the stream's current position pos.
// It returns the number of bytes written.
func PadTo(w io.Writer, pos int64, alignment int) (int, error) {
	n := AlignOffset(pos, alignment)
	if err := Pad(w, n); err != nil {
		return 0, err
	}
	return n, nil
}

// SkipTo discards bytes from r so that a section beginning right after
// this call is read starting at a multiple of alignment, given the
// stream's current read position pos. It returns the number of bytes
// skipped.
func SkipTo(r io.Reader, pos int64, alignment int) (int, error) {
	n := AlignOffset(pos, alignment)
	if err := Skip(r, n); err != nil {
		return 0, err
	}
	return n, nil
}
