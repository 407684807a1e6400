package semiring

import (
	"fmt"
	"io"
)

// BooleanWeight is the two-element (OR, AND) semiring used for
// unweighted acceptors and for testing reachability-style questions: Plus
// is logical OR, Times is logical AND, Zero is false, One is true. It is
// idempotent, commutative, and a path semiring.
type BooleanWeight bool

// BooleanZero is the ⊕-identity / ⊗-annihilator: false.
func BooleanZero() BooleanWeight { return BooleanWeight(false) }

// BooleanOne is the ⊗-identity: true.
func BooleanOne() BooleanWeight { return BooleanWeight(true) }

// BooleanSemiring bundles the identities for generic code.
var BooleanSemiring = SemiringOps[BooleanWeight]{Zero: BooleanZero(), One: BooleanOne()}

func (w BooleanWeight) Plus(other BooleanWeight) BooleanWeight { return w || other }

func (w BooleanWeight) Times(other BooleanWeight) BooleanWeight { return w && other }

// Member is always true: every bool value is in-domain.
func (w BooleanWeight) Member() bool { return true }

// Quantize is a no-op: there is nothing to round.
func (w BooleanWeight) Quantize(float64) BooleanWeight { return w }

// Reverse is the identity.
func (w BooleanWeight) Reverse() BooleanWeight { return w }

func (w BooleanWeight) ApproxEqual(other BooleanWeight, _ float64) bool { return w == other }

func (w BooleanWeight) Type() string { return "boolean" }

func (w BooleanWeight) Properties() Properties {
	return SemiringSemiring | Commutative | Idempotent | Path
}

func (w BooleanWeight) String() string {
	if w {
		return "T"
	}
	return "F"
}

// WriteTo serializes the weight as a single byte (0 or 1).
func (w BooleanWeight) WriteTo(dst io.Writer) error {
	b := byte(0)
	if w {
		b = 1
	}
	_, err := dst.Write([]byte{b})
	return err
}

// ReadBooleanWeight reads the byte written by WriteTo.
func ReadBooleanWeight(src io.Reader) (BooleanWeight, error) {
	var buf [1]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return false, err
	}
	switch buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("semiring: invalid BooleanWeight byte %d", buf[0])
	}
}
