package semiring

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// TropicalWeight is the (min, +) semiring over the extended reals,
// classically used for shortest-path and Viterbi-style search: Plus is
// min, Times is +, Zero is +Inf, One is 0. It is idempotent and a path
// semiring (Plus always yields one of its two operands), and is the
// weight type most algorithms in this module are exercised against.
type TropicalWeight float64

// TropicalZero is the ⊕-identity / ⊗-annihilator: +Inf.
func TropicalZero() TropicalWeight { return TropicalWeight(math.Inf(1)) }

// TropicalOne is the ⊗-identity: 0.
func TropicalOne() TropicalWeight { return TropicalWeight(0) }

// TropicalSemiring bundles the identities for generic code that has no
// sample TropicalWeight value on hand.
var TropicalSemiring = SemiringOps[TropicalWeight]{Zero: TropicalZero(), One: TropicalOne()}

// Plus returns the smaller of the two weights; ties keep the receiver.
func (w TropicalWeight) Plus(other TropicalWeight) TropicalWeight {
	if other < w {
		return other
	}
	return w
}

// Times returns the ordinary sum; +Inf + anything stays +Inf.
func (w TropicalWeight) Times(other TropicalWeight) TropicalWeight {
	return w + other
}

// Divide solves q such that other⊗q == w (DivideLeft/Right coincide: the
// tropical semiring is commutative), i.e. ordinary subtraction.
func (w TropicalWeight) Divide(other TropicalWeight, _ DivideSide) TropicalWeight {
	if math.IsInf(float64(other), 1) {
		if math.IsInf(float64(w), 1) {
			return TropicalOne()
		}
		return TropicalWeight(math.NaN())
	}
	return w - other
}

// Member reports false for NaN; +Inf/-Inf are valid (Zero is +Inf).
func (w TropicalWeight) Member() bool { return !math.IsNaN(float64(w)) }

// Quantize rounds to the nearest multiple of delta (delta<=0 is a no-op).
func (w TropicalWeight) Quantize(delta float64) TropicalWeight {
	if delta <= 0 || math.IsInf(float64(w), 0) {
		return w
	}
	return TropicalWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

// Reverse is the identity for the tropical semiring.
func (w TropicalWeight) Reverse() TropicalWeight { return w }

// ApproxEqual compares within delta, treating two +Inf values as equal.
func (w TropicalWeight) ApproxEqual(other TropicalWeight, delta float64) bool {
	if math.IsInf(float64(w), 1) || math.IsInf(float64(other), 1) {
		return math.IsInf(float64(w), 1) == math.IsInf(float64(other), 1)
	}
	return math.Abs(float64(w)-float64(other)) <= delta
}

// Type identifies the weight's wire/text type name.
func (w TropicalWeight) Type() string { return "tropical" }

// Properties reports the tropical semiring's algebraic capabilities.
func (w TropicalWeight) Properties() Properties {
	return SemiringSemiring | Commutative | Idempotent | Path
}

// String renders the weight the way the original's text I/O does:
// "Infinity" for Zero, otherwise the float64's shortest decimal form.
func (w TropicalWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}

// WriteTo serializes the raw float64 payload, little-endian, with no
// type tag (the FST header carries arc_type separately, per spec §4.1).
func (w TropicalWeight) WriteTo(dst io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(w)))
	_, err := dst.Write(buf[:])
	return err
}

// ReadTropicalWeight reads the payload written by WriteTo.
func ReadTropicalWeight(src io.Reader) (TropicalWeight, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}
	return TropicalWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
}

// tropicalAdder accumulates a tropical Plus-fold; since Plus is min,
// no numerical-stability trick is needed beyond plain comparison.
type tropicalAdder struct{ sum TropicalWeight }

// NewTropicalAdder returns an Adder seeded at TropicalZero.
func NewTropicalAdder() Adder[TropicalWeight] { return &tropicalAdder{sum: TropicalZero()} }

func (a *tropicalAdder) Add(w TropicalWeight) TropicalWeight {
	a.sum = a.sum.Plus(w)
	return a.sum
}

func (a *tropicalAdder) Sum() TropicalWeight { return a.sum }

func (a *tropicalAdder) Reset(w TropicalWeight) { a.sum = w }
