package semiring

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// RealWeight is the ordinary (+, ×) semiring over the reals. It is not
// idempotent and not a path semiring; it is the classic second component
// of an ExpectationWeight, carrying an expected value (or a count) that
// accumulates additively along ⊕ and multiplicatively along ⊗ with the
// probability mass tracked by the first component (spec §4.1's
// expectation-semiring formula). Present in original_source's
// expectation-weight.h design note but dropped from the distilled spec's
// data model; restored here since ExpectationWeight is unusable without a
// genuine second semiring to pair it with.
type RealWeight float64

// RealZero is the ⊕-identity / ⊗-annihilator: 0.
func RealZero() RealWeight { return RealWeight(0) }

// RealOne is the ⊗-identity: 1.
func RealOne() RealWeight { return RealWeight(1) }

// RealSemiring bundles the identities for generic code.
var RealSemiring = SemiringOps[RealWeight]{Zero: RealZero(), One: RealOne()}

func (w RealWeight) Plus(other RealWeight) RealWeight { return w + other }

func (w RealWeight) Times(other RealWeight) RealWeight { return w * other }

// Divide is ordinary division; RealWeight is a field under ⊗ away from 0.
func (w RealWeight) Divide(other RealWeight, _ DivideSide) RealWeight {
	if other == 0 {
		return RealWeight(math.NaN())
	}
	return w / other
}

func (w RealWeight) Member() bool { return !math.IsNaN(float64(w)) }

func (w RealWeight) Quantize(delta float64) RealWeight {
	if delta <= 0 {
		return w
	}
	return RealWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

func (w RealWeight) Reverse() RealWeight { return w }

func (w RealWeight) ApproxEqual(other RealWeight, delta float64) bool {
	return math.Abs(float64(w)-float64(other)) <= delta
}

func (w RealWeight) Type() string { return "real" }

func (w RealWeight) Properties() Properties { return SemiringSemiring | Commutative }

func (w RealWeight) String() string { return strconv.FormatFloat(float64(w), 'g', -1, 64) }

func (w RealWeight) WriteTo(dst io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(w)))
	_, err := dst.Write(buf[:])
	return err
}

// ReadRealWeight reads the payload written by WriteTo.
func ReadRealWeight(src io.Reader) (RealWeight, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}
	return RealWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
}

// realAdder is a plain running sum; RealWeight's ⊕ needs no
// stabilization trick the way LogWeight's does.
type realAdder struct{ sum RealWeight }

// NewRealAdder returns an Adder seeded at RealZero.
func NewRealAdder() Adder[RealWeight] { return &realAdder{sum: RealZero()} }

func (a *realAdder) Add(w RealWeight) RealWeight {
	a.sum += w
	return a.sum
}

func (a *realAdder) Sum() RealWeight { return a.sum }

func (a *realAdder) Reset(w RealWeight) { a.sum = w }
