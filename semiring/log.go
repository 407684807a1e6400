package semiring

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// LogWeight is the (-log, +) probability semiring: Plus is -log(e^-a +
// e^-b) (log-sum-exp on negative log probabilities), Times is ordinary +,
// Zero is +Inf, One is 0. Unlike TropicalWeight it is not idempotent or a
// path semiring, but it is commutative and is the semiring shortest-
// distance uses to compute exact path sums (e.g. for posterior mass)
// rather than just the best path.
type LogWeight float64

// LogZero is the ⊕-identity / ⊗-annihilator: +Inf.
func LogZero() LogWeight { return LogWeight(math.Inf(1)) }

// LogOne is the ⊗-identity: 0.
func LogOne() LogWeight { return LogWeight(0) }

// LogSemiring bundles the identities for generic code.
var LogSemiring = SemiringOps[LogWeight]{Zero: LogZero(), One: LogOne()}

// Plus computes -log(exp(-w) + exp(-other)) via the standard
// log-sum-exp-on-negative-logs stabilization (factor out the smaller
// exponent so the other term cannot overflow).
func (w LogWeight) Plus(other LogWeight) LogWeight {
	if math.IsInf(float64(w), 1) {
		return other
	}
	if math.IsInf(float64(other), 1) {
		return w
	}
	if w < other {
		return w - LogWeight(math.Log1p(math.Exp(float64(w-other))))
	}
	return other - LogWeight(math.Log1p(math.Exp(float64(other-w))))
}

// Times is ordinary addition of negative log-probabilities.
func (w LogWeight) Times(other LogWeight) LogWeight { return w + other }

// Divide is ordinary subtraction; the log semiring is a field under ⊗.
func (w LogWeight) Divide(other LogWeight, _ DivideSide) LogWeight {
	if math.IsInf(float64(other), 1) {
		if math.IsInf(float64(w), 1) {
			return LogOne()
		}
		return LogWeight(math.NaN())
	}
	return w - other
}

// Member reports false for NaN.
func (w LogWeight) Member() bool { return !math.IsNaN(float64(w)) }

// Quantize rounds to the nearest multiple of delta.
func (w LogWeight) Quantize(delta float64) LogWeight {
	if delta <= 0 || math.IsInf(float64(w), 0) {
		return w
	}
	return LogWeight(math.Floor(float64(w)/delta+0.5) * delta)
}

// Reverse is the identity for the log semiring.
func (w LogWeight) Reverse() LogWeight { return w }

// ApproxEqual compares within delta, treating two +Inf as equal.
func (w LogWeight) ApproxEqual(other LogWeight, delta float64) bool {
	if math.IsInf(float64(w), 1) || math.IsInf(float64(other), 1) {
		return math.IsInf(float64(w), 1) == math.IsInf(float64(other), 1)
	}
	return math.Abs(float64(w)-float64(other)) <= delta
}

// Type identifies the weight's wire/text type name.
func (w LogWeight) Type() string { return "log" }

// Properties reports the log semiring's algebraic capabilities: it is
// commutative but neither idempotent nor a path semiring.
func (w LogWeight) Properties() Properties { return SemiringSemiring | Commutative }

// String mirrors TropicalWeight.String's convention.
func (w LogWeight) String() string {
	if math.IsInf(float64(w), 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}

// WriteTo serializes the raw float64 payload, little-endian.
func (w LogWeight) WriteTo(dst io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(w)))
	_, err := dst.Write(buf[:])
	return err
}

// ReadLogWeight reads the payload written by WriteTo.
func ReadLogWeight(src io.Reader) (LogWeight, error) {
	var buf [8]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, err
	}
	return LogWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))), nil
}

// logAdder accumulates a log-semiring Plus-fold using the same pairwise
// log-sum-exp stabilization as Plus, applied incrementally.
type logAdder struct{ sum LogWeight }

// NewLogAdder returns an Adder seeded at LogZero.
func NewLogAdder() Adder[LogWeight] { return &logAdder{sum: LogZero()} }

func (a *logAdder) Add(w LogWeight) LogWeight {
	a.sum = a.sum.Plus(w)
	return a.sum
}

func (a *logAdder) Sum() LogWeight { return a.sum }

func (a *logAdder) Reset(w LogWeight) { a.sum = w }
