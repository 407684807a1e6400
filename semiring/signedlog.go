package semiring

import (
	"encoding/binary"
	"io"
	"math"
)

// SignedLogWeight extends LogWeight to signed reals by pairing a sign bit
// with a LogWeight magnitude: the represented real number is
// sign * exp(-magnitude). It supplements the unsigned log semiring for
// algorithms (e.g. gradient accumulation) that need to cancel positive
// and negative contributions rather than only ever summing non-negative
// ones.
type SignedLogWeight struct {
	neg bool
	mag LogWeight
}

// NewSignedLogWeight builds a SignedLogWeight representing the given
// signed real number, via its log-magnitude.
func NewSignedLogWeight(neg bool, mag LogWeight) SignedLogWeight {
	if mag == LogZero() {
		neg = false // canonical zero carries no sign
	}
	return SignedLogWeight{neg: neg, mag: mag}
}

func SignedLogZero() SignedLogWeight { return SignedLogWeight{mag: LogZero()} }

func SignedLogOne() SignedLogWeight { return SignedLogWeight{mag: LogOne()} }

var SignedLogSemiring = SemiringOps[SignedLogWeight]{Zero: SignedLogZero(), One: SignedLogOne()}

// Sign and Magnitude expose the two components for callers that need to
// reconstruct the signed real value directly.
func (w SignedLogWeight) Sign() bool       { return w.neg }
func (w SignedLogWeight) Magnitude() LogWeight { return w.mag }

// Plus adds two signed reals in log domain: same-signed operands combine
// via LogWeight's log-sum-exp, opposite-signed operands combine via a
// log-sub-exp that cancels toward whichever operand has the smaller
// magnitude (i.e. the larger absolute real value).
func (w SignedLogWeight) Plus(other SignedLogWeight) SignedLogWeight {
	if w.mag == LogZero() {
		return other
	}
	if other.mag == LogZero() {
		return w
	}
	if w.neg == other.neg {
		return SignedLogWeight{neg: w.neg, mag: w.mag.Plus(other.mag)}
	}
	// Opposite signs: the larger real magnitude has the smaller mag value.
	small, big := w, other
	if small.mag > big.mag {
		small, big = big, small
	}
	diff := float64(big.mag) - float64(small.mag)
	if diff == 0 {
		return SignedLogZero()
	}
	mag := LogWeight(float64(small.mag) - math.Log1p(-math.Exp(-diff)))
	return SignedLogWeight{neg: small.neg, mag: mag}
}

// Times multiplies signed reals: signs XOR, magnitudes add (since
// multiplying magnitudes corresponds to adding their -log values).
func (w SignedLogWeight) Times(other SignedLogWeight) SignedLogWeight {
	return SignedLogWeight{neg: w.neg != other.neg, mag: w.mag.Times(other.mag)}
}

func (w SignedLogWeight) Member() bool { return w.mag.Member() }

func (w SignedLogWeight) Quantize(delta float64) SignedLogWeight {
	return SignedLogWeight{neg: w.neg, mag: w.mag.Quantize(delta)}
}

func (w SignedLogWeight) Reverse() SignedLogWeight { return w }

func (w SignedLogWeight) ApproxEqual(other SignedLogWeight, delta float64) bool {
	if w.mag == LogZero() || other.mag == LogZero() {
		return w.mag == other.mag
	}
	return w.neg == other.neg && w.mag.ApproxEqual(other.mag, delta)
}

func (w SignedLogWeight) Type() string { return "signed_log" }

func (w SignedLogWeight) Properties() Properties {
	return SemiringSemiring | Commutative
}

func (w SignedLogWeight) String() string {
	sign := ""
	if w.neg {
		sign = "-"
	}
	return sign + w.mag.String()
}

func (w SignedLogWeight) WriteTo(dst io.Writer) error {
	var buf [9]byte
	if w.neg {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(float64(w.mag)))
	_, err := dst.Write(buf[:])
	return err
}

// ReadSignedLogWeight reads the payload written by WriteTo.
func ReadSignedLogWeight(src io.Reader) (SignedLogWeight, error) {
	var buf [9]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return SignedLogWeight{}, err
	}
	return SignedLogWeight{
		neg: buf[0] == 1,
		mag: LogWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[1:]))),
	}, nil
}
