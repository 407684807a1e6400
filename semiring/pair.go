package semiring

import (
	"fmt"
	"io"
	"strings"

	"github.com/wfstlib/wfst/semiring/compositeio"
)

// PairWeight is the Cartesian-product semiring over two component
// semirings: ⊕ and ⊗ apply component-wise, Zero is (S1.Zero, S2.Zero),
// One is (S1.One, S2.One). It is the base every other composite weight in
// this package (ExpectationWeight, GallicWeight) specializes by
// overriding Times and/or the identities.
type PairWeight[S1 Semiring[S1], S2 Semiring[S2]] struct {
	W1 S1
	W2 S2
}

// NewPairWeight constructs a PairWeight from its two components.
func NewPairWeight[S1 Semiring[S1], S2 Semiring[S2]](w1 S1, w2 S2) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: w1, W2: w2}
}

func (w PairWeight[S1, S2]) Value1() S1 { return w.W1 }

func (w PairWeight[S1, S2]) Value2() S2 { return w.W2 }

func (w PairWeight[S1, S2]) Plus(other PairWeight[S1, S2]) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: w.W1.Plus(other.W1), W2: w.W2.Plus(other.W2)}
}

func (w PairWeight[S1, S2]) Times(other PairWeight[S1, S2]) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: w.W1.Times(other.W1), W2: w.W2.Times(other.W2)}
}

func (w PairWeight[S1, S2]) Member() bool { return w.W1.Member() && w.W2.Member() }

func (w PairWeight[S1, S2]) Quantize(delta float64) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: w.W1.Quantize(delta), W2: w.W2.Quantize(delta)}
}

func (w PairWeight[S1, S2]) Reverse() PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: w.W1.Reverse(), W2: w.W2.Reverse()}
}

func (w PairWeight[S1, S2]) ApproxEqual(other PairWeight[S1, S2], delta float64) bool {
	return w.W1.ApproxEqual(other.W1, delta) && w.W2.ApproxEqual(other.W2, delta)
}

func (w PairWeight[S1, S2]) Type() string {
	return "pair_" + w.W1.Type() + "_" + w.W2.Type()
}

func (w PairWeight[S1, S2]) Properties() Properties {
	return w.W1.Properties() & w.W2.Properties() &^ Path
}

// PairZero constructs the identity (S1.Zero, S2.Zero) given each
// component's SemiringOps, since Go cannot call Zero() as a static method
// of the type parameters.
func PairZero[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2]) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: ops1.Zero, W2: ops2.Zero}
}

// PairOne constructs the identity (S1.One, S2.One).
func PairOne[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2]) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: ops1.One, W2: ops2.One}
}

// WriteTo serializes both components back to back, delegating to each
// component's own WriteTo (PairWeight carries no type tag of its own).
func WritePairWeight[S1 interface {
	Semiring[S1]
	WireWriter
}, S2 interface {
	Semiring[S2]
	WireWriter
}](w PairWeight[S1, S2], dst io.Writer) error {
	if err := w.W1.WriteTo(dst); err != nil {
		return err
	}
	return w.W2.WriteTo(dst)
}

// StringPairWeight renders w as its two components joined by cfg's
// separator (and wrapped in cfg's brackets, if configured), the text
// form used by PrintWeight and by round-tripping through
// ParsePairWeight.
func StringPairWeight[S1 interface {
	Semiring[S1]
	fmt.Stringer
}, S2 interface {
	Semiring[S2]
	fmt.Stringer
}](w PairWeight[S1, S2], cfg compositeio.Config) string {
	var sb strings.Builder
	cw := compositeio.NewWriter(&sb, cfg)
	_ = cw.WriteBegin()
	_ = cw.WriteComponent(w.W1.String())
	_ = cw.WriteSeparator()
	_ = cw.WriteComponent(w.W2.String())
	_ = cw.WriteEnd()
	return sb.String()
}

// ParsePairWeight reads the text form StringPairWeight produces, using
// parse1/parse2 to turn each component's substring back into S1/S2.
func ParsePairWeight[S1 Semiring[S1], S2 Semiring[S2]](
	src io.Reader, cfg compositeio.Config,
	parse1 func(string) (S1, error), parse2 func(string) (S2, error),
) (PairWeight[S1, S2], error) {
	var zero PairWeight[S1, S2]
	r := compositeio.NewReader(src, cfg)
	if err := r.ReadBegin(); err != nil {
		return zero, err
	}
	tok1, err := r.ReadComponent()
	if err != nil {
		return zero, err
	}
	v1, err := parse1(tok1)
	if err != nil {
		return zero, fmt.Errorf("semiring: parsing pair component 1: %w", err)
	}
	if err := r.ReadSeparator(); err != nil {
		return zero, err
	}
	tok2, err := r.ReadComponent()
	if err != nil {
		return zero, err
	}
	v2, err := parse2(tok2)
	if err != nil {
		return zero, fmt.Errorf("semiring: parsing pair component 2: %w", err)
	}
	if err := r.ReadEnd(); err != nil {
		return zero, err
	}
	return PairWeight[S1, S2]{W1: v1, W2: v2}, nil
}

// pairAdder delegates component-wise, matching
// expectation-weight.h's Adder<ExpectationWeight<W1,W2>> specialization
// (PairWeight's adder is the same shape, one level down).
type pairAdder[S1 Semiring[S1], S2 Semiring[S2]] struct {
	a1 Adder[S1]
	a2 Adder[S2]
}

// NewPairAdder builds a component-wise Adder given each component's own
// Adder constructor.
func NewPairAdder[S1 Semiring[S1], S2 Semiring[S2]](a1 Adder[S1], a2 Adder[S2]) Adder[PairWeight[S1, S2]] {
	return &pairAdder[S1, S2]{a1: a1, a2: a2}
}

func (a *pairAdder[S1, S2]) Add(w PairWeight[S1, S2]) PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: a.a1.Add(w.W1), W2: a.a2.Add(w.W2)}
}

func (a *pairAdder[S1, S2]) Sum() PairWeight[S1, S2] {
	return PairWeight[S1, S2]{W1: a.a1.Sum(), W2: a.a2.Sum()}
}

func (a *pairAdder[S1, S2]) Reset(w PairWeight[S1, S2]) {
	a.a1.Reset(w.W1)
	a.a2.Reset(w.W2)
}
