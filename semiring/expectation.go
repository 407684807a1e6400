package semiring

// ExpectationWeight pairs a probability-like semiring S1 with a
// random-variable-like semiring S2, following Eisner (2002)'s
// expectation semiring: Plus is component-wise (as for PairWeight), but
// Times cross-multiplies so that the second component accumulates an
// expectation under the first:
//
//	(a1,b1) ⊗ (a2,b2) = (a1⊗a2, a1⊗b2 ⊕ a2⊗b1)
//	One = (S1.One, S2.Zero)
//
// Shortest-distance over this semiring yields, in the first component,
// the total probability mass of all paths, and in the second, the
// probability-weighted expectation of whatever S2 tracks (e.g. a feature
// count or a squared loss), without a separate normalization pass.
//
// When S1 and S2 are different types there is no method Go can dispatch
// on to multiply an S1 value into S2's domain (original_source's C++
// resolves "a1⊗b2" by ADL-selecting a free Times(W1,W2) overload the
// caller supplies externally; Go has no such overload resolution). Each
// ExpectationWeight value therefore carries its own cross-multiply
// function, set once at construction by NewExpectationWeight/
// ExpectationZero/ExpectationOne and propagated unchanged by every
// operation below — the same "runtime invariant Go generics can't
// express as a type parameter" pattern PowerWeight uses for its arity.
type ExpectationWeight[S1 Semiring[S1], S2 Semiring[S2]] struct {
	inner PairWeight[S1, S2]
	cross func(S1, S2) S2
}

// NewExpectationWeight constructs an ExpectationWeight from its
// probability and value components and the cross-multiply function
// defining a1⊗b2 for this S1/S2 pairing (see CrossSameType for the
// common case where S1 == S2).
func NewExpectationWeight[S1 Semiring[S1], S2 Semiring[S2]](p S1, v S2, cross func(S1, S2) S2) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: PairWeight[S1, S2]{W1: p, W2: v}, cross: cross}
}

func (w ExpectationWeight[S1, S2]) Value1() S1 { return w.inner.W1 }

func (w ExpectationWeight[S1, S2]) Value2() S2 { return w.inner.W2 }

func (w ExpectationWeight[S1, S2]) Plus(other ExpectationWeight[S1, S2]) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: w.inner.Plus(other.inner), cross: w.cross}
}

// Times implements the expectation-semiring product: (a1,b1)⊗(a2,b2) =
// (a1⊗a2, a1⊗b2 ⊕ a2⊗b1).
func (w ExpectationWeight[S1, S2]) Times(other ExpectationWeight[S1, S2]) ExpectationWeight[S1, S2] {
	a1, b1 := w.inner.W1, w.inner.W2
	a2, b2 := other.inner.W1, other.inner.W2
	return ExpectationWeight[S1, S2]{
		inner: PairWeight[S1, S2]{
			W1: a1.Times(a2),
			W2: w.cross(a1, b2).Plus(w.cross(a2, b1)),
		},
		cross: w.cross,
	}
}

func (w ExpectationWeight[S1, S2]) Member() bool { return w.inner.Member() }

func (w ExpectationWeight[S1, S2]) Quantize(delta float64) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: w.inner.Quantize(delta), cross: w.cross}
}

func (w ExpectationWeight[S1, S2]) Reverse() ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: w.inner.Reverse(), cross: w.cross}
}

func (w ExpectationWeight[S1, S2]) ApproxEqual(other ExpectationWeight[S1, S2], delta float64) bool {
	return w.inner.ApproxEqual(other.inner, delta)
}

func (w ExpectationWeight[S1, S2]) Type() string {
	return "expectation_" + w.inner.W1.Type() + "_" + w.inner.W2.Type()
}

func (w ExpectationWeight[S1, S2]) Properties() Properties {
	return w.inner.W1.Properties() & w.inner.W2.Properties() &
		(LeftSemiring | RightSemiring | Commutative | Idempotent)
}

// ExpectationZero is (S1.Zero, S2.Zero), carrying cross for later Times
// calls (Zero itself never needs to cross-multiply).
func ExpectationZero[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2], cross func(S1, S2) S2) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: PairZero(ops1, ops2), cross: cross}
}

// ExpectationOne is (S1.One, S2.Zero) — note the second component is
// S2's Zero, not its One, so that Times's cross term starts from nothing.
func ExpectationOne[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2], cross func(S1, S2) S2) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: PairWeight[S1, S2]{W1: ops1.One, W2: ops2.Zero}, cross: cross}
}

// CrossSameType is the cross-multiply function for the common case where
// S1 and S2 are the same semiring: a1⊗b2 is just S's own Times.
func CrossSameType[S Semiring[S]](a, b S) S { return a.Times(b) }

// CrossLogReal cross-multiplies a LogWeight probability into a
// RealWeight value: since LogWeight's own ⊗ is ordinary addition (it
// carries negative log-probabilities), the cross term applies that same
// rule to lift p into v's linear domain, per spec §8 scenario 4.
func CrossLogReal(p LogWeight, v RealWeight) RealWeight {
	return RealWeight(float64(p) + float64(v))
}

// expectationAdder delegates to a PairWeight adder; Plus is
// component-wise for ExpectationWeight just as it is for PairWeight, so
// the accumulator need not know about the Times cross-term at all.
type expectationAdder[S1 Semiring[S1], S2 Semiring[S2]] struct {
	inner Adder[PairWeight[S1, S2]]
	cross func(S1, S2) S2
}

// NewExpectationAdder builds a component-wise Adder. cross is carried
// into every Sum/Add result the same way NewExpectationWeight carries it.
func NewExpectationAdder[S1 Semiring[S1], S2 Semiring[S2]](a1 Adder[S1], a2 Adder[S2], cross func(S1, S2) S2) Adder[ExpectationWeight[S1, S2]] {
	return &expectationAdder[S1, S2]{inner: NewPairAdder(a1, a2), cross: cross}
}

func (a *expectationAdder[S1, S2]) Add(w ExpectationWeight[S1, S2]) ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: a.inner.Add(w.inner), cross: a.cross}
}

func (a *expectationAdder[S1, S2]) Sum() ExpectationWeight[S1, S2] {
	return ExpectationWeight[S1, S2]{inner: a.inner.Sum(), cross: a.cross}
}

func (a *expectationAdder[S1, S2]) Reset(w ExpectationWeight[S1, S2]) { a.inner.Reset(w.inner) }
