package semiring

// LexicographicWeight orders two Path semirings lexicographically: Plus
// keeps whichever operand's S1 component is "smaller" under S1's natural
// order (a ⪯ b iff a.Plus(b) == a, which is well defined because Path
// semirings select a single path on every Plus), breaking ties on S2.
// Times is component-wise, as for PairWeight. Both components must carry
// the Path property for the natural order to be total; callers combining
// non-Path semirings get a result but it is not guaranteed to be a valid
// semiring.
type LexicographicWeight[S1 Semiring[S1], S2 Semiring[S2]] struct {
	inner PairWeight[S1, S2]
}

// NewLexicographicWeight builds a LexicographicWeight from its components.
func NewLexicographicWeight[S1 Semiring[S1], S2 Semiring[S2]](w1 S1, w2 S2) LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: PairWeight[S1, S2]{W1: w1, W2: w2}}
}

func (w LexicographicWeight[S1, S2]) Value1() S1 { return w.inner.W1 }

func (w LexicographicWeight[S1, S2]) Value2() S2 { return w.inner.W2 }

// naturalLessOrEqual reports whether a ⪯ b under a Path semiring's
// natural order, i.e. a.Plus(b) selects a.
func naturalLessOrEqual[S Semiring[S]](a, b S) bool {
	return a.Plus(b).ApproxEqual(a, 0)
}

// Plus keeps the lexicographically smaller pair: compare W1 first, fall
// back to W2 when the W1 components are equal under their natural order.
func (w LexicographicWeight[S1, S2]) Plus(other LexicographicWeight[S1, S2]) LexicographicWeight[S1, S2] {
	a, b := w.inner, other.inner
	aLeB := naturalLessOrEqual(a.W1, b.W1)
	bLeA := naturalLessOrEqual(b.W1, a.W1)
	switch {
	case aLeB && !bLeA:
		return w
	case bLeA && !aLeB:
		return other
	default: // W1 components tie; break on W2
		if naturalLessOrEqual(a.W2, b.W2) {
			return w
		}
		return other
	}
}

func (w LexicographicWeight[S1, S2]) Times(other LexicographicWeight[S1, S2]) LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: w.inner.Times(other.inner)}
}

func (w LexicographicWeight[S1, S2]) Member() bool { return w.inner.Member() }

func (w LexicographicWeight[S1, S2]) Quantize(delta float64) LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: w.inner.Quantize(delta)}
}

func (w LexicographicWeight[S1, S2]) Reverse() LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: w.inner.Reverse()}
}

func (w LexicographicWeight[S1, S2]) ApproxEqual(other LexicographicWeight[S1, S2], delta float64) bool {
	return w.inner.ApproxEqual(other.inner, delta)
}

func (w LexicographicWeight[S1, S2]) Type() string {
	return "lexicographic_" + w.inner.W1.Type() + "_" + w.inner.W2.Type()
}

func (w LexicographicWeight[S1, S2]) Properties() Properties {
	return w.inner.W1.Properties() & w.inner.W2.Properties() & (SemiringSemiring | Idempotent | Path)
}

// LexicographicZero is (S1.Zero, S2.Zero).
func LexicographicZero[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2]) LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: PairZero(ops1, ops2)}
}

// LexicographicOne is (S1.One, S2.One).
func LexicographicOne[S1 Semiring[S1], S2 Semiring[S2]](ops1 SemiringOps[S1], ops2 SemiringOps[S2]) LexicographicWeight[S1, S2] {
	return LexicographicWeight[S1, S2]{inner: PairOne(ops1, ops2)}
}
