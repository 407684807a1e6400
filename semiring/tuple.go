package semiring

import (
	"fmt"
	"io"
	"strings"

	"github.com/wfstlib/wfst/semiring/compositeio"
)

// TupleWeight is PowerWeight's variable-arity counterpart: a sequence of
// weights over one component semiring S with no fixed length baked into
// its construction. Unlike PowerWeight, which always produces vectors of
// a caller-chosen arity via PowerZero/PowerOne, TupleWeight is built
// incrementally (NewTupleWeight, Append) and is the natural base for
// algorithms that accumulate a per-path feature vector of unknown length
// ahead of time, such as an n-best list's per-hypothesis score history.
type TupleWeight[S Semiring[S]] struct {
	elems []S
}

// NewTupleWeight builds a TupleWeight from its elements, copying the
// slice so the caller's backing array may be reused.
func NewTupleWeight[S Semiring[S]](elems ...S) TupleWeight[S] {
	cp := make([]S, len(elems))
	copy(cp, elems)
	return TupleWeight[S]{elems: cp}
}

// Append returns a new TupleWeight with v appended.
func (w TupleWeight[S]) Append(v S) TupleWeight[S] {
	out := make([]S, len(w.elems)+1)
	copy(out, w.elems)
	out[len(w.elems)] = v
	return TupleWeight[S]{elems: out}
}

func (w TupleWeight[S]) Len() int  { return len(w.elems) }
func (w TupleWeight[S]) At(i int) S { return w.elems[i] }

// Plus requires equal length, element-wise ⊕; mismatched lengths are a
// caller error, not a semiring-domain question, so it panics like
// PowerWeight's arity check rather than returning a non-member.
func (w TupleWeight[S]) Plus(other TupleWeight[S]) TupleWeight[S] {
	if len(w.elems) != len(other.elems) {
		panic(fmt.Sprintf("semiring: TupleWeight length mismatch: %d vs %d", len(w.elems), len(other.elems)))
	}
	out := make([]S, len(w.elems))
	for i := range out {
		out[i] = w.elems[i].Plus(other.elems[i])
	}
	return TupleWeight[S]{elems: out}
}

// Times concatenates the two tuples rather than combining element-wise:
// unlike PowerWeight's fixed arity, TupleWeight's ⊗ is free monoid
// concatenation over the underlying semiring's own ⊗-annotated elements,
// matching how a feature-history tuple grows along a path.
func (w TupleWeight[S]) Times(other TupleWeight[S]) TupleWeight[S] {
	out := make([]S, 0, len(w.elems)+len(other.elems))
	out = append(out, w.elems...)
	out = append(out, other.elems...)
	return TupleWeight[S]{elems: out}
}

func (w TupleWeight[S]) Member() bool {
	for _, e := range w.elems {
		if !e.Member() {
			return false
		}
	}
	return true
}

func (w TupleWeight[S]) Quantize(delta float64) TupleWeight[S] {
	out := make([]S, len(w.elems))
	for i, e := range w.elems {
		out[i] = e.Quantize(delta)
	}
	return TupleWeight[S]{elems: out}
}

func (w TupleWeight[S]) Reverse() TupleWeight[S] {
	out := make([]S, len(w.elems))
	for i, e := range w.elems {
		out[len(out)-1-i] = e.Reverse()
	}
	return TupleWeight[S]{elems: out}
}

func (w TupleWeight[S]) ApproxEqual(other TupleWeight[S], delta float64) bool {
	if len(w.elems) != len(other.elems) {
		return false
	}
	for i := range w.elems {
		if !w.elems[i].ApproxEqual(other.elems[i], delta) {
			return false
		}
	}
	return true
}

func (w TupleWeight[S]) Type() string {
	if len(w.elems) == 0 {
		return "tuple_0"
	}
	return fmt.Sprintf("tuple_%d_%s", len(w.elems), w.elems[0].Type())
}

func (w TupleWeight[S]) Properties() Properties {
	if len(w.elems) == 0 {
		return SemiringSemiring | Commutative | Idempotent | Path
	}
	props := w.elems[0].Properties()
	for _, e := range w.elems[1:] {
		props &= e.Properties()
	}
	return props &^ (Commutative | Path)
}

// StringTupleWeight renders w as its elements joined by cfg's
// separator, bracketed if configured, mirroring StringPairWeight for
// the variable-arity case.
func StringTupleWeight[S interface {
	Semiring[S]
	fmt.Stringer
}](w TupleWeight[S], cfg compositeio.Config) string {
	var sb strings.Builder
	cw := compositeio.NewWriter(&sb, cfg)
	_ = cw.WriteBegin()
	for i, e := range w.elems {
		if i > 0 {
			_ = cw.WriteSeparator()
		}
		_ = cw.WriteComponent(e.String())
	}
	_ = cw.WriteEnd()
	return sb.String()
}

// ParseTupleWeight reads the text form StringTupleWeight produces. It
// reads components until the underlying stream is exhausted, so it
// cannot be used to parse a prefix of a longer stream; callers needing
// that should bracket (cfg.Bracketed) so ReadEnd stops at the close
// bracket instead of EOF.
func ParseTupleWeight[S Semiring[S]](
	src io.Reader, cfg compositeio.Config, parse func(string) (S, error),
) (TupleWeight[S], error) {
	r := compositeio.NewReader(src, cfg)
	if err := r.ReadBegin(); err != nil {
		return TupleWeight[S]{}, err
	}
	var elems []S
	for {
		tok, err := r.ReadComponent()
		if err != nil {
			return TupleWeight[S]{}, err
		}
		v, err := parse(tok)
		if err != nil {
			return TupleWeight[S]{}, fmt.Errorf("semiring: parsing tuple component %d: %w", len(elems), err)
		}
		elems = append(elems, v)
		// ReadComponent stopped at the separator, the close bracket, or
		// EOF; whichever it is, ReadSeparator tells us which by failing
		// on anything but the separator byte.
		if err := r.ReadSeparator(); err != nil {
			break
		}
	}
	if err := r.ReadEnd(); err != nil {
		return TupleWeight[S]{}, err
	}
	return TupleWeight[S]{elems: elems}, nil
}
