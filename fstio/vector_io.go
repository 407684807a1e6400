package fstio

import (
	"io"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
	"github.com/wfstlib/wfst/vector"
)

// wireWeight is the constraint a weight type must satisfy to be written
// by this package: semiring algebra plus the raw Write(stream) contract
// spec §4.1 assigns each weight type.
type wireWeight[S any] interface {
	semiring.Semiring[S]
	semiring.WireWriter
}

// WriteVector serializes f's body per spec §4.6: for each state, its
// final weight, arc count, then each arc as (ilabel, olabel, weight,
// nextstate). It does not write the FstHeader; callers write that first
// via WriteHeader.
func WriteVector[S wireWeight[S]](w io.Writer, f *vector.VectorFst[S]) error {
	n := f.NumStates()
	for s := fst.StateId(0); int(s) < n; s++ {
		if err := f.Final(s).WriteTo(w); err != nil {
			return err
		}
		narcs := f.NumArcs(s)
		if err := writeI32(w, int32(narcs)); err != nil {
			return err
		}
		for i := 0; i < narcs; i++ {
			a := f.Arc(s, i)
			if err := writeI32(w, int32(a.ILabel)); err != nil {
				return err
			}
			if err := writeI32(w, int32(a.OLabel)); err != nil {
				return err
			}
			if err := a.Weight.WriteTo(w); err != nil {
				return err
			}
			if err := writeI32(w, int32(a.NextState)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadWeightFunc reconstructs one weight value from its raw payload,
// e.g. semiring.ReadTropicalWeight, since a generic function cannot call
// a type parameter's Read constructor by name.
type ReadWeightFunc[S any] func(io.Reader) (S, error)

// ReadVector reconstructs a VectorFst body of numStates states, given
// the weight type's own Zero/One and Read function. It does not read
// the FstHeader; callers read that first via ReadHeader and pass its
// NumStates through.
func ReadVector[S semiring.Semiring[S]](r io.Reader, ops semiring.SemiringOps[S], readWeight ReadWeightFunc[S], numStates int64) (*vector.VectorFst[S], error) {
	f := vector.New(ops)
	f.ReserveStates(int(numStates))
	for i := int64(0); i < numStates; i++ {
		f.AddState()
	}
	for s := fst.StateId(0); int64(s) < numStates; s++ {
		final, err := readWeight(r)
		if err != nil {
			return nil, err
		}
		if err := f.SetFinal(s, final); err != nil {
			return nil, err
		}
		narcs, err := readI32(r)
		if err != nil {
			return nil, err
		}
		for i := int32(0); i < narcs; i++ {
			il, err := readI32(r)
			if err != nil {
				return nil, err
			}
			ol, err := readI32(r)
			if err != nil {
				return nil, err
			}
			weight, err := readWeight(r)
			if err != nil {
				return nil, err
			}
			ns, err := readI32(r)
			if err != nil {
				return nil, err
			}
			if err := f.AddArc(s, fst.Arc[S]{
				ILabel:    fst.Label(il),
				OLabel:    fst.Label(ol),
				Weight:    weight,
				NextState: fst.StateId(ns),
			}); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
