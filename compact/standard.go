package compact

import (
	"io"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// StringElement is StringCompactor's packed representation: just the
// input label (StringCompactor requires Acceptor, so ilabel==olabel).
type StringElement struct{ Label fst.Label }

// StringCompactor packs an unweighted, single-path acceptor (one label
// per transition, fixed out-degree 1). It requires its source FST to be
// String|Acceptor|Unweighted; the empty-input special case (a
// single-state FST with start=0 and final weight One) is handled by
// Build/BuildFromFst naturally, since that FST's one state has exactly
// one compacts slot (the superfinal element).
type StringCompactor[S semiring.Semiring[S]] struct{ ops semiring.SemiringOps[S] }

// NewStringCompactor builds a StringCompactor for weight type S.
func NewStringCompactor[S semiring.Semiring[S]](ops semiring.SemiringOps[S]) *StringCompactor[S] {
	return &StringCompactor[S]{ops: ops}
}

func (c *StringCompactor[S]) Compact(_ fst.StateId, arc fst.Arc[S]) StringElement {
	return StringElement{Label: arc.ILabel}
}

// Expand reconstructs the arc's destination as s+1: String's fixed
// out-degree of 1 encodes a linear chain, so the next state is always
// the current state's successor index rather than a stored field.
func (c *StringCompactor[S]) Expand(s fst.StateId, e StringElement, _ ExpandFlags) fst.Arc[S] {
	if e.Label == fst.NoLabel {
		return fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: c.ops.One, NextState: fst.NoStateId}
	}
	return fst.Arc[S]{ILabel: e.Label, OLabel: e.Label, Weight: c.ops.One, NextState: s + 1}
}

func (c *StringCompactor[S]) Size() int { return 1 }

func (c *StringCompactor[S]) Compatible(f fst.FST[S]) bool {
	return f.Properties(true).Has(fst.String | fst.Acceptor | fst.Unweighted)
}

func (c *StringCompactor[S]) Properties() fst.Properties {
	return fst.String | fst.Acceptor | fst.Unweighted
}

func (c *StringCompactor[S]) Type() string { return "string" }

func (c *StringCompactor[S]) WriteTo(w io.Writer) error { return nil }

// WeightedStringElement is WeightedStringCompactor's Element: an input
// label paired with its arc weight.
type WeightedStringElement[S any] struct {
	Label  fst.Label
	Weight S
}

// WeightedStringCompactor packs a weighted, single-path acceptor: like
// StringCompactor but each transition also carries a weight.
type WeightedStringCompactor[S semiring.Semiring[S]] struct{ ops semiring.SemiringOps[S] }

func NewWeightedStringCompactor[S semiring.Semiring[S]](ops semiring.SemiringOps[S]) *WeightedStringCompactor[S] {
	return &WeightedStringCompactor[S]{ops: ops}
}

func (c *WeightedStringCompactor[S]) Compact(_ fst.StateId, arc fst.Arc[S]) WeightedStringElement[S] {
	return WeightedStringElement[S]{Label: arc.ILabel, Weight: arc.Weight}
}

// Expand reconstructs the destination as s+1, for the same linear-chain
// reason as StringCompactor.
func (c *WeightedStringCompactor[S]) Expand(s fst.StateId, e WeightedStringElement[S], _ ExpandFlags) fst.Arc[S] {
	if e.Label == fst.NoLabel {
		return fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: e.Weight, NextState: fst.NoStateId}
	}
	return fst.Arc[S]{ILabel: e.Label, OLabel: e.Label, Weight: e.Weight, NextState: s + 1}
}

func (c *WeightedStringCompactor[S]) Size() int { return 1 }

func (c *WeightedStringCompactor[S]) Compatible(f fst.FST[S]) bool {
	return f.Properties(true).Has(fst.String | fst.Acceptor)
}

func (c *WeightedStringCompactor[S]) Properties() fst.Properties {
	return fst.String | fst.Acceptor
}

func (c *WeightedStringCompactor[S]) Type() string { return "weighted_string" }

func (c *WeightedStringCompactor[S]) WriteTo(w io.Writer) error { return nil }

// UnweightedAcceptorElement is UnweightedAcceptorCompactor's Element: a
// label paired with the destination state (variable out-degree, since
// an acceptor's states may branch).
type UnweightedAcceptorElement struct {
	Label     fst.Label
	NextState fst.StateId
}

// UnweightedAcceptorCompactor packs an unweighted acceptor with
// arbitrary branching (variable out-degree, k=-1).
type UnweightedAcceptorCompactor[S semiring.Semiring[S]] struct{ ops semiring.SemiringOps[S] }

func NewUnweightedAcceptorCompactor[S semiring.Semiring[S]](ops semiring.SemiringOps[S]) *UnweightedAcceptorCompactor[S] {
	return &UnweightedAcceptorCompactor[S]{ops: ops}
}

func (c *UnweightedAcceptorCompactor[S]) Compact(_ fst.StateId, arc fst.Arc[S]) UnweightedAcceptorElement {
	return UnweightedAcceptorElement{Label: arc.ILabel, NextState: arc.NextState}
}

func (c *UnweightedAcceptorCompactor[S]) Expand(_ fst.StateId, e UnweightedAcceptorElement, _ ExpandFlags) fst.Arc[S] {
	if e.NextState == fst.NoStateId && e.Label == fst.NoLabel {
		return fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: c.ops.One, NextState: fst.NoStateId}
	}
	return fst.Arc[S]{ILabel: e.Label, OLabel: e.Label, Weight: c.ops.One, NextState: e.NextState}
}

func (c *UnweightedAcceptorCompactor[S]) Size() int { return -1 }

func (c *UnweightedAcceptorCompactor[S]) Compatible(f fst.FST[S]) bool {
	return f.Properties(true).Has(fst.Acceptor | fst.Unweighted)
}

func (c *UnweightedAcceptorCompactor[S]) Properties() fst.Properties {
	return fst.Acceptor | fst.Unweighted
}

func (c *UnweightedAcceptorCompactor[S]) Type() string { return "unweighted_acceptor" }

func (c *UnweightedAcceptorCompactor[S]) WriteTo(w io.Writer) error { return nil }

// AcceptorElement is AcceptorCompactor's Element: a (label, weight) pair
// plus destination state.
type AcceptorElement[S any] struct {
	Label     fst.Label
	Weight    S
	NextState fst.StateId
}

// AcceptorCompactor packs a general weighted acceptor with arbitrary
// branching (variable out-degree, k=-1).
type AcceptorCompactor[S semiring.Semiring[S]] struct{}

func NewAcceptorCompactor[S semiring.Semiring[S]]() *AcceptorCompactor[S] { return &AcceptorCompactor[S]{} }

func (c *AcceptorCompactor[S]) Compact(_ fst.StateId, arc fst.Arc[S]) AcceptorElement[S] {
	return AcceptorElement[S]{Label: arc.ILabel, Weight: arc.Weight, NextState: arc.NextState}
}

func (c *AcceptorCompactor[S]) Expand(_ fst.StateId, e AcceptorElement[S], _ ExpandFlags) fst.Arc[S] {
	if e.NextState == fst.NoStateId && e.Label == fst.NoLabel {
		return fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: e.Weight, NextState: fst.NoStateId}
	}
	return fst.Arc[S]{ILabel: e.Label, OLabel: e.Label, Weight: e.Weight, NextState: e.NextState}
}

func (c *AcceptorCompactor[S]) Size() int { return -1 }

func (c *AcceptorCompactor[S]) Compatible(f fst.FST[S]) bool {
	return f.Properties(true).Has(fst.Acceptor)
}

func (c *AcceptorCompactor[S]) Properties() fst.Properties { return fst.Acceptor }

func (c *AcceptorCompactor[S]) Type() string { return "acceptor" }

func (c *AcceptorCompactor[S]) WriteTo(w io.Writer) error { return nil }

// UnweightedElement is UnweightedCompactor's Element: an (ilabel,
// olabel) pair plus destination state, for a general unweighted
// transducer.
type UnweightedElement struct {
	ILabel, OLabel fst.Label
	NextState      fst.StateId
}

// UnweightedCompactor packs a general unweighted transducer with
// arbitrary branching (variable out-degree, k=-1).
type UnweightedCompactor[S semiring.Semiring[S]] struct{ ops semiring.SemiringOps[S] }

func NewUnweightedCompactor[S semiring.Semiring[S]](ops semiring.SemiringOps[S]) *UnweightedCompactor[S] {
	return &UnweightedCompactor[S]{ops: ops}
}

func (c *UnweightedCompactor[S]) Compact(_ fst.StateId, arc fst.Arc[S]) UnweightedElement {
	return UnweightedElement{ILabel: arc.ILabel, OLabel: arc.OLabel, NextState: arc.NextState}
}

func (c *UnweightedCompactor[S]) Expand(_ fst.StateId, e UnweightedElement, _ ExpandFlags) fst.Arc[S] {
	if e.NextState == fst.NoStateId && e.ILabel == fst.NoLabel && e.OLabel == fst.NoLabel {
		return fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: c.ops.One, NextState: fst.NoStateId}
	}
	return fst.Arc[S]{ILabel: e.ILabel, OLabel: e.OLabel, Weight: c.ops.One, NextState: e.NextState}
}

func (c *UnweightedCompactor[S]) Size() int { return -1 }

func (c *UnweightedCompactor[S]) Compatible(f fst.FST[S]) bool {
	return f.Properties(true).Has(fst.Unweighted)
}

func (c *UnweightedCompactor[S]) Properties() fst.Properties { return fst.Unweighted }

func (c *UnweightedCompactor[S]) Type() string { return "unweighted" }

func (c *UnweightedCompactor[S]) WriteTo(w io.Writer) error { return nil }
