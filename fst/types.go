package fst

import "github.com/wfstlib/wfst/semiring"

// Label identifies an input or output symbol on an arc. Zero is epsilon,
// the empty symbol; positive values index into an external SymbolTable.
type Label int32

// NoLabel is the sentinel used on the superfinal transition, where
// neither ilabel nor olabel denotes a real symbol.
const NoLabel Label = -1

// Epsilon is the empty-symbol label.
const Epsilon Label = 0

// StateId densely indexes an FST's state set, starting at 0.
type StateId int32

// NoStateId marks the absence of a state: an empty FST's start state, or
// the destination of a superfinal transition.
const NoStateId StateId = -1

// Arc is a labeled, weighted transition record. It does not name its own
// source state; the source is implicit in whatever iterator or slice
// produced it.
type Arc[S semiring.Semiring[S]] struct {
	ILabel    Label
	OLabel    Label
	Weight    S
	NextState StateId
}

// IsSuperfinal reports whether a is the superfinal-transition encoding
// of a final weight: both labels NoLabel and nextstate NoStateId.
func (a Arc[S]) IsSuperfinal() bool {
	return a.ILabel == NoLabel && a.OLabel == NoLabel && a.NextState == NoStateId
}
