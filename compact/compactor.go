package compact

import (
	"io"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// ExpandFlags selects which Arc fields Expand must fill in; a compactor
// whose Element cannot cheaply reconstruct a field (e.g. a destination
// delta needing the source state's index) may leave the unrequested
// fields as zero-value stubs.
type ExpandFlags uint8

const (
	ExpandILabel ExpandFlags = 1 << iota
	ExpandOLabel
	ExpandWeight
	ExpandNextState
)

// ExpandAll requests every Arc field.
const ExpandAll = ExpandILabel | ExpandOLabel | ExpandWeight | ExpandNextState

// Compactor maps between an FST's (state, arc) pairs and a compactor-
// defined Element type. Compact must be a pure function of its inputs;
// for variable-size compactors the state argument permits
// state-relative encodings such as destination deltas.
type Compactor[S semiring.Semiring[S], E any] interface {
	// Compact encodes state s's arc arc (or, for the superfinal
	// transition, a synthetic arc with fst.NoLabel/fst.NoStateId) as an
	// Element.
	Compact(s fst.StateId, arc fst.Arc[S]) E

	// Expand decodes Element e, produced at state s, back into an Arc,
	// filling in only the fields flagMask selects.
	Expand(s fst.StateId, e E, flagMask ExpandFlags) fst.Arc[S]

	// Size returns the compactor's fixed out-degree k > 0, or -1 for
	// variable out-degree.
	Size() int

	// Compatible reports whether f's properties are a superset of the
	// properties this compactor requires (e.g. an Acceptor compactor
	// requires f.Properties().Has(fst.Acceptor)).
	Compatible(f fst.FST[S]) bool

	// Properties reports the properties this compactor guarantees of any
	// FST built from it, e.g. String|Acceptor|Unweighted for StringCompactor.
	Properties() fst.Properties

	// Type returns a stable string identifier, appended to "compact_" to
	// form the FST's fst_type header field.
	Type() string

	// WriteTo serializes compactor-specific parameters (most standard
	// compactors have none and write zero bytes).
	WriteTo(w io.Writer) error
}
