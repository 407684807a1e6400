package fst

import "github.com/wfstlib/wfst/semiring"

// FST is the polymorphic read-only transducer interface over a weight
// type S: the tuple (Q, start, final-weight map, arc relation) plus the
// metadata every representation (VectorFst, CompactFst) must expose
// regardless of how it stores states and arcs internally.
type FST[S semiring.Semiring[S]] interface {
	// Start returns the start state, or NoStateId for the empty machine.
	Start() StateId

	// Final returns state s's final weight; semiring.Zero means s is not
	// final.
	Final(s StateId) S

	// NumArcs returns the number of out-arcs of state s. Defined only
	// when Properties().Has(Expanded).
	NumArcs(s StateId) int

	// Arc returns state s's i'th out-arc, in iteration order.
	Arc(s StateId, i int) Arc[S]

	// NumStates returns the number of states. Defined only when
	// Properties().Has(Expanded).
	NumStates() int

	// Properties returns the FST's current known/value property pair.
	// exact, when true, forces a full recomputation pass rather than
	// returning whatever subset is already known (OpenFst's
	// TestProperties semantics).
	Properties(exact bool) KnownProperties

	// InputSymbols and OutputSymbols return the FST's symbol tables, or
	// nil if none is attached.
	InputSymbols() *SymbolTable
	OutputSymbols() *SymbolTable

	// Type identifies the concrete representation, e.g. "vector" or
	// "compact_acceptor", mirrored into the binary header's fst_type
	// field by package fstio.
	Type() string
}

// SymbolTable maps between label values and their external string
// names. Label 0 (Epsilon) is implicitly "<epsilon>" and need not be
// stored explicitly.
type SymbolTable struct {
	name     string
	labelOf  map[string]Label
	symbolOf map[Label]string
	next     Label
}

// NewSymbolTable returns a table holding only "<epsilon>" at label 0,
// with the given display name (written into text-format dumps; purely
// informational).
func NewSymbolTable(name string) *SymbolTable {
	return &SymbolTable{
		name:     name,
		labelOf:  map[string]Label{"<epsilon>": Epsilon},
		symbolOf: map[Label]string{Epsilon: "<epsilon>"},
		next:     1,
	}
}

// Name returns the table's display name.
func (t *SymbolTable) Name() string { return t.name }

// AddSymbol assigns symbol the next available label if it is not
// already present, and returns its label either way.
func (t *SymbolTable) AddSymbol(symbol string) Label {
	if l, ok := t.labelOf[symbol]; ok {
		return l
	}
	l := t.next
	t.next++
	t.labelOf[symbol] = l
	t.symbolOf[l] = symbol
	return l
}

// AddSymbolWithLabel assigns symbol the given explicit label, which must
// not already be taken by a different symbol.
func (t *SymbolTable) AddSymbolWithLabel(symbol string, label Label) {
	t.labelOf[symbol] = label
	t.symbolOf[label] = symbol
	if label >= t.next {
		t.next = label + 1
	}
}

// Find returns the label for symbol, and whether it was found.
func (t *SymbolTable) Find(symbol string) (Label, bool) {
	l, ok := t.labelOf[symbol]
	return l, ok
}

// FindSymbol returns the symbol for label, and whether it was found.
func (t *SymbolTable) FindSymbol(label Label) (string, bool) {
	s, ok := t.symbolOf[label]
	return s, ok
}

// NumSymbols returns the number of distinct symbols, including epsilon.
func (t *SymbolTable) NumSymbols() int { return len(t.symbolOf) }

// VerifyProperties re-derives f's properties from scratch (via
// Properties(true)) and compares them against the caller-supplied claim,
// reporting every bit where the claim and the recomputed value disagree.
// It is used in tests as a hard correctness check, per the property
// algebra's own contract that a known bit must match reality exactly.
func VerifyProperties[S semiring.Semiring[S]](f FST[S], claimed KnownProperties) (mismatch Properties, ok bool) {
	actual := f.Properties(true)
	disagree := claimed.Known & actual.Known & (claimed.Value ^ actual.Value)
	return disagree, disagree == 0
}
