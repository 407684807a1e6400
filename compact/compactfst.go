package compact

import (
	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// CompactFst is the read-only, compactor-parameterized packed
// transducer. Copies are O(1): they share the same immutable Compactor
// and DefaultCompactStore by reference, per spec §3's ownership model.
type CompactFst[S semiring.Semiring[S], E any] struct {
	ops     semiring.SemiringOps[S]
	start   fst.StateId
	store   *DefaultCompactStore[E]
	compactor Compactor[S, E]
	props   fst.KnownProperties
	isyms   *fst.SymbolTable
	osyms   *fst.SymbolTable
}

// New wraps a store and compactor as a read-only FST with the given
// start state. It does not validate compactor.Compatible against any
// source FST; callers building a CompactFst via Build (below) get that
// check for free.
func New[S semiring.Semiring[S], E any](ops semiring.SemiringOps[S], start fst.StateId, store *DefaultCompactStore[E], c Compactor[S, E]) *CompactFst[S, E] {
	return &CompactFst[S, E]{
		ops:       ops,
		start:     start,
		store:     store,
		compactor: c,
		props:     fst.KnownProperties{}.Assert(fst.Expanded).Assert(c.Properties()),
	}
}

// Build compacts src using c, checking c.Compatible(src) first.
func Build[S semiring.Semiring[S], E any](src fst.FST[S], c Compactor[S, E], ops semiring.SemiringOps[S]) (*CompactFst[S, E], error) {
	if !c.Compatible(src) {
		return nil, ErrIncompatible
	}
	store, err := BuildFromFst(src, c, ops.Zero)
	if err != nil {
		return nil, err
	}
	f := New(ops, src.Start(), store, c)
	f.isyms = src.InputSymbols()
	f.osyms = src.OutputSymbols()
	return f, nil
}

// stateSlots locates the [lo,hi) compacts-index range for s and reports
// whether its first slot is a superfinal element.
func (f *CompactFst[S, E]) stateSlots(s fst.StateId) (lo, hi int, hasSuperfinal bool) {
	lo, hi = f.store.Range(s)
	if lo == hi {
		return lo, hi, false
	}
	arc := f.compactor.Expand(s, f.store.Element(lo), ExpandNextState|ExpandILabel)
	return lo, hi, arc.NextState == fst.NoStateId && arc.ILabel == fst.NoLabel
}

// Start implements fst.FST.
func (f *CompactFst[S, E]) Start() fst.StateId { return f.start }

// Final implements fst.FST.
func (f *CompactFst[S, E]) Final(s fst.StateId) S {
	lo, _, hasSuperfinal := f.stateSlots(s)
	if !hasSuperfinal {
		return f.ops.Zero
	}
	return f.compactor.Expand(s, f.store.Element(lo), ExpandWeight).Weight
}

// NumArcs implements fst.FST.
func (f *CompactFst[S, E]) NumArcs(s fst.StateId) int {
	lo, hi, hasSuperfinal := f.stateSlots(s)
	n := hi - lo
	if hasSuperfinal {
		n--
	}
	return n
}

// Arc implements fst.FST: arc iteration bypasses any cache, expanding
// directly from the packed store on every call, per spec §4.3.
func (f *CompactFst[S, E]) Arc(s fst.StateId, i int) fst.Arc[S] {
	lo, _, hasSuperfinal := f.stateSlots(s)
	if hasSuperfinal {
		lo++
	}
	return f.compactor.Expand(s, f.store.Element(lo+i), ExpandAll)
}

// NumStates implements fst.FST.
func (f *CompactFst[S, E]) NumStates() int { return f.store.NumStates() }

// Properties implements fst.FST. Since a CompactFst is immutable,
// "exact" recomputation simply returns the properties fixed at Build
// time (the compactor's guaranteed set plus Expanded).
func (f *CompactFst[S, E]) Properties(exact bool) fst.KnownProperties { return f.props }

// InputSymbols implements fst.FST.
func (f *CompactFst[S, E]) InputSymbols() *fst.SymbolTable { return f.isyms }

// OutputSymbols implements fst.FST.
func (f *CompactFst[S, E]) OutputSymbols() *fst.SymbolTable { return f.osyms }

// Type implements fst.FST: "compact_" plus the compactor's own Type.
func (f *CompactFst[S, E]) Type() string { return "compact_" + f.compactor.Type() }

// Close releases the backing store's mmap.Region, if any; a no-op for a
// store built over plain heap slices. f must not be used afterward.
func (f *CompactFst[S, E]) Close() error { return f.store.Close() }
