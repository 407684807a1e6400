package compact

import (
	"errors"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/mmap"
	"github.com/wfstlib/wfst/semiring"
)

// ErrSizeMismatch indicates a fixed-arity compactor produced or was
// given a per-state Element count other than its declared Size().
var ErrSizeMismatch = errors.New("compact: element count does not match compactor arity")

// ErrIncompatible indicates a compactor's required properties are not a
// subset of the source FST's properties.
var ErrIncompatible = errors.New("compact: source FST is incompatible with compactor")

// DefaultCompactStore holds the packed Element data backing a CompactFst,
// in one of two layouts depending on the compactor's Size():
//
//   - fixed (size > 0): elems is a flat array of nstates*size Elements,
//     state s's slots are elems[s*size : (s+1)*size].
//   - variable (size == -1): states[0..nstates] are prefix offsets into
//     compacts; state s's slots are compacts[states[s]:states[s+1]].
//
// A store is immutable once built and safe to share across goroutines
// and across any number of CompactFst values. It keeps no reference
// count: Close releases its backing regions for every sharer at once.
type DefaultCompactStore[E any] struct {
	size     int
	nstates  int
	elems    []E     // fixed layout
	states   []int64 // variable layout: len == nstates+1
	compacts []E     // variable layout

	// regions backs elems/states/compacts when the store was built over
	// mmap.Region views rather than heap slices; nil for a plain store.
	// Closing the store releases them.
	regions []*mmap.Region
}

// NewFixedStore builds a fixed out-degree store from a caller-populated
// flat Element array; len(elems) must equal nstates*size.
func NewFixedStore[E any](size, nstates int, elems []E) (*DefaultCompactStore[E], error) {
	if len(elems) != nstates*size {
		return nil, ErrSizeMismatch
	}
	return &DefaultCompactStore[E]{size: size, nstates: nstates, elems: elems}, nil
}

// NewVariableStore builds a variable out-degree store from a
// caller-populated states-offset array (length nstates+1, states[0]==0,
// non-decreasing, states[nstates]==len(compacts)) and compacts array.
func NewVariableStore[E any](nstates int, states []int64, compacts []E) (*DefaultCompactStore[E], error) {
	if len(states) != nstates+1 {
		return nil, ErrSizeMismatch
	}
	if states[nstates] != int64(len(compacts)) {
		return nil, ErrSizeMismatch
	}
	return &DefaultCompactStore[E]{size: -1, nstates: nstates, states: states, compacts: compacts}, nil
}

// NewFixedStoreFromRegion builds a fixed out-degree store whose elems
// slice is a zero-copy view over r's bytes (spec §4.7: "Compact stores
// use it to expose states/compacts as typed slices without copy"). r
// must hold exactly nstates*size Elements; the store takes ownership of
// r and releases it on Close.
func NewFixedStoreFromRegion[E any](size, nstates int, r *mmap.Region) (*DefaultCompactStore[E], error) {
	elems, err := mmap.View[E](r)
	if err != nil {
		return nil, err
	}
	if len(elems) != nstates*size {
		return nil, ErrSizeMismatch
	}
	return &DefaultCompactStore[E]{size: size, nstates: nstates, elems: elems, regions: []*mmap.Region{r}}, nil
}

// NewVariableStoreFromRegion builds a variable out-degree store whose
// states and compacts slices are zero-copy views over statesRegion and
// compactsRegion respectively. Both regions are owned by the store and
// released on Close.
func NewVariableStoreFromRegion[E any](nstates int, statesRegion, compactsRegion *mmap.Region) (*DefaultCompactStore[E], error) {
	states, err := mmap.View[int64](statesRegion)
	if err != nil {
		return nil, err
	}
	if len(states) != nstates+1 {
		return nil, ErrSizeMismatch
	}
	compacts, err := mmap.View[E](compactsRegion)
	if err != nil {
		return nil, err
	}
	if states[nstates] != int64(len(compacts)) {
		return nil, ErrSizeMismatch
	}
	return &DefaultCompactStore[E]{
		size: -1, nstates: nstates, states: states, compacts: compacts,
		regions: []*mmap.Region{statesRegion, compactsRegion},
	}, nil
}

// RetainRegion ties an additional mmap.Region's lifetime to the store
// purely for release purposes — e.g. the single whole-file mapping a
// caller derived several Borrowed sub-views from via mmap.Borrow, none
// of which individually own the underlying mapping. r is Closed
// alongside the store's own regions.
func (s *DefaultCompactStore[E]) RetainRegion(r *mmap.Region) {
	s.regions = append(s.regions, r)
}

// Close releases any mmap.Region backing this store; a no-op for a
// store built over plain heap slices. After Close, the slices returned
// by States/Element/Range must not be used.
func (s *DefaultCompactStore[E]) Close() error {
	var err error
	for _, r := range s.regions {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// BuildFromFst runs compactor over every (state, arc) of f — including
// each final state's synthetic superfinal element, stored first among
// that state's compacts — and returns the resulting store. If f has a
// single state, no start, and no arcs (the empty machine encoded per
// String's k=1 "empty string" special case), the caller is expected to
// have already normalized f accordingly before calling BuildFromFst.
func BuildFromFst[S semiring.Semiring[S], E any](f fst.FST[S], c Compactor[S, E], zero S) (*DefaultCompactStore[E], error) {
	n := f.NumStates()
	size := c.Size()
	if size > 0 {
		elems := make([]E, 0, n*size)
		for s := fst.StateId(0); int(s) < n; s++ {
			slots := compactState(f, c, s, zero)
			if len(slots) != size {
				return nil, ErrSizeMismatch
			}
			elems = append(elems, slots...)
		}
		return NewFixedStore(size, n, elems)
	}
	states := make([]int64, n+1)
	var compacts []E
	for s := fst.StateId(0); int(s) < n; s++ {
		states[s] = int64(len(compacts))
		compacts = append(compacts, compactState(f, c, s, zero)...)
	}
	states[n] = int64(len(compacts))
	return NewVariableStore(n, states, compacts)
}

// compactState builds one state's Element slots: the superfinal element
// first if s is final (its final weight differs from zero), followed by
// its regular out-arcs, per spec §4.3's "superfinal transition is
// stored first among s's compacts".
func compactState[S semiring.Semiring[S], E any](f fst.FST[S], c Compactor[S, E], s fst.StateId, zero S) []E {
	var out []E
	if final := f.Final(s); !final.ApproxEqual(zero, 0) {
		out = append(out, c.Compact(s, fst.Arc[S]{ILabel: fst.NoLabel, OLabel: fst.NoLabel, Weight: final, NextState: fst.NoStateId}))
	}
	for i := 0; i < f.NumArcs(s); i++ {
		out = append(out, c.Compact(s, f.Arc(s, i)))
	}
	return out
}

// Size returns the compactor arity this store was built for.
func (s *DefaultCompactStore[E]) Size() int { return s.size }

// NumStates returns the number of states the store covers.
func (s *DefaultCompactStore[E]) NumStates() int { return s.nstates }

// Range returns the half-open range of compacts-array indices holding
// state st's elements, valid for both layouts.
func (s *DefaultCompactStore[E]) Range(st fst.StateId) (lo, hi int) {
	if s.size > 0 {
		return int(st) * s.size, (int(st) + 1) * s.size
	}
	return int(s.states[st]), int(s.states[st+1])
}

// Element returns the store's i'th packed Element (an absolute index
// into the fixed or variable backing array, as returned by Range).
func (s *DefaultCompactStore[E]) Element(i int) E {
	if s.size > 0 {
		return s.elems[i]
	}
	return s.compacts[i]
}

// States returns the variable-layout prefix-offset array (length
// NumStates()+1), or nil for a fixed-layout store.
func (s *DefaultCompactStore[E]) States() []int64 { return s.states }

// NumCompacts returns the total number of packed Elements across every
// state: NumStates()*Size() for fixed layout, len(compacts) for
// variable layout.
func (s *DefaultCompactStore[E]) NumCompacts() int {
	if s.size > 0 {
		return s.nstates * s.size
	}
	return len(s.compacts)
}
