package vector

import (
	"errors"
	"sync"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// Sentinel errors for VectorFst mutation.
var (
	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("vector: state not found")

	// ErrBadNextState indicates an arc's nextstate is neither a valid
	// StateId nor fst.NoStateId.
	ErrBadNextState = errors.New("vector: arc nextstate out of range")
)

// vstate is one state's mutable record: its final weight and out-arcs.
type vstate[S semiring.Semiring[S]] struct {
	final S
	arcs  []fst.Arc[S]
}

// Option configures a VectorFst at construction time.
type Option[S semiring.Semiring[S]] func(*VectorFst[S])

// WithInputSymbols attaches an input SymbolTable.
func WithInputSymbols[S semiring.Semiring[S]](t *fst.SymbolTable) Option[S] {
	return func(f *VectorFst[S]) { f.isyms = t }
}

// WithOutputSymbols attaches an output SymbolTable.
func WithOutputSymbols[S semiring.Semiring[S]](t *fst.SymbolTable) Option[S] {
	return func(f *VectorFst[S]) { f.osyms = t }
}

// VectorFst is the mutable adjacency-list FST representation.
// muStates guards the state slice (append/delete/final-weight writes);
// muArcs guards arc-list mutation within already-existing states. The
// split mirrors a graph holding one lock for its vertex set and another
// for its per-vertex adjacency, so an AddArc on state 3 never blocks a
// concurrent Final(7).
type VectorFst[S semiring.Semiring[S]] struct {
	muStates sync.RWMutex
	muArcs   sync.RWMutex

	ops   semiring.SemiringOps[S]
	start fst.StateId
	states []*vstate[S]

	props fst.KnownProperties
	isyms *fst.SymbolTable
	osyms *fst.SymbolTable
}

// New returns an empty VectorFst with no states and start = NoStateId.
// ops supplies the weight type's Zero/One, needed because Go cannot call
// them as static methods of the type parameter S.
func New[S semiring.Semiring[S]](ops semiring.SemiringOps[S], opts ...Option[S]) *VectorFst[S] {
	f := &VectorFst[S]{
		ops:   ops,
		start: fst.NoStateId,
		props: fst.KnownProperties{}.Assert(fst.Expanded | fst.Mutable | fst.Acceptor | fst.Unweighted).
			Deny(fst.Epsilons | fst.IEpsilons | fst.OEpsilons | fst.Weighted).
			Assert(fst.Accessible | fst.Coaccessible | fst.Acyclic | fst.TopSorted | fst.ILabelSorted | fst.OLabelSorted),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddState appends a new state with Zero final weight and no out-arcs,
// returning its StateId. O(1) amortized.
func (f *VectorFst[S]) AddState() fst.StateId {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	id := fst.StateId(len(f.states))
	f.states = append(f.states, &vstate[S]{final: f.ops.Zero})
	f.props = f.props.Forget(fst.Accessible | fst.Coaccessible)
	return id
}

// ReserveStates is a performance hint; it pre-grows the state slice's
// backing array to avoid repeated reallocation.
func (f *VectorFst[S]) ReserveStates(n int) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	if n <= len(f.states) {
		return
	}
	grown := make([]*vstate[S], len(f.states), n)
	copy(grown, f.states)
	f.states = grown
}

// ReserveArcs is a performance hint for state s's out-arc slice.
func (f *VectorFst[S]) ReserveArcs(s fst.StateId, n int) error {
	f.muArcs.Lock()
	defer f.muArcs.Unlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return err
	}
	if n <= len(st.arcs) {
		return nil
	}
	grown := make([]fst.Arc[S], len(st.arcs), n)
	copy(grown, st.arcs)
	st.arcs = grown
	return nil
}

func (f *VectorFst[S]) stateLocked(s fst.StateId) (*vstate[S], error) {
	if s < 0 || int(s) >= len(f.states) {
		return nil, ErrStateNotFound
	}
	return f.states[s], nil
}

// SetStart sets the start state.
func (f *VectorFst[S]) SetStart(s fst.StateId) error {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	if s != fst.NoStateId {
		if _, err := f.stateLocked(s); err != nil {
			return err
		}
	}
	f.start = s
	return nil
}

// SetFinal sets state s's final weight; Zero marks s non-final.
func (f *VectorFst[S]) SetFinal(s fst.StateId, w S) error {
	if !w.Member() {
		f.props = f.props.SetError()
		return semiring.ErrNotMember
	}
	f.muStates.Lock()
	defer f.muStates.Unlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return err
	}
	st.final = w
	if !w.ApproxEqual(f.ops.Zero, 0) {
		f.props = f.props.Forget(fst.Unweighted).Forget(fst.Coaccessible)
	}
	return nil
}

// AddArc appends arc to state s's out-arc list. O(1) amortized. Clears
// the ILabelSorted/OLabelSorted known-bits unless the append happens to
// preserve sort order (checked cheaply against the previous last arc).
func (f *VectorFst[S]) AddArc(s fst.StateId, arc fst.Arc[S]) error {
	if arc.NextState != fst.NoStateId {
		f.muStates.RLock()
		bad := arc.NextState < 0 || int(arc.NextState) >= len(f.states)
		f.muStates.RUnlock()
		if bad {
			return ErrBadNextState
		}
	}
	if !arc.Weight.Member() {
		f.props = f.props.SetError()
		return semiring.ErrNotMember
	}
	f.muArcs.Lock()
	defer f.muArcs.Unlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return err
	}
	if n := len(st.arcs); n > 0 {
		prev := st.arcs[n-1]
		if arc.ILabel < prev.ILabel {
			f.props = f.props.Forget(fst.ILabelSorted)
		}
		if arc.OLabel < prev.OLabel {
			f.props = f.props.Forget(fst.OLabelSorted)
		}
	}
	st.arcs = append(st.arcs, arc)

	if arc.ILabel != arc.OLabel {
		f.props = f.props.Forget(fst.Acceptor)
	}
	if arc.ILabel == fst.Epsilon {
		f.props = f.props.Assert(fst.Epsilons | fst.IEpsilons)
	}
	if arc.OLabel == fst.Epsilon {
		f.props = f.props.Assert(fst.Epsilons | fst.OEpsilons)
	}
	if !arc.Weight.ApproxEqual(f.ops.One, 0) {
		f.props = f.props.Forget(fst.Unweighted)
	}
	f.props = f.props.Forget(fst.Accessible | fst.Coaccessible | fst.Cyclic | fst.Acyclic | fst.TopSorted)
	return nil
}

// DeleteStates removes the listed states, every arc referencing them,
// and compacts the remaining states to retain dense StateIds. The start
// state is updated or cleared if it was among those deleted.
func (f *VectorFst[S]) DeleteStates(toDelete []fst.StateId) error {
	f.muStates.Lock()
	f.muArcs.Lock()
	defer f.muStates.Unlock()
	defer f.muArcs.Unlock()

	dead := make(map[fst.StateId]bool, len(toDelete))
	for _, s := range toDelete {
		if _, err := f.stateLocked(s); err != nil {
			return err
		}
		dead[s] = true
	}

	remap := make(map[fst.StateId]fst.StateId, len(f.states))
	kept := make([]*vstate[S], 0, len(f.states)-len(dead))
	for old := fst.StateId(0); int(old) < len(f.states); old++ {
		if dead[old] {
			continue
		}
		remap[old] = fst.StateId(len(kept))
		kept = append(kept, f.states[old])
	}

	for _, st := range kept {
		filtered := st.arcs[:0]
		for _, a := range st.arcs {
			if a.NextState == fst.NoStateId {
				filtered = append(filtered, a)
				continue
			}
			if dead[a.NextState] {
				continue
			}
			a.NextState = remap[a.NextState]
			filtered = append(filtered, a)
		}
		st.arcs = filtered
	}

	f.states = kept
	if f.start != fst.NoStateId {
		if dead[f.start] {
			f.start = fst.NoStateId
		} else {
			f.start = remap[f.start]
		}
	}
	f.props = f.props.Forget(fst.Accessible | fst.Coaccessible | fst.Cyclic | fst.Acyclic |
		fst.TopSorted | fst.ILabelSorted | fst.OLabelSorted)
	return nil
}

// Start implements fst.FST.
func (f *VectorFst[S]) Start() fst.StateId {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return f.start
}

// Final implements fst.FST.
func (f *VectorFst[S]) Final(s fst.StateId) S {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return f.ops.Zero
	}
	return st.final
}

// NumStates implements fst.FST.
func (f *VectorFst[S]) NumStates() int {
	f.muStates.RLock()
	defer f.muStates.RUnlock()
	return len(f.states)
}

// NumArcs implements fst.FST.
func (f *VectorFst[S]) NumArcs(s fst.StateId) int {
	f.muArcs.RLock()
	defer f.muArcs.RUnlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return 0
	}
	return len(st.arcs)
}

// Arc implements fst.FST.
func (f *VectorFst[S]) Arc(s fst.StateId, i int) fst.Arc[S] {
	f.muArcs.RLock()
	defer f.muArcs.RUnlock()
	st, err := f.stateLocked(s)
	if err != nil {
		return fst.Arc[S]{NextState: fst.NoStateId}
	}
	return st.arcs[i]
}

// Properties implements fst.FST. exact forces a full recomputation pass,
// after which every bit is known.
func (f *VectorFst[S]) Properties(exact bool) fst.KnownProperties {
	f.muStates.RLock()
	f.muArcs.RLock()
	defer f.muStates.RUnlock()
	defer f.muArcs.RUnlock()
	if !exact {
		return f.props
	}
	return f.recompute()
}

// recompute derives every property bit from scratch by scanning states
// and arcs once; callers hold at least read locks on both mutexes.
func (f *VectorFst[S]) recompute() fst.KnownProperties {
	out := fst.KnownProperties{}.Assert(fst.Expanded | fst.Mutable)
	acceptor, unweighted, epsilons, iEps, oEps := true, true, false, false, false
	iSorted, oSorted := true, true
	singlePath, finalCount := true, 0
	for _, st := range f.states {
		if !st.final.ApproxEqual(f.ops.Zero, 0) && !st.final.ApproxEqual(f.ops.One, 0) {
			unweighted = false
		}
		if !st.final.ApproxEqual(f.ops.Zero, 0) {
			finalCount++
		}
		if len(st.arcs) > 1 {
			singlePath = false
		}
		var prevI, prevO fst.Label = fst.NoLabel, fst.NoLabel
		for j, a := range st.arcs {
			if a.ILabel != a.OLabel {
				acceptor = false
			}
			if a.ILabel == fst.Epsilon {
				epsilons, iEps = true, true
			}
			if a.OLabel == fst.Epsilon {
				epsilons, oEps = true, true
			}
			if !a.Weight.ApproxEqual(f.ops.One, 0) {
				unweighted = false
			}
			if j > 0 {
				if a.ILabel < prevI {
					iSorted = false
				}
				if a.OLabel < prevO {
					oSorted = false
				}
			}
			prevI, prevO = a.ILabel, a.OLabel
		}
	}
	if acceptor {
		out = out.Assert(fst.Acceptor).Deny(fst.Transducer)
	} else {
		out = out.Deny(fst.Acceptor).Assert(fst.Transducer)
	}
	if unweighted {
		out = out.Assert(fst.Unweighted).Deny(fst.Weighted)
	} else {
		out = out.Deny(fst.Unweighted).Assert(fst.Weighted)
	}
	if epsilons {
		out = out.Assert(fst.Epsilons)
	} else {
		out = out.Deny(fst.Epsilons)
	}
	if iEps {
		out = out.Assert(fst.IEpsilons)
	} else {
		out = out.Deny(fst.IEpsilons)
	}
	if oEps {
		out = out.Assert(fst.OEpsilons)
	} else {
		out = out.Deny(fst.OEpsilons)
	}
	if iSorted {
		out = out.Assert(fst.ILabelSorted)
	} else {
		out = out.Deny(fst.ILabelSorted)
	}
	if oSorted {
		out = out.Assert(fst.OLabelSorted)
	} else {
		out = out.Deny(fst.OLabelSorted)
	}
	if singlePath && finalCount == 1 {
		out = out.Assert(fst.String)
	} else {
		out = out.Deny(fst.String)
	}
	accessible, coaccessible := f.computeAccessibility()
	if accessible {
		out = out.Assert(fst.Accessible)
	} else {
		out = out.Deny(fst.Accessible)
	}
	if coaccessible {
		out = out.Assert(fst.Coaccessible)
	} else {
		out = out.Deny(fst.Coaccessible)
	}
	cyclic, topSorted := f.computeCyclicity()
	if cyclic {
		out = out.Assert(fst.Cyclic).Deny(fst.Acyclic)
	} else {
		out = out.Deny(fst.Cyclic).Assert(fst.Acyclic)
	}
	if topSorted {
		out = out.Assert(fst.TopSorted)
	} else {
		out = out.Deny(fst.TopSorted)
	}
	if f.props.Has(fst.Error) {
		out = out.SetError()
	} else {
		out = out.Deny(fst.Error)
	}
	f.props = out
	return out
}

// computeCyclicity reports whether the state graph contains a cycle
// (three-color DFS over every state, not just those reachable from
// start, so a dead subgraph's cycle still counts), and whether the
// existing StateId order is already topological: every arc s->t with a
// real destination satisfies t > s, which also rules out self-loops.
func (f *VectorFst[S]) computeCyclicity() (cyclic, topSorted bool) {
	n := len(f.states)
	topSorted = true
	const (
		white = iota
		gray
		black
	)
	color := make([]int8, n)
	var stack []fst.StateId
	for start := fst.StateId(0); int(start) < n; start++ {
		if color[start] != white {
			continue
		}
		stack = append(stack, start)
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			if color[s] == white {
				color[s] = gray
			}
			advanced := false
			for _, a := range f.states[s].arcs {
				if a.NextState == fst.NoStateId {
					continue
				}
				if a.NextState <= s {
					topSorted = false
				}
				switch color[a.NextState] {
				case white:
					stack = append(stack, a.NextState)
					advanced = true
				case gray:
					cyclic = true
				}
				if advanced {
					break
				}
			}
			if !advanced {
				color[s] = black
				stack = stack[:len(stack)-1]
			}
		}
	}
	return cyclic, topSorted
}

// computeAccessibility reports whether every state is reachable from
// the start state, and whether every state has a path to a final state.
func (f *VectorFst[S]) computeAccessibility() (accessible, coaccessible bool) {
	n := len(f.states)
	if n == 0 {
		return true, true
	}
	reach := make([]bool, n)
	if f.start != fst.NoStateId {
		stack := []fst.StateId{f.start}
		reach[f.start] = true
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range f.states[s].arcs {
				if a.NextState != fst.NoStateId && !reach[a.NextState] {
					reach[a.NextState] = true
					stack = append(stack, a.NextState)
				}
			}
		}
	}
	accessible = true
	for _, r := range reach {
		if !r {
			accessible = false
			break
		}
	}

	rev := make([][]fst.StateId, n)
	for s, st := range f.states {
		for _, a := range st.arcs {
			if a.NextState != fst.NoStateId {
				rev[a.NextState] = append(rev[a.NextState], fst.StateId(s))
			}
		}
	}
	coReach := make([]bool, n)
	var stack []fst.StateId
	for s, st := range f.states {
		if !st.final.ApproxEqual(f.ops.Zero, 0) {
			coReach[s] = true
			stack = append(stack, fst.StateId(s))
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !coReach[p] {
				coReach[p] = true
				stack = append(stack, p)
			}
		}
	}
	coaccessible = true
	for _, r := range coReach {
		if !r {
			coaccessible = false
			break
		}
	}
	return accessible, coaccessible
}

// InputSymbols implements fst.FST.
func (f *VectorFst[S]) InputSymbols() *fst.SymbolTable { return f.isyms }

// OutputSymbols implements fst.FST.
func (f *VectorFst[S]) OutputSymbols() *fst.SymbolTable { return f.osyms }

// Type implements fst.FST.
func (f *VectorFst[S]) Type() string { return "vector" }

// SetInputSymbols attaches or clears (nil) the input SymbolTable.
func (f *VectorFst[S]) SetInputSymbols(t *fst.SymbolTable) { f.isyms = t }

// SetOutputSymbols attaches or clears (nil) the output SymbolTable.
func (f *VectorFst[S]) SetOutputSymbols(t *fst.SymbolTable) { f.osyms = t }
