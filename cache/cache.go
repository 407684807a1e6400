package cache

import (
	"errors"

	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

// ErrArcsAlreadySet indicates PushArc was called on a state after
// SetArcs closed its arc list; a state may be re-expanded only after an
// eviction clears it.
var ErrArcsAlreadySet = errors.New("cache: arcs already set for state")

// perStateBytes estimates one cached arc's footprint for GC accounting.
// It does not need to be exact, only a consistent unit the configured
// limit is denominated in.
const perStateBytes = 32

// entry holds one state's cached data, mirroring the fields a lazy FST
// needs before it can answer Final/NumArcs/Arc without re-deriving them.
type entry[S semiring.Semiring[S]] struct {
	hasFinal     bool
	final        S
	arcsSet      bool
	arcs         []fst.Arc[S]
	numIEpsilons int
	numOEpsilons int
	pinned       int // reference count; >0 means "do not evict"
}

// Cache is a thread-unsafe, per-instance lazy store. One Cache backs one
// derived FST; it is not shared across FST instances the way a
// CompactStore is.
type Cache[S semiring.Semiring[S]] struct {
	zero S

	hasStart bool
	start    fst.StateId

	states map[fst.StateId]*entry[S]
	order  []fst.StateId // insertion order, for FIFO eviction

	gcEnabled bool
	limit     int64
	used      int64
}

// New returns an empty Cache. limit is the byte budget; gcEnabled starts
// true. zero is the weight type's Zero, needed to answer HasFinal/Final
// queries before SetFinal has ever been called for a given state.
func New[S semiring.Semiring[S]](zero S, limit int64) *Cache[S] {
	return &Cache[S]{
		zero:      zero,
		states:    make(map[fst.StateId]*entry[S]),
		gcEnabled: true,
		limit:     limit,
	}
}

// SetGC toggles eviction; disabling it does not un-evict already-evicted
// states.
func (c *Cache[S]) SetGC(enabled bool) { c.gcEnabled = enabled }

// HasStart reports whether SetStart has been called.
func (c *Cache[S]) HasStart() bool { return c.hasStart }

// SetStart records the cached FST's start state.
func (c *Cache[S]) SetStart(s fst.StateId) {
	c.hasStart = true
	c.start = s
}

// Start returns the cached start state; valid only if HasStart.
func (c *Cache[S]) Start() fst.StateId { return c.start }

func (c *Cache[S]) entry(s fst.StateId) *entry[S] {
	e, ok := c.states[s]
	if !ok {
		e = &entry[S]{}
		c.states[s] = e
		c.order = append(c.order, s)
	}
	return e
}

// HasFinal reports whether state s's final weight has been cached.
func (c *Cache[S]) HasFinal(s fst.StateId) bool {
	e, ok := c.states[s]
	return ok && e.hasFinal
}

// SetFinal caches state s's final weight.
func (c *Cache[S]) SetFinal(s fst.StateId, w S) {
	e := c.entry(s)
	e.hasFinal = true
	e.final = w
}

// Final returns state s's cached final weight, or Zero if none is
// cached.
func (c *Cache[S]) Final(s fst.StateId) S {
	e, ok := c.states[s]
	if !ok || !e.hasFinal {
		return c.zero
	}
	return e.final
}

// HasArcs reports whether state s's arc list has been fully cached via
// SetArcs.
func (c *Cache[S]) HasArcs(s fst.StateId) bool {
	e, ok := c.states[s]
	return ok && e.arcsSet
}

// PushArc appends arc to state s's in-progress arc list. Calling it
// after SetArcs(s) is an error.
func (c *Cache[S]) PushArc(s fst.StateId, arc fst.Arc[S]) error {
	e := c.entry(s)
	if e.arcsSet {
		return ErrArcsAlreadySet
	}
	e.arcs = append(e.arcs, arc)
	if arc.ILabel == fst.Epsilon {
		e.numIEpsilons++
	}
	if arc.OLabel == fst.Epsilon {
		e.numOEpsilons++
	}
	c.used += perStateBytes
	c.maybeGC()
	return nil
}

// SetArcs closes state s's arc list: subsequent PushArc calls on s fail
// until an eviction reopens it.
func (c *Cache[S]) SetArcs(s fst.StateId) {
	c.entry(s).arcsSet = true
}

// NumArcs returns the number of cached arcs for s; 0 if unexpanded.
func (c *Cache[S]) NumArcs(s fst.StateId) int {
	e, ok := c.states[s]
	if !ok {
		return 0
	}
	return len(e.arcs)
}

// NumInputEpsilons returns the number of cached out-arcs of s with
// ilabel == Epsilon.
func (c *Cache[S]) NumInputEpsilons(s fst.StateId) int {
	if e, ok := c.states[s]; ok {
		return e.numIEpsilons
	}
	return 0
}

// NumOutputEpsilons returns the number of cached out-arcs of s with
// olabel == Epsilon.
func (c *Cache[S]) NumOutputEpsilons(s fst.StateId) int {
	if e, ok := c.states[s]; ok {
		return e.numOEpsilons
	}
	return 0
}

// Arc returns s's i'th cached out-arc.
func (c *Cache[S]) Arc(s fst.StateId, i int) fst.Arc[S] {
	return c.states[s].arcs[i]
}

// Pin marks s as currently iterated, excluding it from eviction until a
// matching Unpin.
func (c *Cache[S]) Pin(s fst.StateId) {
	c.entry(s).pinned++
}

// Unpin releases one Pin on s.
func (c *Cache[S]) Unpin(s fst.StateId) {
	if e, ok := c.states[s]; ok && e.pinned > 0 {
		e.pinned--
	}
}

// maybeGC evicts unpinned states' arcs in insertion order until the
// cache is back under budget, or gc is disabled entirely via SetGC.
// limit <= 0 is not a no-op: per spec, it disables caching, so every
// unpinned push is evicted again immediately (c.used > c.limit holds
// as soon as anything is cached against a non-positive budget).
func (c *Cache[S]) maybeGC() {
	if !c.gcEnabled {
		return
	}
	for _, s := range c.order {
		if c.used <= c.limit {
			break
		}
		e, ok := c.states[s]
		if !ok || e.pinned > 0 || len(e.arcs) == 0 {
			continue
		}
		c.used -= int64(len(e.arcs)) * perStateBytes
		e.arcs = nil
		e.arcsSet = false
		e.numIEpsilons, e.numOEpsilons = 0, 0
	}
}
