package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/cache"
	"github.com/wfstlib/wfst/fst"
	"github.com/wfstlib/wfst/semiring"
)

func TestCache_StartAndFinalDefaults(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 1<<20)
	assert.False(t, c.HasStart())
	assert.False(t, c.HasFinal(0))
	assert.True(t, c.Final(0).ApproxEqual(semiring.TropicalZero(), 0))

	c.SetStart(2)
	assert.True(t, c.HasStart())
	assert.Equal(t, fst.StateId(2), c.Start())
}

func TestCache_PushArcThenSetArcsClosesState(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 1<<20)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: fst.Epsilon, NextState: 1}))
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{ILabel: 5, OLabel: fst.Epsilon, NextState: 2}))
	c.SetArcs(0)

	assert.True(t, c.HasArcs(0))
	assert.Equal(t, 2, c.NumArcs(0))
	assert.Equal(t, 1, c.NumInputEpsilons(0))
	assert.Equal(t, 2, c.NumOutputEpsilons(0))

	err := c.PushArc(0, fst.Arc[semiring.TropicalWeight]{})
	assert.ErrorIs(t, err, cache.ErrArcsAlreadySet)
}

// TestCache_FIFOEvictionSkipsPinnedStates matches spec §8's cache
// eviction scenario: a tight byte budget evicts the oldest unpinned
// state's arcs first, leaving a pinned state untouched.
func TestCache_FIFOEvictionSkipsPinnedStates(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 32) // budget for ~1 arc

	c.Pin(0)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 1}))
	c.SetArcs(0)

	require.NoError(t, c.PushArc(1, fst.Arc[semiring.TropicalWeight]{NextState: 2}))

	// Pushing into state 1 pushes usage over budget and triggers
	// eviction before state 1's own arc list is ever closed; state 0 is
	// pinned and must survive, state 1 is the only unpinned state
	// available to reclaim space.
	assert.True(t, c.HasArcs(0))
	assert.False(t, c.HasArcs(1))
	assert.Equal(t, 0, c.NumArcs(1))

	c.Unpin(0)
}

func TestCache_SetGCDisablesEviction(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 1)
	c.SetGC(false)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 1}))
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 2}))
	c.SetArcs(0)
	assert.True(t, c.HasArcs(0))
	assert.Equal(t, 2, c.NumArcs(0))
}

// TestCache_ZeroLimitDisablesCaching pins down spec §4.5's literal
// requirement: limit=0 disables caching outright (every unpinned push is
// evicted again immediately), not just eviction.
func TestCache_ZeroLimitDisablesCaching(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 0)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 1}))
	assert.False(t, c.HasArcs(0))
	assert.Equal(t, 0, c.NumArcs(0))
}

// TestCache_NegativeLimitAlsoDisablesCaching covers the "<=0" half of the
// fixed guard directly, not just the boundary value.
func TestCache_NegativeLimitAlsoDisablesCaching(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), -1)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 1}))
	assert.Equal(t, 0, c.NumArcs(0))
}

// TestCache_ZeroLimitStillHonorsPinning confirms a pinned state survives
// eviction even when caching is otherwise fully disabled.
func TestCache_ZeroLimitStillHonorsPinning(t *testing.T) {
	c := cache.New(semiring.TropicalZero(), 0)
	c.Pin(0)
	require.NoError(t, c.PushArc(0, fst.Arc[semiring.TropicalWeight]{NextState: 1}))
	c.SetArcs(0)
	assert.True(t, c.HasArcs(0))
	assert.Equal(t, 1, c.NumArcs(0))
	c.Unpin(0)
}
