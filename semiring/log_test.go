package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstlib/wfst/semiring"
)

func TestLogWeight_PlusIsLogAddExp(t *testing.T) {
	a := semiring.LogWeight(-math.Log(0.5))
	b := semiring.LogWeight(-math.Log(0.25))
	got := a.Plus(b)
	want := -math.Log(0.75)
	assert.InDelta(t, want, float64(got), 1e-9)
}

func TestLogWeight_ZeroIsPlusIdentity(t *testing.T) {
	a := semiring.LogWeight(1.25)
	assert.True(t, a.Plus(semiring.LogZero()).ApproxEqual(a, 1e-9))
}

func TestLogWeight_TimesIsSum(t *testing.T) {
	a := semiring.LogWeight(1)
	b := semiring.LogWeight(2)
	assert.Equal(t, semiring.LogWeight(3), a.Times(b))
}

func TestLogAdder_MatchesRepeatedPlus(t *testing.T) {
	vals := []semiring.LogWeight{1, 2, 3, 0.5}
	a := semiring.NewLogAdder()
	for _, v := range vals {
		a.Add(v)
	}
	manual := semiring.LogZero()
	for _, v := range vals {
		manual = manual.Plus(v)
	}
	assert.True(t, a.Sum().ApproxEqual(manual, 1e-9))
}

func TestRealWeight_Basic(t *testing.T) {
	a := semiring.RealWeight(3)
	b := semiring.RealWeight(4)
	assert.Equal(t, semiring.RealWeight(7), a.Plus(b))
	assert.Equal(t, semiring.RealWeight(12), a.Times(b))
}

func TestBooleanWeight_Basic(t *testing.T) {
	assert.Equal(t, semiring.BooleanWeight(true), semiring.BooleanWeight(true).Plus(semiring.BooleanWeight(false)))
	assert.Equal(t, semiring.BooleanWeight(false), semiring.BooleanWeight(true).Times(semiring.BooleanWeight(false)))
	assert.Equal(t, semiring.BooleanZero(), semiring.BooleanWeight(false))
	assert.Equal(t, semiring.BooleanOne(), semiring.BooleanWeight(true))
}
