package semiring_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstlib/wfst/semiring"
)

func TestStringWeight_LeftPlusIsLongestCommonPrefix(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringLeft, 1, 2, 3)
	b := semiring.NewStringWeight(semiring.StringLeft, 1, 2, 9)
	got := a.Plus(b)
	assert.Equal(t, []semiring.StringLabel{1, 2}, got.Labels())
}

func TestStringWeight_RightPlusIsLongestCommonSuffix(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringRight, 1, 8, 9)
	b := semiring.NewStringWeight(semiring.StringRight, 5, 8, 9)
	got := a.Plus(b)
	assert.Equal(t, []semiring.StringLabel{8, 9}, got.Labels())
}

func TestStringWeight_RestrictPlusRequiresExactMatch(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringRestrict, 1, 2)
	b := semiring.NewStringWeight(semiring.StringRestrict, 1, 2)
	c := semiring.NewStringWeight(semiring.StringRestrict, 1, 3)

	same := a.Plus(b)
	assert.True(t, same.Member())
	assert.Equal(t, a.Labels(), same.Labels())

	diff := a.Plus(c)
	assert.False(t, diff.Member())
}

func TestStringWeight_TimesConcatenates(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringLeft, 1, 2)
	b := semiring.NewStringWeight(semiring.StringLeft, 3, 4)
	got := a.Times(b)
	assert.Equal(t, []semiring.StringLabel{1, 2, 3, 4}, got.Labels())
}

func TestStringWeight_RightTimesConcatenatesReversed(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringRight, 1, 2)
	b := semiring.NewStringWeight(semiring.StringRight, 3, 4)
	got := a.Times(b)
	assert.Equal(t, []semiring.StringLabel{3, 4, 1, 2}, got.Labels())
}

func TestStringWeight_ZeroAbsorbsInPlus(t *testing.T) {
	zero := semiring.StringZero(semiring.StringLeft)
	a := semiring.NewStringWeight(semiring.StringLeft, 1, 2)
	assert.True(t, a.Plus(zero).ApproxEqual(a, 0))
	assert.True(t, zero.Plus(a).ApproxEqual(a, 0))
}

func TestStringWeight_OneIsEmptySequence(t *testing.T) {
	one := semiring.StringOne(semiring.StringLeft)
	a := semiring.NewStringWeight(semiring.StringLeft, 1, 2)
	assert.True(t, a.Times(one).ApproxEqual(a, 0))
	assert.True(t, one.Times(a).ApproxEqual(a, 0))
}

func TestStringWeight_Reverse(t *testing.T) {
	a := semiring.NewStringWeight(semiring.StringLeft, 1, 2, 3)
	got := a.Reverse()
	assert.Equal(t, []semiring.StringLabel{3, 2, 1}, got.Labels())
}

func TestStringWeight_WireRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := semiring.NewStringWeight(semiring.StringLeft, 7, 8, 9)
	assert.NoError(t, w.WriteTo(&buf))
	got, err := semiring.ReadStringWeight(semiring.StringLeft, &buf)
	assert.NoError(t, err)
	assert.True(t, w.ApproxEqual(got, 0))
}
