package semiring_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/semiring"
	"github.com/wfstlib/wfst/semiring/compositeio"
)

func TestPairWeight_ComponentWisePlusAndTimes(t *testing.T) {
	a := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](2, 3)
	b := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](5, 4)

	plus := a.Plus(b)
	assert.Equal(t, semiring.TropicalWeight(2), plus.Value1())
	assert.Equal(t, semiring.RealWeight(7), plus.Value2())

	times := a.Times(b)
	assert.Equal(t, semiring.TropicalWeight(7), times.Value1())
	assert.Equal(t, semiring.RealWeight(12), times.Value2())
}

func TestPairWeight_Identities(t *testing.T) {
	zero := semiring.PairZero[semiring.TropicalWeight, semiring.RealWeight](
		semiring.TropicalSemiring, semiring.RealSemiring)
	one := semiring.PairOne[semiring.TropicalWeight, semiring.RealWeight](
		semiring.TropicalSemiring, semiring.RealSemiring)
	w := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](1, 2)
	assert.True(t, w.Plus(zero).ApproxEqual(w, 0))
	assert.True(t, w.Times(one).ApproxEqual(w, 0))
}

func TestPairWeight_WireRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](1.5, 2.5)
	assert.NoError(t, semiring.WritePairWeight[semiring.TropicalWeight, semiring.RealWeight](w, &buf))
	got1, err := semiring.ReadTropicalWeight(&buf)
	assert.NoError(t, err)
	got2, err := semiring.ReadRealWeight(&buf)
	assert.NoError(t, err)
	assert.Equal(t, w.Value1(), got1)
	assert.Equal(t, w.Value2(), got2)
}

func TestPowerWeight_ElementWiseOps(t *testing.T) {
	a := semiring.NewPowerWeight[semiring.TropicalWeight]([]semiring.TropicalWeight{2, 5})
	b := semiring.NewPowerWeight[semiring.TropicalWeight]([]semiring.TropicalWeight{4, 1})
	plus := a.Plus(b)
	assert.Equal(t, semiring.TropicalWeight(2), plus.At(0))
	assert.Equal(t, semiring.TropicalWeight(1), plus.At(1))

	times := a.Times(b)
	assert.Equal(t, semiring.TropicalWeight(6), times.At(0))
	assert.Equal(t, semiring.TropicalWeight(6), times.At(1))
}

func TestPowerWeight_ArityMismatchPanics(t *testing.T) {
	a := semiring.NewPowerWeight[semiring.TropicalWeight]([]semiring.TropicalWeight{1, 2})
	b := semiring.NewPowerWeight[semiring.TropicalWeight]([]semiring.TropicalWeight{1})
	assert.Panics(t, func() { a.Plus(b) })
}

func TestPowerWeight_ZeroOneArity(t *testing.T) {
	zero := semiring.PowerZero[semiring.TropicalWeight](semiring.TropicalSemiring, 3)
	one := semiring.PowerOne[semiring.TropicalWeight](semiring.TropicalSemiring, 3)
	assert.Equal(t, 3, zero.Len())
	assert.Equal(t, 3, one.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, semiring.TropicalZero(), zero.At(i))
		assert.Equal(t, semiring.TropicalOne(), one.At(i))
	}
}

func TestExpectationWeight_TimesIsBilinear(t *testing.T) {
	// Times = (p1*p2, p1*v2 + p2*v1) under Real.
	a := semiring.NewExpectationWeight[semiring.RealWeight, semiring.RealWeight](2, 3, semiring.CrossSameType[semiring.RealWeight])
	b := semiring.NewExpectationWeight[semiring.RealWeight, semiring.RealWeight](5, 7, semiring.CrossSameType[semiring.RealWeight])
	got := a.Times(b)
	assert.Equal(t, semiring.RealWeight(10), got.Value1())
	assert.Equal(t, semiring.RealWeight(2*7+5*3), got.Value2())
}

func TestExpectationWeight_OneHasZeroValueComponent(t *testing.T) {
	one := semiring.ExpectationOne[semiring.RealWeight, semiring.RealWeight](
		semiring.RealSemiring, semiring.RealSemiring, semiring.CrossSameType[semiring.RealWeight])
	assert.True(t, one.Value2().ApproxEqual(semiring.RealZero(), 0))

	a := semiring.NewExpectationWeight[semiring.RealWeight, semiring.RealWeight](4, 9, semiring.CrossSameType[semiring.RealWeight])
	got := a.Times(one)
	assert.True(t, got.Value1().ApproxEqual(a.Value1(), 0))
	assert.True(t, got.Value2().ApproxEqual(a.Value2(), 0))
}

func TestExpectationWeight_LogRealCrossProduct(t *testing.T) {
	// Spec scenario 4: Times((p1,v1),(p2,v2)) with p in the log semiring
	// and v a RealWeight scalar equals (p1+p2, p1*v2 + p2*v1), treating
	// the log semiring's own Times (ordinary +) as the cross operator.
	a := semiring.NewExpectationWeight[semiring.LogWeight, semiring.RealWeight](2, 3, semiring.CrossLogReal)
	b := semiring.NewExpectationWeight[semiring.LogWeight, semiring.RealWeight](5, 7, semiring.CrossLogReal)
	got := a.Times(b)
	assert.True(t, got.Value1().ApproxEqual(semiring.LogWeight(7), 0))
	assert.True(t, got.Value2().ApproxEqual(semiring.RealWeight(2+7+5+3), 0))
}

func TestPairWeight_StringAndParseRoundTrip(t *testing.T) {
	w := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](1.5, 2.5)
	text := semiring.StringPairWeight[semiring.TropicalWeight, semiring.RealWeight](w, compositeio.DefaultConfig())
	assert.Equal(t, "1.5,2.5", text)

	got, err := semiring.ParsePairWeight[semiring.TropicalWeight, semiring.RealWeight](
		bytes.NewReader([]byte(text)), compositeio.DefaultConfig(),
		parseTropical, parseReal)
	require.NoError(t, err)
	assert.True(t, got.Value1().ApproxEqual(w.Value1(), 0))
	assert.True(t, got.Value2().ApproxEqual(w.Value2(), 0))
}

func TestPairWeight_StringBracketedNesting(t *testing.T) {
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	w := semiring.NewPairWeight[semiring.TropicalWeight, semiring.RealWeight](3, 4)
	text := semiring.StringPairWeight[semiring.TropicalWeight, semiring.RealWeight](w, cfg)
	assert.Equal(t, "(3,4)", text)

	got, err := semiring.ParsePairWeight[semiring.TropicalWeight, semiring.RealWeight](
		bytes.NewReader([]byte(text)), cfg, parseTropical, parseReal)
	require.NoError(t, err)
	assert.True(t, got.Value1().ApproxEqual(w.Value1(), 0))
	assert.True(t, got.Value2().ApproxEqual(w.Value2(), 0))
}

func parseTropical(s string) (semiring.TropicalWeight, error) {
	f, err := strconv.ParseFloat(s, 64)
	return semiring.TropicalWeight(f), err
}

func parseReal(s string) (semiring.RealWeight, error) {
	f, err := strconv.ParseFloat(s, 64)
	return semiring.RealWeight(f), err
}
