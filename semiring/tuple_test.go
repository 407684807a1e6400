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

func TestTupleWeight_PlusIsElementWise(t *testing.T) {
	a := semiring.NewTupleWeight[semiring.TropicalWeight](2, 5, 9)
	b := semiring.NewTupleWeight[semiring.TropicalWeight](4, 1, 3)
	got := a.Plus(b)
	assert.Equal(t, semiring.TropicalWeight(2), got.At(0))
	assert.Equal(t, semiring.TropicalWeight(1), got.At(1))
	assert.Equal(t, semiring.TropicalWeight(3), got.At(2))
}

func TestTupleWeight_TimesConcatenates(t *testing.T) {
	a := semiring.NewTupleWeight[semiring.TropicalWeight](1, 2)
	b := semiring.NewTupleWeight[semiring.TropicalWeight](3)
	got := a.Times(b)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, semiring.TropicalWeight(1), got.At(0))
	assert.Equal(t, semiring.TropicalWeight(2), got.At(1))
	assert.Equal(t, semiring.TropicalWeight(3), got.At(2))
}

func TestTupleWeight_TimesDoesNotElementWiseCombine(t *testing.T) {
	// Distinct from PowerWeight: Times grows the tuple rather than
	// combining same-length tuples element-wise.
	a := semiring.NewTupleWeight[semiring.TropicalWeight](1)
	b := semiring.NewTupleWeight[semiring.TropicalWeight](2)
	got := a.Times(b)
	assert.Equal(t, 2, got.Len())
}

func TestTupleWeight_Append(t *testing.T) {
	a := semiring.NewTupleWeight[semiring.TropicalWeight](1, 2)
	got := a.Append(3)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, semiring.TropicalWeight(3), got.At(2))
	assert.Equal(t, 2, a.Len(), "Append must not mutate the receiver's length")
}

func TestTupleWeight_PlusPanicsOnLengthMismatch(t *testing.T) {
	a := semiring.NewTupleWeight[semiring.TropicalWeight](1, 2)
	b := semiring.NewTupleWeight[semiring.TropicalWeight](1)
	assert.Panics(t, func() { a.Plus(b) })
}

func TestTupleWeight_StringAndParseRoundTrip(t *testing.T) {
	w := semiring.NewTupleWeight[semiring.TropicalWeight](1, 2, 3)
	text := semiring.StringTupleWeight[semiring.TropicalWeight](w, compositeio.DefaultConfig())
	assert.Equal(t, "1,2,3", text)

	got, err := semiring.ParseTupleWeight[semiring.TropicalWeight](
		bytes.NewReader([]byte(text)), compositeio.DefaultConfig(), parseTupleTropical)
	require.NoError(t, err)
	assert.Equal(t, w.Len(), got.Len())
	for i := 0; i < w.Len(); i++ {
		assert.True(t, got.At(i).ApproxEqual(w.At(i), 0))
	}
}

func TestTupleWeight_StringBracketedEmpty(t *testing.T) {
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	w := semiring.NewTupleWeight[semiring.TropicalWeight]()
	text := semiring.StringTupleWeight[semiring.TropicalWeight](w, cfg)
	assert.Equal(t, "()", text)
}

func parseTupleTropical(s string) (semiring.TropicalWeight, error) {
	f, err := strconv.ParseFloat(s, 64)
	return semiring.TropicalWeight(f), err
}
