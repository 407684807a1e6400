package semiring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstlib/wfst/semiring"
)

func TestGallicWeight_WrapsStringAndValue(t *testing.T) {
	labels := semiring.NewStringWeight(semiring.StringLeft, 1, 2)
	w := semiring.NewGallicWeight[semiring.TropicalWeight](labels, 5)
	assert.True(t, w.Labels().ApproxEqual(labels, 0))
	assert.Equal(t, semiring.TropicalWeight(5), w.Value())
}

func TestGallicWeight_TimesConcatenatesLabelsAndCombinesValue(t *testing.T) {
	a := semiring.NewGallicWeight[semiring.TropicalWeight](
		semiring.NewStringWeight(semiring.StringLeft, 1), 2)
	b := semiring.NewGallicWeight[semiring.TropicalWeight](
		semiring.NewStringWeight(semiring.StringLeft, 3), 4)
	got := a.Times(b)
	assert.Equal(t, []semiring.StringLabel{1, 3}, got.Labels().Labels())
	assert.Equal(t, semiring.TropicalWeight(6), got.Value())
}

func TestGallicWeight_Identities(t *testing.T) {
	zero := semiring.GallicZero[semiring.TropicalWeight](semiring.StringLeft, semiring.TropicalSemiring)
	one := semiring.GallicOne[semiring.TropicalWeight](semiring.StringLeft, semiring.TropicalSemiring)
	w := semiring.NewGallicWeight[semiring.TropicalWeight](
		semiring.NewStringWeight(semiring.StringLeft, 9), 3)
	assert.True(t, w.Plus(zero).ApproxEqual(w, 0))
	assert.True(t, w.Times(one).ApproxEqual(w, 0))
}

func TestGallicWeight_Type(t *testing.T) {
	w := semiring.NewGallicWeight[semiring.TropicalWeight](
		semiring.NewStringWeight(semiring.StringLeft, 1), 1)
	assert.Contains(t, w.Type(), "gallic")
	assert.Contains(t, w.Type(), "tropical")
}
