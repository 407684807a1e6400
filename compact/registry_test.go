package compact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/compact"
	"github.com/wfstlib/wfst/semiring"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := compact.NewRegistry()
	compact.RegisterCompactor(r, "string", func() *compact.StringCompactor[semiring.TropicalWeight] {
		return compact.NewStringCompactor(semiring.TropicalSemiring)
	})

	ctor, ok := compact.Lookup[*compact.StringCompactor[semiring.TropicalWeight]](r, "string")
	require.True(t, ok)
	c := ctor()
	assert.Equal(t, "string", c.Type())
}

func TestRegistry_LookupUnknownTypeName(t *testing.T) {
	r := compact.NewRegistry()
	_, ok := compact.Lookup[*compact.StringCompactor[semiring.TropicalWeight]](r, "missing")
	assert.False(t, ok)

	err := &compact.ErrUnknownCompactor{TypeName: "missing"}
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_LookupWrongTypeAssertionFails(t *testing.T) {
	r := compact.NewRegistry()
	compact.RegisterCompactor(r, "string", func() *compact.StringCompactor[semiring.TropicalWeight] {
		return compact.NewStringCompactor(semiring.TropicalSemiring)
	})

	_, ok := compact.Lookup[*compact.WeightedStringCompactor[semiring.TropicalWeight]](r, "string")
	assert.False(t, ok)
}
