package far_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/far"
)

// TestSTTable_OrderEnforcementAndRoundTrip matches spec §8's "STTABLE
// order enforcement" scenario: keys must be added in strictly
// increasing order, and a round trip preserves every key/FST pair with
// working binary-search Find.
func TestSTTable_OrderEnforcementAndRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := far.CreateSTTable(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Add("alpha", []byte("AAA")))
	require.NoError(t, w.Add("beta", []byte("BBB")))

	err = w.Add("alpha", []byte("dup"))
	assert.ErrorIs(t, err, far.ErrOutOfOrderKey)

	require.NoError(t, w.Close())

	r, err := far.OpenSTTable(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	assert.False(t, r.Done())
	assert.Equal(t, "alpha", r.GetKey())
	assert.Equal(t, []byte("AAA"), r.GetFST())
	r.Next()
	assert.Equal(t, "beta", r.GetKey())
	r.Next()
	assert.True(t, r.Done())

	require.True(t, r.Find("beta"))
	assert.Equal(t, []byte("BBB"), r.GetFST())
	assert.False(t, r.Find("gamma"))

	r.Reset()
	assert.Equal(t, "alpha", r.GetKey())
}

func TestSTTable_AddAfterCloseFails(t *testing.T) {
	var buf bytes.Buffer
	w, err := far.CreateSTTable(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	err = w.Add("x", []byte("y"))
	assert.ErrorIs(t, err, far.ErrClosed)
}

func TestSTTable_BadMagicRejected(t *testing.T) {
	buf := bytes.Repeat([]byte{0}, 16)
	_, err := far.OpenSTTable(bytes.NewReader(buf), int64(len(buf)))
	assert.ErrorIs(t, err, far.ErrBadMagic)
}
