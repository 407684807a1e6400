package far_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/far"
)

func TestSTList_WriteThenReadSequentially(t *testing.T) {
	var buf bytes.Buffer
	w, err := far.CreateSTList(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Add("b", []byte("BBB")))
	require.NoError(t, w.Add("a", []byte("AAA")))
	require.NoError(t, w.Close())

	r, err := far.OpenSTList(&buf)
	require.NoError(t, err)

	assert.False(t, r.Done())
	assert.Equal(t, "b", r.GetKey())
	r.Next()
	assert.Equal(t, "a", r.GetKey())
	r.Next()
	assert.True(t, r.Done())
}

func TestSTList_FindScansForward(t *testing.T) {
	var buf bytes.Buffer
	w, err := far.CreateSTList(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Add("k1", []byte("one")))
	require.NoError(t, w.Add("k2", []byte("two")))
	require.NoError(t, w.Close())

	r, err := far.OpenSTList(&buf)
	require.NoError(t, err)
	require.True(t, r.Find("k2"))
	assert.Equal(t, []byte("two"), r.GetFST())
	assert.False(t, r.Find("k3"))
}

func TestSTList_BadMagicRejected(t *testing.T) {
	_, err := far.OpenSTList(bytes.NewReader([]byte{0, 0, 0, 0}))
	assert.ErrorIs(t, err, far.ErrBadMagic)
}

func TestSTList_EmptyArchiveIsImmediatelyDone(t *testing.T) {
	var buf bytes.Buffer
	w, err := far.CreateSTList(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := far.OpenSTList(&buf)
	require.NoError(t, err)
	assert.True(t, r.Done())
}
