package compositeio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfstlib/wfst/semiring/compositeio"
)

func TestWriter_UnbracketedJoinsWithSeparator(t *testing.T) {
	var buf bytes.Buffer
	w := compositeio.NewWriter(&buf, compositeio.DefaultConfig())
	require.NoError(t, w.WriteBegin())
	require.NoError(t, w.WriteComponent("1"))
	require.NoError(t, w.WriteSeparator())
	require.NoError(t, w.WriteComponent("2"))
	require.NoError(t, w.WriteEnd())
	assert.Equal(t, "1,2", buf.String())
}

func TestWriter_BracketedWrapsComponents(t *testing.T) {
	var buf bytes.Buffer
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	w := compositeio.NewWriter(&buf, cfg)
	require.NoError(t, w.WriteBegin())
	require.NoError(t, w.WriteComponent("a"))
	require.NoError(t, w.WriteSeparator())
	require.NoError(t, w.WriteComponent("b"))
	require.NoError(t, w.WriteEnd())
	assert.Equal(t, "(a,b)", buf.String())
}

func TestReader_UnbracketedRoundTrip(t *testing.T) {
	r := compositeio.NewReader(bytes.NewReader([]byte("7,8")), compositeio.DefaultConfig())
	require.NoError(t, r.ReadBegin())
	tok1, err := r.ReadComponent()
	require.NoError(t, err)
	assert.Equal(t, "7", tok1)
	require.NoError(t, r.ReadSeparator())
	tok2, err := r.ReadComponent()
	require.NoError(t, err)
	assert.Equal(t, "8", tok2)
	require.NoError(t, r.ReadEnd())
	assert.Equal(t, 0, r.Depth())
}

func TestReader_BracketedRejectsMissingOpenBracket(t *testing.T) {
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	r := compositeio.NewReader(bytes.NewReader([]byte("a,b)")), cfg)
	err := r.ReadBegin()
	assert.ErrorIs(t, err, compositeio.ErrMissingOpenBracket)
}

func TestReader_BracketedRejectsMissingCloseBracket(t *testing.T) {
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	r := compositeio.NewReader(bytes.NewReader([]byte("(a,b")), cfg)
	require.NoError(t, r.ReadBegin())
	_, err := r.ReadComponent()
	require.NoError(t, err)
	require.NoError(t, r.ReadSeparator())
	_, err = r.ReadComponent()
	require.NoError(t, err)
	err = r.ReadEnd()
	assert.ErrorIs(t, err, compositeio.ErrMissingCloseBracket)
}

func TestReader_BracketedFullRoundTrip(t *testing.T) {
	cfg := compositeio.Config{Separator: ',', Open: '(', Close: ')', Bracketed: true}
	r := compositeio.NewReader(bytes.NewReader([]byte("(x,y)")), cfg)
	require.NoError(t, r.ReadBegin())
	tok1, err := r.ReadComponent()
	require.NoError(t, err)
	assert.Equal(t, "x", tok1)
	require.NoError(t, r.ReadSeparator())
	tok2, err := r.ReadComponent()
	require.NoError(t, err)
	assert.Equal(t, "y", tok2)
	require.NoError(t, r.ReadEnd())
}

func TestReader_SkipsLeadingWhitespaceInReadBegin(t *testing.T) {
	r := compositeio.NewReader(bytes.NewReader([]byte("  3,4")), compositeio.DefaultConfig())
	require.NoError(t, r.ReadBegin())
	tok, err := r.ReadComponent()
	require.NoError(t, err)
	assert.Equal(t, "3", tok)
}
