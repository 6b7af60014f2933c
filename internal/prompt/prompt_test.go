package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewLines(strings.NewReader("hsv\r\nsecond\n"), &out)

	got, err := p.Ask("mode? ")
	require.NoError(t, err)
	assert.Equal(t, "hsv", got)

	got, err = p.Ask("next? ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = p.Ask("more? ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "mode? next? more? ", out.String())
}

func TestFieldsAcrossLines(t *testing.T) {
	tok := NewTokens(NewLines(strings.NewReader("\n60\n70 60\n"), nil), nil)
	got, err := tok.Fields("HSV: ", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"60", "70", "60"}, got)
}

func TestFieldsShortInput(t *testing.T) {
	tok := NewTokens(NewLines(strings.NewReader("60 70\n"), nil), nil)
	_, err := tok.Fields("HSV: ", 3)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	tok = NewTokens(NewLines(strings.NewReader(""), nil), nil)
	_, err = tok.Fields("HSV: ", 3)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWord(t *testing.T) {
	tok := NewTokens(NewLines(strings.NewReader("  tri  tet\n"), nil), nil)
	got, err := tok.Word("choice: ")
	require.NoError(t, err)
	assert.Equal(t, "tri", got)
}

func TestTokensKeepLeftoverWords(t *testing.T) {
	var out bytes.Buffer
	tok := NewTokens(NewLines(strings.NewReader("hsv 350 100\n100 c extra\n"), &out), &out)

	mode, err := tok.Word("mode? ")
	require.NoError(t, err)
	assert.Equal(t, "hsv", mode)

	hsv, err := tok.Fields("hsv? ", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"350", "100", "100"}, hsv)

	sel, err := tok.Word("kind? ")
	require.NoError(t, err)
	assert.Equal(t, "c", sel)

	next, err := tok.Word("again? ")
	require.NoError(t, err)
	assert.Equal(t, "extra", next)

	_, err = tok.Word("last? ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "mode? hsv? kind? again? last? ", out.String())
}

func TestNewFallsBackToLines(t *testing.T) {
	p := New(strings.NewReader("x\n"), io.Discard)
	_, ok := p.(*Lines)
	assert.True(t, ok)
}
