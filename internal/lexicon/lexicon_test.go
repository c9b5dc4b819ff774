package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLexiconIsWellFormed(t *testing.T) {
	list := Bundled()
	require.Greater(t, list.Len(), 100)
	assert.Equal(t, BundledSource, list.Source())
	for _, word := range list.Words() {
		assert.True(t, validWord(word), "invalid bundled word %q", word)
		assert.Equal(t, strings.ToLower(word), word)
	}
}

func TestParseSkipsBlankLinesAndLowercases(t *testing.T) {
	list, err := Parse(strings.NewReader("Alpha\n\n  beta  \r\ngamma\n"), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, list.Words())
	assert.Equal(t, 3, list.Len())
}

func TestParseRejectsMultiWordLines(t *testing.T) {
	_, err := Parse(strings.NewReader("alpha\nbeta gamma\n"), "words.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "words.txt:2")
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n \n"), "empty.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestOpen(t *testing.T) {
	list, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, BundledSource, list.Source())

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))
	list, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, list.Source())
	assert.Equal(t, []string{"one", "two"}, list.Words())

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidWord(t *testing.T) {
	for _, word := range []string{"hello", "résumé", "don’t", "co-op"} {
		assert.True(t, validWord(word), word)
	}
	for _, word := range []string{"", "two words", "tab\there"} {
		assert.False(t, validWord(word), word)
	}
}
