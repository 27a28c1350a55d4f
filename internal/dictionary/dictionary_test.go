package dictionary_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/dictionary"
	"github.com/kumarlokesh/sysd/exercises/autocomplete/internal/trie"
)

var defaultOpts = dictionary.Options{TrimSpace: true, Normalize: true}

func popularity(t *testing.T, tr *trie.Trie, word string) int {
	t.Helper()
	rec, ok := tr.Lookup(word)
	require.True(t, ok, "%q not loaded", word)
	require.True(t, rec.Ranked, "%q has no popularity", word)
	return rec.Popularity
}

func TestLoad_RanksByLine(t *testing.T) {
	tr := trie.New()
	stats, err := dictionary.Load(strings.NewReader("the\nthen\n\nthere\nthen\nthey\n"), tr, defaultOpts)
	require.NoError(t, err)

	assert.Equal(t, dictionary.Stats{Lines: 6, Inserted: 4, Skipped: 1, Duplicates: 1}, stats)
	assert.Equal(t, -1, popularity(t, tr, "the"))
	assert.Equal(t, -2, popularity(t, tr, "then"))
	assert.Equal(t, -4, popularity(t, tr, "there"))
	assert.Equal(t, -6, popularity(t, tr, "they"))

	// earlier lines win ranked predictions
	got, err := tr.PredictN("the", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "then"}, got)
}

func TestLoad_Options(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  dictionary.Options
		want  []string
	}{
		{
			name:  "trim space",
			input: "  padded \t\r\nplain\n",
			opts:  dictionary.Options{TrimSpace: true},
			want:  []string{"padded", "plain"},
		},
		{
			name:  "keep space",
			input: " padded\n",
			opts:  dictionary.Options{},
			want:  []string{" padded"},
		},
		{
			name:  "fold case",
			input: "Hello\nHELLO\nWorld\n",
			opts:  dictionary.Options{FoldCase: true},
			want:  []string{"hello", "world"},
		},
		{
			name:  "normalize combining marks",
			input: "cafe\u0301\ncaf\u00e9\n",
			opts:  dictionary.Options{Normalize: true},
			want:  []string{"caf\u00e9"},
		},
		{
			name:  "byte order mark",
			input: "\ufeffapple\nbanana\n",
			opts:  dictionary.Options{},
			want:  []string{"apple", "banana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := trie.New()
			_, err := dictionary.Load(strings.NewReader(tt.input), tr, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.AllWords())
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestLoad_ReadError(t *testing.T) {
	_, err := dictionary.Load(brokenReader{}, trie.New(), defaultOpts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device unplugged")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nhell\ntesting\n"), 0o644))

	tr := trie.New()
	stats, err := dictionary.LoadFile(path, tr, defaultOpts)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Inserted)
	assert.Equal(t, "testing", tr.LongestWord())
	assert.Equal(t, 2, tr.NumLeaves())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := dictionary.LoadFile(filepath.Join(t.TempDir(), "absent.txt"), trie.New(), defaultOpts)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_Clean(t *testing.T) {
	opts := dictionary.Options{TrimSpace: true, Normalize: true, FoldCase: true}
	assert.Equal(t, "caf\u00e9", opts.Clean("  CAFE\u0301 "))
	assert.Equal(t, " Mixed", dictionary.Options{}.Clean(" Mixed"))
}
