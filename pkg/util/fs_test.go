package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walls.json")
	require.NoError(t, AtomicWrite(path, []byte("first")))
	require.NoError(t, AtomicWrite(path, []byte("second")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	err = AtomicWrite(filepath.Join(dir, "no-such-dir", "walls.json"), []byte("x"))
	require.Error(t, err)
}

func TestEscapePath(t *testing.T) {
	require.Equal(t, "empty-string", EscapePath(""))
	require.Equal(t, "nightly", EscapePath("nightly"))
	require.Equal(t, "2024-12-16T08%3A00%3A00Z", EscapePath("2024-12-16T08:00:00Z"))
	require.Equal(t, "a%2Fb%2E", EscapePath("a/b."))
}

func FuzzEscapePath(f *testing.F) {
	workDir := f.TempDir()
	f.Add("a")
	f.Add("a/b")
	f.Add("a\\b")
	f.Add("a:b")
	f.Add("a*b")
	f.Add("a?b")
	f.Add("a\"b")
	f.Add("a<b")
	f.Add("a>b")
	f.Add("a|b")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 20 {
			return
		}
		got := EscapePath(input)
		dir := filepath.Join(workDir, got)
		err := os.Mkdir(dir, 0776)
		require.NoError(t, err, "input: %s, got: %s", input, got)
		err = os.Remove(dir)
		require.NoError(t, err, "input: %s, got: %s", input, got)
	})
}
