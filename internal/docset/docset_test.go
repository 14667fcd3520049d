package docset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return path
}

func TestID(t *testing.T) {
	id := ID("./docs/invoice.png")
	assert.Len(t, id, 8)
	assert.Regexp(t, "^[0-9a-f]{8}$", id)

	// Stable for the same path, different for different paths.
	assert.Equal(t, id, ID("./docs/invoice.png"))
	assert.NotEqual(t, id, ID("./docs/contract.png"))
}

func TestResolveExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.png")
	b := writeFile(t, dir, "b.txt")

	docs, err := Resolve([]string{b, a}, "")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Sorted by path, each with a derived id.
	assert.Equal(t, a, docs[0].Path)
	assert.Equal(t, b, docs[1].Path)
	assert.Equal(t, ID(a), docs[0].ID)
}

func TestResolveMissingPathFailsFast(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.png")

	_, err := Resolve([]string{a, filepath.Join(dir, "missing.png")}, "")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "missing.png")
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.jpg")
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "notes.exe")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	docs, err := Resolve(nil, dir)
	require.NoError(t, err)
	require.Len(t, docs, 2, "unknown extensions and subdirectories are skipped")
	assert.Equal(t, filepath.Join(dir, "a.txt"), docs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.jpg"), docs[1].Path)
}

func TestResolveMissingDirectory(t *testing.T) {
	_, err := Resolve(nil, filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve(nil, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
