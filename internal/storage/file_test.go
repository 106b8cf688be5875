package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore(t *testing.T) {
	t.Run("empty base path", func(t *testing.T) {
		fs, err := NewFileStore("  ")
		assert.Error(t, err)
		assert.Nil(t, fs)
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := t.TempDir() + "/nested/files"

		fs, err := NewFileStore(dir)
		assert.NoError(t, err)
		assert.NotNil(t, fs)
	})
}

func TestFileStore_SaveAndOpen(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	content := "%PDF-1.4 body"

	path, err := fs.Save(strings.NewReader(content))
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	f, err := fs.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFileStore_DistinctPaths(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := fs.Save(strings.NewReader("one"))
	require.NoError(t, err)
	second, err := fs.Save(strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileStore_Remove(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	path, err := fs.Save(strings.NewReader("data"))
	require.NoError(t, err)

	assert.NoError(t, fs.Remove(path))

	_, err = fs.Open(path)
	assert.Error(t, err)

	// removing an already missing file is fine
	assert.NoError(t, fs.Remove(path))
}

func TestFileStore_OpenIgnoresDirectoryTraversal(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	path, err := fs.Save(strings.NewReader("data"))
	require.NoError(t, err)

	f, err := fs.Open("../../" + path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}
