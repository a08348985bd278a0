package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/adapters/cas"
)

func TestStore_PutCreatesParents(t *testing.T) {
	root := filepath.Join(t.TempDir(), "_webasset_cache_")
	store := cas.NewStore(root, false)

	written, err := store.Put("js/lib/app.cache.01.js", []byte("a"))
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(filepath.Join(root, "js", "lib", "app.cache.01.js"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestStore_PutKeepsExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.cache.01.js"), []byte("old"), 0o600))

	store := cas.NewStore(root, false)
	written, err := store.Put("app.cache.01.js", []byte("new"))
	require.NoError(t, err)
	assert.False(t, written)

	data, err := os.ReadFile(filepath.Join(root, "app.cache.01.js"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestStore_PutOverwritesOnFirstRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.cache.01.js"), []byte("stale"), 0o600))

	store := cas.NewStore(root, true)

	written, err := store.Put("app.cache.01.js", []byte("fresh"))
	require.NoError(t, err)
	assert.True(t, written)

	written, err = store.Put("app.cache.01.js", []byte("again"))
	require.NoError(t, err)
	assert.False(t, written, "a path is only overwritten once per process")

	data, err := os.ReadFile(filepath.Join(root, "app.cache.01.js"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestStore_Ensure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")
	store := cas.NewStore(root, false)

	require.NoError(t, store.Ensure())
	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, root, store.Root())
}

func TestStore_Clear(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	store := cas.NewStore(root, false)

	_, err := store.Put("js/deep/nested/app.cache.01.js", []byte("a"))
	require.NoError(t, err)
	_, err = store.Put("css/site.cache.02.css", []byte("b"))
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err), "empty cache root must be removed")
}

func TestStore_ClearKeepsForeignFiles(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore(root, false)

	_, err := store.Put("js/app.cache.01.js", []byte("a"))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "img"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "img", "logo.png"), []byte("png"), 0o600))

	require.NoError(t, store.Clear())

	_, err = os.Stat(filepath.Join(root, "js"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "img", "logo.png"))
	assert.NoError(t, err)
}

func TestStore_ClearMissingRoot(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "missing"), false)
	assert.NoError(t, store.Clear())
}
