package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/adapters/fs"
	"pgregory.net/rapid"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config.waf"), "git")
	writeFile(t, filepath.Join(root, "ignored", "skip.waf"), "{}")
	writeFile(t, filepath.Join(root, "global.waf"), "{}")
	writeFile(t, filepath.Join(root, "pages", "home.waf"), "{}")
	writeFile(t, filepath.Join(root, "pages", "README.md"), "# readme")

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, ".waf", []string{"ignored"}) {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)

	assert.Equal(t, []string{"global.waf", "pages/home.waf"}, got)
}

func TestWalker_WalkFilesStopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.waf"), "{}")
	writeFile(t, filepath.Join(root, "b.waf"), "{}")

	count := 0
	for range fs.NewWalker().WalkFiles(root, "", nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestHasher_Checksum(t *testing.T) {
	h := fs.NewHasher()

	sum := h.Checksum([]byte("var a=1;"))
	assert.Len(t, sum, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", sum)
	assert.Equal(t, sum, h.Checksum([]byte("var a=1;")))
	assert.NotEqual(t, sum, h.Checksum([]byte("var a=2;")))
	assert.Equal(t, "ef46db3751d8e999", h.Checksum(nil))
}

func TestHasher_ChecksumProperties(t *testing.T) {
	h := fs.NewHasher()
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		sum := h.Checksum(data)
		if want := fmt.Sprintf("%016x", xxhash.Sum64(data)); sum != want {
			t.Fatalf("checksum = %q, want %q", sum, want)
		}
	})
}

func TestCopyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.css")
	writeFile(t, src, "body { color: red; }")

	dst := filepath.Join(t.TempDir(), "nested", "dir", "out.css")
	require.NoError(t, fs.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "body { color: red; }", string(data))

	require.Error(t, fs.CopyFile(filepath.Join(t.TempDir(), "missing"), dst))
}
