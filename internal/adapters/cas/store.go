// Package cas implements the content addressable layout of the asset cache.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore on the local file system.
type Store struct {
	root                string
	overwriteOnFirstRun bool

	mu      sync.Mutex
	written map[string]struct{}
}

// NewStore creates a Store rooted at the cache directory root.
// With overwriteOnFirstRun, the first Put of a path in this process replaces
// an existing file instead of keeping it.
func NewStore(root string, overwriteOnFirstRun bool) *Store {
	return &Store{
		root:                filepath.Clean(root),
		overwriteOnFirstRun: overwriteOnFirstRun,
		written:             make(map[string]struct{}),
	}
}

// Root returns the absolute cache directory.
func (s *Store) Root() string {
	return s.root
}

// Ensure creates the cache directory if it does not exist.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreate.Error()), "path", s.root)
	}
	return nil
}

// Put writes data at the cache-relative, slash separated path rel.
// Identical names imply identical content, so an existing file is kept unless
// the overwrite-on-first-run policy applies to it.
func (s *Store) Put(rel string, data []byte) (bool, error) {
	path := filepath.Join(s.root, filepath.FromSlash(rel))

	s.mu.Lock()
	defer s.mu.Unlock()

	_, seen := s.written[rel]
	if _, err := os.Stat(path); err == nil {
		if !s.overwriteOnFirstRun || seen {
			return false, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	s.written[rel] = struct{}{}

	return true, nil
}

// writeFileAtomic writes to a sibling temp file and renames it into place so
// readers never observe a partially written cache file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Removed by rename on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Clear removes every cache file below the root, then every directory left
// empty, then the root itself if it is empty. Files that are not cache files
// are kept along with their directories.
func (s *Store) Clear() error {
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	var dirs []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root {
				dirs = append(dirs, path)
			}
			return nil
		}
		if domain.IsCacheFile(d.Name()) {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", s.root)
	}

	// Deepest first so parents of removed directories become empty in turn.
	slices.SortFunc(dirs, func(a, b string) int {
		return strings.Count(b, string(filepath.Separator)) - strings.Count(a, string(filepath.Separator))
	})
	for _, dir := range append(dirs, s.root) {
		removeIfEmpty(dir)
	}

	s.mu.Lock()
	clear(s.written)
	s.mu.Unlock()

	return nil
}

func removeIfEmpty(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return
	}
	_ = os.Remove(dir)
}
