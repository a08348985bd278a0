// Package fs provides file system adapters for walking, hashing and copying files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root whose name ends in suffix,
// skipping version control directories and directories matching ignores.
// An empty suffix matches every file. Yielded paths include root.
func (w *Walker) WalkFiles(root, suffix string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), suffix) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string, ignores []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
