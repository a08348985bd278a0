package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyFile copies src to dst, creating dst's parent directories.
func CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	//nolint:gosec // Path is controlled by caller
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination file"), "path", dst)
	}
	return nil
}
