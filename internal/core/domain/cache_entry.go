package domain

import (
	"path/filepath"
	"strings"
)

// CacheEntry maps a raw asset to its filtered, content-addressed copy.
// It is valid only while the source file's modification time equals SourceModTime.
type CacheEntry struct {
	SourceModTime int64  `json:"source_mod_time,omitzero"`
	CachedPath    string `json:"cached_path,omitzero"`
}

// Fresh reports whether the entry still describes a source with the given modification time.
func (e CacheEntry) Fresh(modTime int64) bool {
	return e.CachedPath != "" && e.SourceModTime == modTime
}

// CacheName returns the content addressed name for a file:
// <base>.cache.<checksum>.<ext>.
func CacheName(name, checksum string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + CacheMarker + checksum + ext
}

// IsCacheFile reports whether name was produced by CacheName.
func IsCacheFile(name string) bool {
	return strings.Contains(name, CacheMarker)
}
