package domain

import "time"

const (
	// GlobalID is the reserved id under which the global asset config is indexed.
	GlobalID = "_webasset_global_"

	// DefaultCacheDirName is the name of the cache directory under the root directory.
	DefaultCacheDirName = "_webasset_cache_"

	// DefaultConfigDir is the config directory relative to the root directory.
	DefaultConfigDir = "/WEB-INF/config"

	// DefaultConfigSuffix is the file suffix of asset config files.
	DefaultConfigSuffix = ".waf"

	// DefaultReloadInterval is the period between config change sweeps.
	DefaultReloadInterval = 10 * time.Second

	// DefaultSettingsFile is the name of the optional settings file.
	DefaultSettingsFile = "webasset.yaml"

	// DefaultMessagesBasename is the base name of message bundle files.
	DefaultMessagesBasename = "messages"

	// CacheMarker separates the base name and checksum of a cached file name.
	CacheMarker = ".cache."

	// WorkDirPattern is the pattern for temporary filtering directories.
	WorkDirPattern = "_webasset_work_*"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Well-known attribute keys.
const (
	AttrPath       = "path"
	AttrType       = "type"
	AttrRel        = "rel"
	AttrFilter     = "filter"
	AttrFilterType = "filtertype"
)

// Built-in filter types.
const (
	FilterTypeJavascript = "javascript"
	FilterTypeStylesheet = "stylesheet"
)

// DefaultAssetPrefixes returns the prefixes stripped from asset paths when
// deriving the cached directory structure. The first match wins.
func DefaultAssetPrefixes() []string {
	return []string{"/WEB-INF/static", "/WEB-INF"}
}
