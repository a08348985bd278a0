package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when an asset config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read asset config")

	// ErrConfigEmpty is returned when an asset config file has no content.
	ErrConfigEmpty = zerr.New("asset config has no data")

	// ErrConfigParseFailed is returned when an asset config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse asset config")

	// ErrMissingIDs is returned when a non-global asset config declares no ids.
	ErrMissingIDs = zerr.New("asset config must have one or more ids")

	// ErrConfigDiscoveryFailed is returned when the config directory cannot be walked.
	ErrConfigDiscoveryFailed = zerr.New("failed to discover asset configs")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrRootDirInvalid is returned when the root directory is missing or unreadable.
	ErrRootDirInvalid = zerr.New("root directory doesn't exist or isn't readable")

	// ErrConfigDirInvalid is returned when the config directory is missing or unreadable.
	ErrConfigDirInvalid = zerr.New("config directory doesn't exist or isn't readable")

	// ErrCacheDirCreate is returned when the cache directory cannot be created.
	ErrCacheDirCreate = zerr.New("couldn't create cache directory for assets")

	// ErrCacheClearFailed is returned when the cache directory cannot be cleared.
	ErrCacheClearFailed = zerr.New("failed to clear cache directory")

	// ErrFilterFailed is returned when an asset cannot be filtered and cached.
	ErrFilterFailed = zerr.New("error filtering and caching asset")

	// ErrAssetCopyFailed is returned when an asset cannot be copied to its working directory.
	ErrAssetCopyFailed = zerr.New("failed to copy asset to working directory")

	// ErrAssetReadFailed is returned when the filtered asset cannot be read back.
	ErrAssetReadFailed = zerr.New("failed to read filtered asset")

	// ErrCacheWriteFailed is returned when a cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrUnknownFilter is returned when a filter chain references an unregistered filter.
	ErrUnknownFilter = zerr.New("unknown filter")

	// ErrNoSuchMessage is returned by a message source that has no message for a code.
	ErrNoSuchMessage = zerr.New("no such message")

	// ErrMessagesReadFailed is returned when a message bundle cannot be read.
	ErrMessagesReadFailed = zerr.New("failed to read message bundle")

	// ErrMessagesParseFailed is returned when a message bundle cannot be parsed.
	ErrMessagesParseFailed = zerr.New("failed to parse message bundle")

	// ErrInvalidLocale is returned when a locale string cannot be parsed.
	ErrInvalidLocale = zerr.New("invalid locale")
)
