package domain

import "time"

// Settings configures the asset manager and its collaborators.
type Settings struct {
	// RootDirectory is the web application root. Asset paths resolve against it.
	RootDirectory string `yaml:"root"`
	// ConfigDirectory is the config directory relative to RootDirectory.
	ConfigDirectory string `yaml:"configDir"`
	// CacheDirectory is the cache directory name relative to RootDirectory.
	CacheDirectory string `yaml:"cacheDir"`
	// ConfigSuffix selects asset config files during discovery.
	ConfigSuffix string `yaml:"suffix"`
	// ReloadInterval is the period between config sweeps. Zero disables reloading.
	ReloadInterval time.Duration `yaml:"reloadInterval"`
	// WatchEvents wakes the reload monitor on file system events.
	WatchEvents bool `yaml:"watchEvents"`
	// Caching memoizes query results per id and locale.
	Caching bool `yaml:"caching"`

	ClearCacheOnStartup      bool `yaml:"clearCacheOnStartup"`
	ClearCacheOnShutdown     bool `yaml:"clearCacheOnShutdown"`
	OverwriteCacheOnFirstRun bool `yaml:"overwriteCacheOnFirstRun"`
	RemoveTempResources      bool `yaml:"removeTempResources"`

	// AssetPrefixes are stripped from asset paths to build the cache layout.
	AssetPrefixes []string `yaml:"assetPrefixes"`
	// Filters maps a filter type to its ordered chain of filter names.
	Filters map[string][]string `yaml:"filters"`

	// MessagesDirectory holds locale message bundles, relative to RootDirectory.
	MessagesDirectory string `yaml:"messagesDir"`
	// MessagesBasename is the file name prefix of message bundles.
	MessagesBasename string `yaml:"messagesBasename"`
	// Locales are warmed by the CLI when none are given on the command line.
	Locales []string `yaml:"locales"`

	// MetricsAddress serves Prometheus metrics while watching, when set.
	MetricsAddress string `yaml:"metricsAddr"`
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{
		RootDirectory:        ".",
		ConfigDirectory:      DefaultConfigDir,
		CacheDirectory:       DefaultCacheDirName,
		ConfigSuffix:         DefaultConfigSuffix,
		ReloadInterval:       DefaultReloadInterval,
		ClearCacheOnStartup:  true,
		ClearCacheOnShutdown: true,
		RemoveTempResources:  true,
		AssetPrefixes:        DefaultAssetPrefixes(),
		Filters:              DefaultFilterChains(),
		MessagesBasename:     DefaultMessagesBasename,
		Locales:              []string{"en-US"},
	}
}

// DefaultFilterChains returns the filter chain for each built-in filter type.
func DefaultFilterChains() map[string][]string {
	return map[string][]string{
		FilterTypeJavascript: {"jsmin"},
		FilterTypeStylesheet: {"cssmin"},
	}
}
