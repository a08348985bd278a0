// Package manager composes config loading, alias resolution, asset caching
// and config reloading into the asset query API.
package manager

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/webasset/internal/engine/alias"
	"go.trai.ch/webasset/internal/engine/pipeline"
	"go.trai.ch/webasset/internal/engine/reload"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

// Deps are the collaborators of a Manager.
type Deps struct {
	Loader ports.ConfigLoader
	Chains ports.FilterChains
	Hasher ports.Hasher
	Cache  ports.CacheStore
	// Messages is optional. Without it only aliases are resolved.
	Messages ports.MessageSource
	Metrics  ports.Metrics
	Logger   ports.Logger
}

// Manager answers per id and per locale asset queries.
//
// Startup, Shutdown and Restart are serialized. Queries never block on them
// and may observe an empty manager while a restart is in progress.
type Manager struct {
	settings domain.Settings
	loader   ports.ConfigLoader
	cache    ports.CacheStore
	metrics  ports.Metrics
	logger   ports.Logger

	aliases  *alias.Table
	resolver *alias.Resolver
	store    *Store
	pipeline *pipeline.Pipeline
	monitor  *reload.Monitor

	lifecycle sync.Mutex
	active    atomic.Bool
	stop      context.CancelFunc
	stopped   chan struct{}

	scripts sync.Map // memo key -> []*domain.Attributes
	links   sync.Map
	metas   sync.Map
	titles  sync.Map // memo key -> string
}

// New creates an inactive Manager.
func New(settings domain.Settings, deps Deps) *Manager {
	if len(settings.AssetPrefixes) == 0 {
		settings.AssetPrefixes = domain.DefaultAssetPrefixes()
	}

	aliases := alias.NewTable()
	m := &Manager{
		settings: settings,
		loader:   deps.Loader,
		cache:    deps.Cache,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		aliases:  aliases,
		resolver: alias.NewResolver(aliases, deps.Messages, deps.Logger),
		store:    NewStore(deps.Loader, aliases, deps.Metrics),
	}
	m.pipeline = pipeline.New(pipeline.Options{
		Root:                settings.RootDirectory,
		CacheDir:            settings.CacheDirectory,
		AssetPrefixes:       settings.AssetPrefixes,
		RemoveTempResources: settings.RemoveTempResources,
	}, deps.Cache, deps.Chains, deps.Hasher, deps.Metrics, deps.Logger)
	m.monitor = reload.NewMonitor(m.reload, deps.Metrics, deps.Logger)

	return m
}

// Startup validates the directories, prepares the cache directory, loads
// every config file and starts the reload monitor when the reload interval
// is positive. The monitor stops on Shutdown or when ctx is cancelled.
func (m *Manager) Startup(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	return m.startup(ctx)
}

// Shutdown stops the reload monitor, optionally clears the disk cache and
// drops every in-memory index.
func (m *Manager) Shutdown() {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	m.shutdown()
}

// Restart is Shutdown followed by Startup.
func (m *Manager) Restart(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()
	m.shutdown()
	return m.startup(ctx)
}

// Active reports whether Startup completed and Shutdown has not run since.
func (m *Manager) Active() bool {
	return m.active.Load()
}

func (m *Manager) startup(ctx context.Context) error {
	if m.active.Load() {
		return nil
	}

	root := m.settings.RootDirectory
	if err := checkDir(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRootDirInvalid.Error()), "path", root)
	}

	if m.settings.ClearCacheOnStartup {
		if err := m.pipeline.ClearDisk(); err != nil {
			m.logger.Error(err)
		}
	}
	if err := m.cache.Ensure(); err != nil {
		return err
	}

	configDir := filepath.Join(root, filepath.FromSlash(m.settings.ConfigDirectory))
	if err := checkDir(configDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigDirInvalid.Error()), "path", configDir)
	}

	found, err := m.loader.Discover(configDir, m.settings.ConfigSuffix)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		m.logger.Warn("no asset config files to load in " + configDir)
	}

	paths := make([]string, 0, len(found))
	for path := range found {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		if _, err := m.store.Load(path); err != nil {
			m.logger.Error(err)
		}
		// Failed files are tracked too, so fixing one reloads it.
		m.monitor.Track(path, found[path])
	}

	m.active.Store(true)
	m.logger.Debug("asset manager started")

	if m.settings.ReloadInterval > 0 {
		runCtx, cancel := context.WithCancel(ctx)
		m.stop = cancel
		m.stopped = make(chan struct{})
		go func(done chan struct{}) {
			defer close(done)
			m.monitor.Run(runCtx, m.settings.ReloadInterval)
		}(m.stopped)
	}

	return nil
}

func (m *Manager) shutdown() {
	m.active.Store(false)

	if m.stop != nil {
		m.stop()
		<-m.stopped
		m.stop = nil
		m.stopped = nil
	}

	if m.settings.ClearCacheOnShutdown {
		if err := m.pipeline.ClearDisk(); err != nil {
			m.logger.Error(err)
		}
	}

	m.aliases.Clear()
	m.store.Reset()
	m.pipeline.Reset()
	m.monitor.Reset()
	m.scripts.Clear()
	m.links.Clear()
	m.metas.Clear()
	m.titles.Clear()
}

// reload is called by the monitor for a changed config file.
func (m *Manager) reload(path string) error {
	_, err := m.store.Load(path)
	return err
}

// Notify wakes the reload monitor early when one of paths is a tracked config
// file.
func (m *Manager) Notify(paths ...string) bool {
	if !m.Active() {
		return false
	}
	return m.monitor.Notify(paths...)
}

// ClearDisk removes every cached file from disk.
func (m *Manager) ClearDisk() error {
	return m.pipeline.ClearDisk()
}

// ConfigDirectory returns the absolute config directory.
func (m *Manager) ConfigDirectory() string {
	return filepath.Join(m.settings.RootDirectory, filepath.FromSlash(m.settings.ConfigDirectory))
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return zerr.New("not a directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func memoKey(id string, locale language.Tag) string {
	return id + "_" + strings.ToLower(locale.String())
}
