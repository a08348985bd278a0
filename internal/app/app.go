// Package app implements the application layer for webasset.
package app

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/webasset/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/filters"  //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/messages" //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/webasset/internal/engine/manager"
	"go.trai.ch/zerr"
)

// Components holds the resolved application graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	registry *filters.Registry
	hasher   ports.Hasher
	metrics  *metrics.Collector
	watchers watcher.Factory
	logger   ports.Logger
	fs       config.FileSystem
	out      io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	registry *filters.Registry,
	hasher ports.Hasher,
	collector *metrics.Collector,
	watchers watcher.Factory,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		registry: registry,
		hasher:   hasher,
		metrics:  collector,
		watchers: watchers,
		logger:   log,
		fs:       config.NewOSFS(),
		out:      os.Stdout,
	}
}

// WithOutput sets where reports are written. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options are the settings shared by every command.
// Empty fields keep the value from the settings file.
type Options struct {
	SettingsFile string
	Root         string
	ConfigDir    string
	CacheDir     string
	Suffix       string
	Verbose      bool
	JSONLogs     bool
}

type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// settings configures logging and resolves the effective settings.
func (a *App) settings(opts Options) (domain.Settings, error) {
	if l, ok := a.logger.(logConfigurer); ok {
		l.SetJSON(opts.JSONLogs)
		l.SetVerbose(opts.Verbose)
	}

	file := opts.SettingsFile
	if file == "" {
		file = domain.DefaultSettingsFile
	}
	s, err := config.LoadSettings(a.fs, file)
	if err != nil {
		return s, err
	}

	override(&s.RootDirectory, opts.Root)
	override(&s.ConfigDirectory, opts.ConfigDir)
	override(&s.CacheDirectory, opts.CacheDir)
	override(&s.ConfigSuffix, opts.Suffix)

	root, err := filepath.Abs(s.RootDirectory)
	if err != nil {
		return s, zerr.With(zerr.Wrap(err, domain.ErrRootDirInvalid.Error()), "path", s.RootDirectory)
	}
	s.RootDirectory = root

	return s, nil
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func cacheRoot(s domain.Settings) string {
	return filepath.Join(s.RootDirectory, filepath.FromSlash(s.CacheDirectory))
}

func (a *App) newManager(s domain.Settings) (*manager.Manager, error) {
	chains, err := a.registry.Chains(s.Filters)
	if err != nil {
		return nil, err
	}

	var source ports.MessageSource
	if s.MessagesDirectory != "" {
		dir := filepath.Join(s.RootDirectory, filepath.FromSlash(s.MessagesDirectory))
		source = messages.NewBundle(os.DirFS(dir), s.MessagesBasename)
	}

	return manager.New(s, manager.Deps{
		Loader:   a.loader,
		Chains:   chains,
		Hasher:   a.hasher,
		Cache:    cas.NewStore(cacheRoot(s), s.OverwriteCacheOnFirstRun),
		Messages: source,
		Metrics:  a.metrics,
		Logger:   a.logger,
	}), nil
}
