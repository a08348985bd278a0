package app

import (
	"context"
	"fmt"

	"go.trai.ch/webasset/internal/adapters/cas" //nolint:depguard // Wired in app layer
)

// IDs prints every config id, one per line.
func (a *App) IDs(ctx context.Context, opts Options) error {
	s, err := a.settings(opts)
	if err != nil {
		return err
	}
	// Listing ids must leave the disk cache alone.
	s.ReloadInterval = 0
	s.ClearCacheOnStartup = false
	s.ClearCacheOnShutdown = false

	m, err := a.newManager(s)
	if err != nil {
		return err
	}
	if err := m.Startup(ctx); err != nil {
		return err
	}
	defer m.Shutdown()

	for _, id := range m.IDs() {
		_, _ = fmt.Fprintln(a.out, id)
	}
	return nil
}

// Clean removes every cached file below the cache directory.
func (a *App) Clean(_ context.Context, opts Options) error {
	s, err := a.settings(opts)
	if err != nil {
		return err
	}

	root := cacheRoot(s)
	if err := cas.NewStore(root, false).Clear(); err != nil {
		return err
	}
	a.logger.Info("removed cached assets from " + root)
	return nil
}
