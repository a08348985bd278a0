package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/webasset/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/core/domain"
	"go.trai.ch/webasset/internal/engine/manager"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// WatchOptions configures the watch command.
type WatchOptions struct {
	Options
	// MetricsAddr serves Prometheus metrics on /metrics when set.
	MetricsAddr string
	// Events wakes the reload monitor on file system events.
	Events bool
}

// Watch starts the manager with the reload monitor and blocks until ctx is
// cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	s, err := a.settings(opts.Options)
	if err != nil {
		return err
	}
	if opts.MetricsAddr != "" {
		s.MetricsAddress = opts.MetricsAddr
	}
	if opts.Events {
		s.WatchEvents = true
	}
	if s.ReloadInterval <= 0 {
		a.logger.Warn("reload interval is not positive, using " + domain.DefaultReloadInterval.String())
		s.ReloadInterval = domain.DefaultReloadInterval
	}

	m, err := a.newManager(s)
	if err != nil {
		return err
	}
	if err := m.Startup(ctx); err != nil {
		return err
	}
	defer m.Shutdown()

	g, ctx := errgroup.WithContext(ctx)

	if s.WatchEvents {
		stop, err := a.watchEvents(ctx, g, m)
		if err != nil {
			return err
		}
		defer stop()
	}

	if s.MetricsAddress != "" {
		a.serveMetrics(ctx, g, s.MetricsAddress)
	}

	a.logger.Info("watching " + m.ConfigDirectory() + " every " + s.ReloadInterval.String())
	g.Go(func() error {
		<-ctx.Done()
		return nil
	})

	return g.Wait()
}

// watchEvents feeds debounced file system events under the config directory
// to the manager.
func (a *App) watchEvents(ctx context.Context, g *errgroup.Group, m *manager.Manager) (func(), error) {
	w, err := a.watchers()
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx, m.ConfigDirectory()); err != nil {
		_ = w.Stop()
		return nil, err
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		if m.Notify(paths...) {
			a.logger.Debug("config change detected")
		}
	})
	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Events still inside the debounce window are delivered before the
	// manager shuts down.
	return func() {
		_ = w.Stop()
		debouncer.Flush()
	}, nil
}

func (a *App) serveMetrics(ctx context.Context, g *errgroup.Group, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	g.Go(func() error {
		a.logger.Info("serving metrics on " + addr + "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.With(zerr.Wrap(err, "metrics server failed"), "addr", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
