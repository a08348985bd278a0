// Package reload polls asset config files and reloads the ones that changed.
package reload

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"sync"
	"time"

	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReloadFunc loads the config file at path again.
type ReloadFunc func(path string) error

// Monitor tracks config files by modification time. A sweep reloads every
// tracked file whose modification time moved forward and forgets files that
// disappeared. New files are not picked up by sweeps.
type Monitor struct {
	reload  ReloadFunc
	metrics ports.Metrics
	logger  ports.Logger

	mu      sync.Mutex
	tracked map[string]int64

	wake chan struct{}
}

// NewMonitor creates a Monitor that calls reload for changed files.
func NewMonitor(reload ReloadFunc, metrics ports.Metrics, logger ports.Logger) *Monitor {
	return &Monitor{
		reload:  reload,
		metrics: metrics,
		logger:  logger,
		tracked: make(map[string]int64),
		wake:    make(chan struct{}, 1),
	}
}

// Track records path with its modification time in Unix nanoseconds.
func (m *Monitor) Track(path string, modTime int64) {
	m.mu.Lock()
	m.tracked[path] = modTime
	n := len(m.tracked)
	m.mu.Unlock()

	m.metrics.SetTrackedConfigs(n)
}

// Untrack stops monitoring path.
func (m *Monitor) Untrack(path string) {
	m.mu.Lock()
	delete(m.tracked, path)
	n := len(m.tracked)
	m.mu.Unlock()

	m.metrics.SetTrackedConfigs(n)
}

// Tracked returns a copy of the tracked files and their modification times.
func (m *Monitor) Tracked() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.tracked)
}

// IsTracked reports whether path is monitored.
func (m *Monitor) IsTracked(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tracked[path]
	return ok
}

// Reset forgets every tracked file.
func (m *Monitor) Reset() {
	m.mu.Lock()
	clear(m.tracked)
	m.mu.Unlock()

	m.metrics.SetTrackedConfigs(0)
}

// Sweep checks every tracked file once.
func (m *Monitor) Sweep(ctx context.Context) {
	for path, known := range m.Tracked() {
		if ctx.Err() != nil {
			return
		}

		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			// Bindings loaded from the file stay until the next restart.
			m.logger.Debug("config removed, no longer monitored: " + path)
			m.Untrack(path)
			continue
		}
		if err != nil {
			m.logger.Error(zerr.With(zerr.Wrap(err, "failed to stat config"), "path", path))
			continue
		}

		modTime := info.ModTime().UnixNano()
		if modTime <= known {
			continue
		}

		m.logger.Info("reloading changed config " + path)
		if err := m.reload(path); err != nil {
			m.logger.Error(err)
			continue
		}
		m.Track(path, modTime)
	}
}

// Run sweeps, then waits for interval or a Wake, until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		m.Sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		case <-m.wake:
		}
		timer.Reset(interval)
	}
}

// Wake makes a running monitor sweep now. Wakes that arrive while one is
// already pending are merged.
func (m *Monitor) Wake() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Notify wakes the monitor when any of paths is a tracked file. Sweeps never
// load untracked files, so events for them are ignored. It reports whether a
// wake was requested.
func (m *Monitor) Notify(paths ...string) bool {
	for _, path := range paths {
		if m.IsTracked(path) {
			m.Wake()
			return true
		}
	}
	return false
}
