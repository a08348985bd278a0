package reload_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/adapters/metrics"
	"go.trai.ch/webasset/internal/core/ports/mocks"
	"go.trai.ch/webasset/internal/engine/reload"
	"go.uber.org/mock/gomock"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (r *recorder) reload(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return r.err
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func writeConfig(t *testing.T, dir, name string) (string, int64) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(`{"ids":["a"]}`), 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	return path, info.ModTime().UnixNano()
}

func touch(t *testing.T, path string, at time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, at, at))
}

func TestMonitor_TrackUntrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMetrics(ctrl)
	gomock.InOrder(
		m.EXPECT().SetTrackedConfigs(1),
		m.EXPECT().SetTrackedConfigs(2),
		m.EXPECT().SetTrackedConfigs(1),
		m.EXPECT().SetTrackedConfigs(0),
	)
	mon := reload.NewMonitor(nil, m, quietLogger(t))

	mon.Track("/a.waf", 1)
	mon.Track("/b.waf", 2)
	mon.Untrack("/a.waf")

	assert.Equal(t, map[string]int64{"/b.waf": 2}, mon.Tracked())
	assert.True(t, mon.IsTracked("/b.waf"))
	assert.False(t, mon.IsTracked("/a.waf"))

	mon.Reset()
	assert.Empty(t, mon.Tracked())
}

func TestMonitor_SweepReloadsNewerFiles(t *testing.T) {
	dir := t.TempDir()
	changed, mtime := writeConfig(t, dir, "changed.waf")
	same, sameMtime := writeConfig(t, dir, "same.waf")

	rec := &recorder{}
	mon := reload.NewMonitor(rec.reload, metrics.Noop{}, quietLogger(t))
	mon.Track(changed, mtime)
	mon.Track(same, sameMtime)

	later := time.Unix(0, mtime).Add(time.Minute)
	touch(t, changed, later)

	mon.Sweep(t.Context())

	assert.Equal(t, []string{changed}, rec.calls())
	assert.Equal(t, later.UnixNano(), mon.Tracked()[changed])

	// A second sweep sees nothing new.
	mon.Sweep(t.Context())
	assert.Len(t, rec.calls(), 1)
}

func TestMonitor_SweepIgnoresOlderFiles(t *testing.T) {
	dir := t.TempDir()
	path, mtime := writeConfig(t, dir, "old.waf")

	rec := &recorder{}
	mon := reload.NewMonitor(rec.reload, metrics.Noop{}, quietLogger(t))
	mon.Track(path, mtime)
	touch(t, path, time.Unix(0, mtime).Add(-time.Minute))

	mon.Sweep(t.Context())

	assert.Empty(t, rec.calls())
}

func TestMonitor_SweepUntracksRemovedFiles(t *testing.T) {
	dir := t.TempDir()
	path, mtime := writeConfig(t, dir, "gone.waf")
	require.NoError(t, os.Remove(path))

	rec := &recorder{}
	mon := reload.NewMonitor(rec.reload, metrics.Noop{}, quietLogger(t))
	mon.Track(path, mtime)

	mon.Sweep(t.Context())

	assert.Empty(t, rec.calls())
	assert.False(t, mon.IsTracked(path))
}

func TestMonitor_FailedReloadKeepsOldModTime(t *testing.T) {
	dir := t.TempDir()
	path, mtime := writeConfig(t, dir, "bad.waf")
	touch(t, path, time.Unix(0, mtime).Add(time.Minute))

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Times(2)

	rec := &recorder{err: errors.New("parse failed")}
	mon := reload.NewMonitor(rec.reload, metrics.Noop{}, logger)
	mon.Track(path, mtime)

	mon.Sweep(t.Context())
	mon.Sweep(t.Context())

	assert.Len(t, rec.calls(), 2, "a failed file is retried on every sweep")
	assert.Equal(t, mtime, mon.Tracked()[path])
}

func TestMonitor_RunSweepsOnInterval(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		path, mtime := writeConfig(t, dir, "app.waf")

		rec := &recorder{}
		mon := reload.NewMonitor(rec.reload, metrics.Noop{}, quietLogger(t))
		mon.Track(path, mtime)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			mon.Run(ctx, 10*time.Second)
			close(done)
		}()

		synctest.Wait()
		assert.Empty(t, rec.calls())

		touch(t, path, time.Unix(0, mtime).Add(time.Minute))
		time.Sleep(10 * time.Second)
		synctest.Wait()
		assert.Equal(t, []string{path}, rec.calls())

		cancel()
		<-done
	})
}

func TestMonitor_WakeShortensWait(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dir := t.TempDir()
		path, mtime := writeConfig(t, dir, "app.waf")

		rec := &recorder{}
		mon := reload.NewMonitor(rec.reload, metrics.Noop{}, quietLogger(t))
		mon.Track(path, mtime)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			mon.Run(ctx, time.Hour)
			close(done)
		}()
		synctest.Wait()

		touch(t, path, time.Unix(0, mtime).Add(time.Minute))
		assert.True(t, mon.Notify(path))
		synctest.Wait()

		assert.Equal(t, []string{path}, rec.calls())

		cancel()
		<-done
	})
}

func TestMonitor_Notify(t *testing.T) {
	mon := reload.NewMonitor(nil, metrics.Noop{}, quietLogger(t))
	mon.Track("/cfg/tracked.json", 1)

	assert.True(t, mon.Notify("/cfg/tracked.json"))
	assert.False(t, mon.Notify("/cfg/new.waf"), "untracked configs are never swept")
	assert.False(t, mon.Notify("/cfg/readme.txt"))
	assert.True(t, mon.Notify("/cfg/readme.txt", "/cfg/tracked.json"))
}
