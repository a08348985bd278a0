package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/adapters/watcher"
	"go.trai.ch/webasset/internal/core/ports"
	"go.trai.ch/webasset/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	root := t.TempDir()
	nested := filepath.Join(root, "pages")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), root))

	target := filepath.Join(nested, "home.waf")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

	found := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			if event.Path == target {
				found <- event
				return
			}
		}
	}()

	select {
	case event := <-found:
		require.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for written file")
	}
}
