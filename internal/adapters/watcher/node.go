package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/webasset/internal/adapters/logger"
	"go.trai.ch/webasset/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Factory creates watchers on demand. A watcher is only needed while the
// reload monitor runs with event wake-ups enabled.
type Factory func() (ports.Watcher, error)

// NewFactory returns a Factory creating fsnotify watchers that log to logger.
func NewFactory(logger ports.Logger) Factory {
	return func() (ports.Watcher, error) {
		return NewWatcher(logger)
	}
}

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
