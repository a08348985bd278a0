package filters

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webasset/internal/adapters/logger"
	"go.trai.ch/webasset/internal/core/ports"
)

// NodeID is the unique identifier for the filter registry Graft node.
const NodeID graft.ID = "adapter.filters"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultRegistry(log), nil
		},
	})
}
