package config

import (
	"context"

	"github.com/grindlemire/graft"
	assetfs "go.trai.ch/webasset/internal/adapters/fs"
	"go.trai.ch/webasset/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{assetfs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			walker, err := graft.Dep[*assetfs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(NewOSFS(), walker), nil
		},
	})
}
