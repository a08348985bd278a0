package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/webasset/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/filters" //nolint:depguard // Wired in app layer
	assetfs "go.trai.ch/webasset/internal/adapters/fs"
	"go.trai.ch/webasset/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/webasset/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			filters.NodeID,
			assetfs.HasherNodeID,
			metrics.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*filters.Registry](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[*metrics.Collector](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, registry, hasher, collector, watchers, log), nil
}
