// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/webasset/internal/adapters/config"
	_ "go.trai.ch/webasset/internal/adapters/filters"
	_ "go.trai.ch/webasset/internal/adapters/fs"
	_ "go.trai.ch/webasset/internal/adapters/logger"
	_ "go.trai.ch/webasset/internal/adapters/metrics"
	_ "go.trai.ch/webasset/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/webasset/internal/app"
)
