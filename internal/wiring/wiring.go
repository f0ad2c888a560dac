// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/curve/internal/adapters/compiler"
	_ "go.trai.ch/curve/internal/adapters/config"
	_ "go.trai.ch/curve/internal/adapters/detector"
	_ "go.trai.ch/curve/internal/adapters/logger"
	_ "go.trai.ch/curve/internal/adapters/resolver"
	_ "go.trai.ch/curve/internal/adapters/telemetry"
	_ "go.trai.ch/curve/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/curve/internal/app"
)
