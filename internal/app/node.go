package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/curve/internal/adapters/compiler"  //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/resolver"  //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/curve/internal/core/ports"
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
			compiler.NodeID,
			resolver.NodeID,
			telemetry.NodeID,
			detector.NodeID,
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

	comp, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[resolver.Factory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[*detector.Detector](ctx)
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

	return New(loader, comp, resolvers, tracer, det, watchers, log), nil
}
