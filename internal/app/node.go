package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/adapters/events"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/adapters/httpapi"   //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/adapters/tabular"   //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/engine/changes"
	"go.trai.ch/gridview/internal/engine/viewer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			tabular.EngineNodeID,
			tabular.LoaderNodeID,
			viewer.NodeID,
			changes.NodeID,
			events.NodeID,
			watcher.NodeID,
			httpapi.NodeID,
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

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*tabular.Engine](ctx)
	if err != nil {
		return nil, err
	}

	datasets, err := graft.Dep[ports.DatasetLoader](ctx)
	if err != nil {
		return nil, err
	}

	views, err := graft.Dep[*viewer.Service](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[*changes.Detector](ctx)
	if err != nil {
		return nil, err
	}

	hub, err := graft.Dep[*events.Hub](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	servers, err := graft.Dep[*httpapi.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, engine, datasets, views, detector, hub, w, servers), nil
}
