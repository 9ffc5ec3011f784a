package tabular

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/adapters/logger"
	"go.trai.ch/gridview/internal/core/ports"
)

const (
	// EngineNodeID is the unique identifier for the tabular engine Graft node.
	EngineNodeID graft.ID = "adapter.tabular"
	// NodeID is the unique identifier for the ports.DataEngine Graft node.
	NodeID graft.ID = "adapter.tabular.data_engine"
	// LoaderNodeID is the unique identifier for the ports.DatasetLoader Graft node.
	LoaderNodeID graft.ID = "adapter.tabular.loader"
)

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        EngineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})

	graft.Register(graft.Node[ports.DataEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EngineNodeID},
		Run: func(ctx context.Context) (ports.DataEngine, error) {
			engine, err := graft.Dep[*Engine](ctx)
			if err != nil {
				return nil, err
			}
			return engine, nil
		},
	})

	graft.Register(graft.Node[ports.DatasetLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EngineNodeID},
		Run: func(ctx context.Context) (ports.DatasetLoader, error) {
			engine, err := graft.Dep[*Engine](ctx)
			if err != nil {
				return nil, err
			}
			return engine, nil
		},
	})
}
