package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/adapters/tabular" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gridview/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tabular.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			engine, err := graft.Dep[ports.DataEngine](ctx)
			if err != nil {
				return nil, err
			}
			return New(engine), nil
		},
	})
}
