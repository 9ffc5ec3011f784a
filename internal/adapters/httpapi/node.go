package httpapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/adapters/logger"
	"go.trai.ch/gridview/internal/core/ports"
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "adapter.httpapi"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
