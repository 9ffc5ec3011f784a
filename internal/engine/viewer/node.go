package viewer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/adapters/events"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gridview/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gridview/internal/adapters/tabular"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gridview/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/gridview/internal/engine/registry"
)

// NodeID is the unique identifier for the viewer Graft node.
const NodeID graft.ID = "engine.viewer"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tabular.NodeID,
			registry.NodeID,
			events.NotifierNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Service, error) {
			engine, err := graft.Dep[ports.DataEngine](ctx)
			if err != nil {
				return nil, err
			}

			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(engine, reg, notifier, tracer, log, domain.DefaultCacheDir()), nil
		},
	})
}
