package events

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the events hub Graft node.
	NodeID graft.ID = "adapter.events"
	// NotifierNodeID is the unique identifier for the ports.Notifier Graft node.
	NotifierNodeID graft.ID = "adapter.events.notifier"
)

func init() {
	graft.Register(graft.Node[*Hub]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hub, error) {
			return NewHub(DefaultBufferSize), nil
		},
	})

	graft.Register(graft.Node[ports.Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			hub, err := graft.Dep[*Hub](ctx)
			if err != nil {
				return nil, err
			}
			return hub, nil
		},
	})
}
