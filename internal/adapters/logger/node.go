package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gridview/internal/core/ports"
)

const (
	// LoggerNodeID is the unique identifier for the *Logger Graft node.
	LoggerNodeID graft.ID = "adapter.logger.slog"
	// NodeID is the unique identifier for the ports.Logger Graft node.
	NodeID graft.ID = "adapter.logger"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        LoggerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoggerNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}
