package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Factory builds servers once the services behind them are configured.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Build wires a Handler over the given services into a Server that shuts
// down after idleTimeout without requests. A zero idleTimeout never expires.
func (f *Factory) Build(views Views, scanner Scanner, source EventSource, idleTimeout time.Duration) *Server {
	lifecycle := NewLifecycle(idleTimeout)
	handler := NewHandler(views, scanner, source, lifecycle, f.logger)
	return NewServer(handler.Routes(), lifecycle, f.logger)
}

// Server serves a Handler until its context ends or its lifecycle expires.
type Server struct {
	handler   http.Handler
	lifecycle *Lifecycle
	logger    ports.Logger
}

// NewServer creates a Server.
func NewServer(handler http.Handler, lifecycle *Lifecycle, logger ports.Logger) *Server {
	return &Server{
		handler:   handler,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// Serve listens on addr and serves until shutdown.
func (s *Server) Serve(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerListenFailed.Error()), "addr", addr)
	}
	return s.ServeListener(ctx, lis)
}

// ServeListener serves on lis until ctx is done or the lifecycle shuts
// down, then drains open requests. Event streams are closed on shutdown.
// It returns nil after a clean shutdown.
func (s *Server) ServeListener(ctx context.Context, lis net.Listener) error {
	streams, closeStreams := context.WithCancel(context.WithoutCancel(ctx))
	defer closeStreams()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return streams },
	}
	srv.RegisterOnShutdown(closeStreams)

	s.logger.Info("serving on http://" + lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case <-s.lifecycle.ShutdownChan():
		s.logger.Info("idle timeout reached, shutting down")
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, "http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "failed to shut down http server")
	}
	return nil
}
