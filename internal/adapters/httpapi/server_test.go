package httpapi_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gridview/internal/adapters/events"
	"go.trai.ch/gridview/internal/adapters/httpapi"
	"go.trai.ch/gridview/internal/core/domain"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	var lc net.ListenConfig
	lis, err := lc.Listen(t.Context(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestServer_StopsWhenContextEnds(t *testing.T) {
	logger := &recordingLogger{}
	views := &fakeViews{page: &domain.PageResponse{Data: [][]string{}}}
	srv := httpapi.NewFactory(logger).Build(views, &fakeScanner{}, events.NewHub(1), 0)
	lis := listen(t)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(ctx, lis) }()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet,
		"http://"+lis.Addr().String()+"/grid_data?obj=fruit", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StopsWhenIdle(t *testing.T) {
	logger := &recordingLogger{}
	srv := httpapi.NewFactory(logger).Build(&fakeViews{}, &fakeScanner{}, events.NewHub(1), 50*time.Millisecond)

	lis := listen(t)

	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(t.Context(), lis) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after the idle timeout")
	}

	logger.mu.Lock()
	defer logger.mu.Unlock()
	assert.Contains(t, logger.infos, "idle timeout reached, shutting down")
}

func TestServer_ShutdownClosesEventStreams(t *testing.T) {
	logger := &recordingLogger{}
	srv := httpapi.NewFactory(logger).Build(&fakeViews{}, &fakeScanner{}, events.NewHub(1), 0)
	lis := listen(t)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- srv.ServeListener(ctx, lis) }()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet,
		"http://"+lis.Addr().String()+"/events", http.NoBody)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("open event stream blocked shutdown")
	}
}

func TestServer_ServeReportsListenFailure(t *testing.T) {
	lis := listen(t)
	defer lis.Close()

	srv := httpapi.NewFactory(&recordingLogger{}).Build(&fakeViews{}, &fakeScanner{}, events.NewHub(1), 0)
	err := srv.Serve(t.Context(), lis.Addr().String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrServerListenFailed.Error())
}
