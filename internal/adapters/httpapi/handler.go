// Package httpapi serves the grid viewer protocol over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/gridview/internal/adapters/events"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/gridview/internal/core/ports"
)

// Views serves the pages, column descriptions and lifecycle of views.
type Views interface {
	Page(ctx context.Context, req domain.PageRequest) (*domain.PageResponse, error)
	Columns(ctx context.Context, req domain.ColumnsRequest) ([]domain.ColumnDescription, error)
	Open(ctx context.Context, req domain.OpenRequest) (*domain.DataItem, error)
	Duplicate(ctx context.Context, req domain.DuplicateRequest) (*domain.DataItem, error)
	Remove(ctx context.Context, cacheKey string) error
}

// Scanner runs change detection on demand.
type Scanner interface {
	Scan(ctx context.Context) domain.ScanResult
}

// EventSource delivers view events to streaming clients.
type EventSource interface {
	Subscribe() (<-chan events.Event, func())
}

// Handler routes grid viewer requests.
type Handler struct {
	views     Views
	scanner   Scanner
	events    EventSource
	lifecycle *Lifecycle
	logger    ports.Logger
	rpc       map[string]rpcMethod
}

// NewHandler creates a Handler. Every request resets the lifecycle's idle timer.
func NewHandler(
	views Views,
	scanner Scanner,
	source EventSource,
	lifecycle *Lifecycle,
	logger ports.Logger,
) *Handler {
	h := &Handler{
		views:     views,
		scanner:   scanner,
		events:    source,
		lifecycle: lifecycle,
		logger:    logger,
	}
	h.rpc = map[string]rpcMethod{
		"remove_cached_data":  h.removeCachedData,
		"duplicate_data_view": h.duplicateDataView,
		"view_data":           h.viewData,
		"detect_changes":      h.detectChanges,
	}
	return h
}

// Routes returns the HTTP handler of all endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.touch)

	r.With(middleware.NoCache).Get("/grid_data", h.gridData)
	r.Post("/rpc/{method}", h.call)
	r.Get("/events", h.stream)
	return r
}

func (h *Handler) touch(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.lifecycle.ResetTimer()
		defer h.lifecycle.ResetTimer()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) gridData(w http.ResponseWriter, r *http.Request) {
	q, err := parseGridQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}

	if q.show == showColumns {
		cols, err := h.views.Columns(r.Context(), domain.ColumnsRequest{
			CacheKey: q.page.CacheKey,
			Scope:    q.page.Scope,
			Object:   q.page.Object,
		})
		if err != nil {
			h.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cols)
		return
	}

	page, err := h.views.Page(r.Context(), q.page)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
