package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.trai.ch/gridview/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxRPCBody bounds the size of an RPC request body.
const maxRPCBody = 1 << 20

type rpcMethod func(ctx context.Context, params []json.RawMessage) (any, error)

type rpcRequest struct {
	Params []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	Result any `json:"result"`
}

type scanResponse struct {
	Changed []domain.ViewChange `json:"changed"`
	Skipped bool                `json:"skipped"`
}

func (h *Handler) call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "method")
	method, ok := h.rpc[name]
	if !ok {
		h.writeError(w, zerr.With(zerr.Wrap(domain.ErrUnknownMethod, "unknown rpc method"), "method", name))
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRPCBody)).Decode(&req); err != nil {
		h.writeError(w, zerr.With(zerr.Wrap(domain.ErrInvalidParams, "malformed rpc request"), "method", name))
		return
	}

	result, err := method(r.Context(), req.Params)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rpcResponse{Result: result})
}

func (h *Handler) removeCachedData(ctx context.Context, params []json.RawMessage) (any, error) {
	cacheKey, err := stringParam(params, 0)
	if err != nil {
		return nil, err
	}
	return nil, h.views.Remove(ctx, cacheKey)
}

func (h *Handler) duplicateDataView(ctx context.Context, params []json.RawMessage) (any, error) {
	var req domain.DuplicateRequest
	var err error
	if req.Caption, err = stringParam(params, 0); err != nil {
		return nil, err
	}
	if req.Scope, err = stringParam(params, 1); err != nil {
		return nil, err
	}
	if req.Object, err = stringParam(params, 2); err != nil {
		return nil, err
	}
	if req.CacheKey, err = stringParam(params, 3); err != nil {
		return nil, err
	}
	req.Scope = domain.NormalizeScope(req.Scope)
	return h.views.Duplicate(ctx, req)
}

func (h *Handler) viewData(ctx context.Context, params []json.RawMessage) (any, error) {
	var req domain.OpenRequest
	var err error
	if req.Caption, err = stringParam(params, 0); err != nil {
		return nil, err
	}
	if req.Scope, err = stringParam(params, 1); err != nil {
		return nil, err
	}
	if req.Object, err = stringParam(params, 2); err != nil {
		return nil, err
	}
	return h.views.Open(ctx, req)
}

func (h *Handler) detectChanges(ctx context.Context, _ []json.RawMessage) (any, error) {
	result := h.scanner.Scan(ctx)
	changed := result.Changes
	if changed == nil {
		changed = []domain.ViewChange{}
	}
	return scanResponse{Changed: changed, Skipped: result.Skipped}, nil
}

// stringParam reads the positional string parameter at i.
func stringParam(params []json.RawMessage, i int) (string, error) {
	if i >= len(params) {
		return "", zerr.Wrap(domain.ErrInvalidParams, fmt.Sprintf("missing parameter %d", i))
	}
	var s string
	if err := json.Unmarshal(params[i], &s); err != nil {
		return "", zerr.Wrap(domain.ErrInvalidParams, fmt.Sprintf("parameter %d must be a string", i))
	}
	return s, nil
}
