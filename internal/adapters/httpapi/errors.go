package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.trai.ch/gridview/internal/core/domain"
)

// messager is an error that reports its own message without its causes.
type messager interface {
	Message() string
}

type errorBody struct {
	Error string `json:"error"`
}

// statusOf classifies err into an HTTP status and the message shown to the client.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, message(domain.ErrObjectNotFound)
	case errors.Is(err, domain.ErrInvalidParams),
		errors.Is(err, domain.ErrInvalidOrderDirection),
		errors.Is(err, domain.ErrUnknownMethod):
		return http.StatusBadRequest, causeMessage(err, domain.ErrInvalidParams)
	case errors.Is(err, domain.ErrTransformFailed):
		return http.StatusInternalServerError, causeMessage(err, domain.ErrTransformFailed)
	default:
		return http.StatusInternalServerError, message(err)
	}
}

// causeMessage returns the message of the error joined to sentinel, so that
// the client sees what went wrong rather than its class.
func causeMessage(err, sentinel error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, member := range joined.Unwrap() {
			if !errors.Is(member, sentinel) {
				return message(member)
			}
		}
	}
	return message(err)
}

func message(err error) string {
	if m, ok := err.(messager); ok {
		return m.Message()
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, msg := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(err)
	}
	writeJSON(w, status, errorBody{Error: msg})
}
