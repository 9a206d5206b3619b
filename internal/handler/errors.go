package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcamargo/planner/internal/domain"
)

// errorResponse is the JSON envelope for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondNotFound writes a 404 for a missing resource. The caller supplies
// the human-readable message (e.g. "trip not found") because the handler is
// the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// respondValidation writes a 422 for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func respondValidation(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
	})
}

// respondBadRequest writes a 400 for a request rejected before reaching the
// service layer (malformed body, bad UUID, failed struct validation).
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: message},
	})
}

// respondError maps a service error to the right status code. Anything that
// is neither a not-found nor a validation failure is unexpected: it gets
// logged with full detail and surfaced as an opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(w, resource+" not found")
	case errors.Is(err, domain.ErrValidation):
		respondValidation(w, err)
	default:
		slog.ErrorContext(r.Context(), "internal error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: destination is
// required" → "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	return msg
}
