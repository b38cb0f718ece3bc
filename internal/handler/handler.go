package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clothing-store/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Too late to change the status; nothing useful to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// statusForCode maps a domain error code to its HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeConflict, model.ErrCodeInvalidArgument, model.ErrCodeInvalidState:
		return http.StatusBadRequest
	case model.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case model.ErrCodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError translates a service error into an HTTP response.
// Domain errors keep their message and mapped status; everything else is
// logged and surfaced as a 500 with the underlying message.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Debug().
			Str("code", domainErr.Code).
			Str("error", domainErr.Message).
			Msg("domain error")
		writeJSON(w, statusForCode(domainErr.Code), ErrorResponse{Error: domainErr.Message})
		return
	}

	logger.Error().Err(err).Msg("internal error")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
