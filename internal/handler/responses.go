package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/deluxetools/menued/internal/domain"
	"github.com/deluxetools/menued/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode into a pooled buffer first so a marshal failure never
	// truncates a half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrEmptyConfig):
		return http.StatusBadRequest, ErrMsgEmptyConfigError
	case errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity, ErrMsgParseConfigError
	case errors.Is(err, domain.ErrGenerate):
		return http.StatusInternalServerError, ErrMsgGenerateFailed
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, ErrMsgDocumentNotFoundMsg
	case errors.Is(err, domain.ErrVersionUnknown):
		return http.StatusNotFound, ErrMsgVersionUnknownError
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// Short messages from wrapped one-off errors are safe to surface.
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return http.StatusInternalServerError, msg
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
