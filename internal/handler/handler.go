package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeValidationError writes a 400 with per-field messages for inline
// display next to the offending form inputs.
func writeValidationError(w http.ResponseWriter, fields map[string]string, logger zerolog.Logger) {
	logger.Debug().Interface("fields", fields).Msg("validation failed")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Error:   model.ErrCodeValidation,
		Message: "Please correct the highlighted fields",
		Fields:  fields,
	})
}

// writeBackendError maps a backend call failure to a response: an APIError
// keeps its status and message (shown as a page-level banner), anything
// else becomes a 502 with a generic fallback.
func writeBackendError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	if apiErr, ok := err.(*backend.APIError); ok {
		writeError(w, apiErr.Status, apiErr.Message, logger)
		return
	}
	logger.Error().Err(err).Msg("backend call failed")
	writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: fallback})
}
