package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"storefront/internal/backend"
	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// ContactHandler accepts contact-form submissions, validates them inline,
// and forwards accepted messages to the backend.
type ContactHandler struct {
	contact backend.ContactAPI
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contact backend.ContactAPI, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		contact: contact,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var msg model.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if fields := validateContact(msg); len(fields) > 0 {
		writeValidationError(w, fields, h.logger)
		return
	}

	ack, err := h.contact.SubmitContact(r.Context(), msg)
	if err != nil {
		writeBackendError(w, err, "Failed to send message. Please try again.", h.logger)
		return
	}

	h.logger.Info().Str("email", msg.Email).Msg("contact form submitted")
	writeJSON(w, http.StatusCreated, ack)
}

func validateContact(msg model.ContactMessage) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(msg.Name) == "" {
		fields["name"] = "Your name is required"
	}
	if !emailPattern.MatchString(msg.Email) {
		fields["email"] = "A valid email address is required"
	}
	if strings.TrimSpace(msg.Message) == "" {
		fields["message"] = "A message is required"
	}

	return fields
}
