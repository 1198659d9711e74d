package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"storefront/internal/backend"
	"storefront/internal/model"
	"storefront/internal/refdata"

	"github.com/rs/zerolog"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minPasswordLength = 8
	minAboutLength    = 20
)

// RegistrationHandler accepts partner and freelance-professional
// onboarding submissions, validates them inline, and forwards accepted
// payloads to the backend.
type RegistrationHandler struct {
	auth    backend.AuthAPI
	refData *refdata.Set
	logger  zerolog.Logger
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(auth backend.AuthAPI, refData *refdata.Set, logger zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		auth:    auth,
		refData: refData,
		logger:  logger.With().Str("handler", "registration").Logger(),
	}
}

// RegisterPartner handles POST /api/register/partner requests.
func (h *RegistrationHandler) RegisterPartner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var reg model.PartnerRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if fields := validatePartner(reg); len(fields) > 0 {
		writeValidationError(w, fields, h.logger)
		return
	}

	ack, err := h.auth.RegisterPartner(r.Context(), reg)
	if err != nil {
		writeBackendError(w, err, "Registration failed. Please try again later.", h.logger)
		return
	}

	h.logger.Info().Str("email", reg.Email).Msg("partner registration submitted")
	writeJSON(w, http.StatusCreated, ack)
}

// RegisterProfessional handles POST /api/register/professional requests.
func (h *RegistrationHandler) RegisterProfessional(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var reg model.ProfessionalRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if fields := h.validateProfessional(reg); len(fields) > 0 {
		writeValidationError(w, fields, h.logger)
		return
	}

	ack, err := h.auth.RegisterProfessional(r.Context(), reg)
	if err != nil {
		writeBackendError(w, err, "Registration failed. Please try again later.", h.logger)
		return
	}

	h.logger.Info().Str("email", reg.Email).Msg("professional registration submitted")
	writeJSON(w, http.StatusCreated, ack)
}

func validatePartner(reg model.PartnerRegistration) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(reg.Name) == "" {
		fields["name"] = "Business name is required"
	}
	if !emailPattern.MatchString(reg.Email) {
		fields["email"] = "A valid email address is required"
	}
	if len(reg.Password) < minPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	}
	if strings.TrimSpace(reg.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(reg.Address) == "" {
		fields["address"] = "Business address is required"
	}
	if strings.TrimSpace(reg.BusinessType) == "" {
		fields["business_type"] = "Business type is required"
	}

	return fields
}

func (h *RegistrationHandler) validateProfessional(reg model.ProfessionalRegistration) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(reg.FullName) == "" {
		fields["full_name"] = "Full name is required"
	}
	if !emailPattern.MatchString(reg.Email) {
		fields["email"] = "A valid email address is required"
	}
	if strings.TrimSpace(reg.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(reg.ServiceCategory) == "" {
		fields["service_category"] = "Service category is required"
	}
	if strings.TrimSpace(reg.YearsExperience) == "" {
		fields["years_experience"] = "Years of experience is required"
	}
	if len(strings.TrimSpace(reg.AboutYourself)) < minAboutLength {
		fields["about_yourself"] = "Tell us a little more about yourself"
	}

	// The chosen work location must come from the serviced list.
	loc, ok := h.refData.LocationByID(reg.Location)
	switch {
	case strings.TrimSpace(reg.Location) == "":
		fields["location"] = "Preferred location is required"
	case !ok:
		fields["location"] = "Unknown location"
	case !loc.Active:
		fields["location"] = "This location is not yet serviced"
	}

	return fields
}
