package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/refdata"
	"storefront/internal/store"

	"github.com/rs/zerolog"
)

// LocationHandler exposes the per-session selected service location.
// Active/inactive gating against the static list happens here, not in the
// store.
type LocationHandler struct {
	locations *store.LocationStore
	refData   *refdata.Set
	logger    zerolog.Logger
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(locations *store.LocationStore, refData *refdata.Set, logger zerolog.Logger) *LocationHandler {
	return &LocationHandler{
		locations: locations,
		refData:   refData,
		logger:    logger.With().Str("handler", "location").Logger(),
	}
}

// locationResponse reports the current selection. Location is nil when the
// selected id no longer exists in the reference data.
type locationResponse struct {
	SelectedLocation string          `json:"selected_location"`
	Location         *model.Location `json:"location,omitempty"`
}

// Get handles GET /api/location requests.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	selected, err := h.locations.Selected(r.Context(), sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load selected location", h.logger)
		return
	}

	resp := locationResponse{SelectedLocation: selected}
	if loc, ok := h.refData.LocationByID(selected); ok {
		resp.Location = &loc
	}
	writeJSON(w, http.StatusOK, resp)
}

// Set handles PUT /api/location requests. Unknown and inactive locations
// are rejected and the stored selection stays unchanged.
func (h *LocationHandler) Set(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	var req struct {
		LocationID string `json:"location_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.LocationID == "" {
		writeError(w, http.StatusBadRequest, "location_id is required", h.logger)
		return
	}

	loc, ok := h.refData.LocationByID(req.LocationID)
	if !ok {
		writeError(w, http.StatusBadRequest, model.ErrUnknownLocation.Message, h.logger)
		return
	}
	if !loc.Active {
		writeError(w, http.StatusBadRequest, model.ErrInactiveLocation.Message, h.logger)
		return
	}

	if err := h.locations.Select(r.Context(), sess.ID, loc.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store selected location", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, locationResponse{SelectedLocation: loc.ID, Location: &loc})
}

// Clear handles DELETE /api/location requests.
func (h *LocationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	if err := h.locations.Clear(r.Context(), sess.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear selected location", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
