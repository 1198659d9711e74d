package handler

import (
	"context"
	"net/http"

	"storefront/internal/geocode"

	"github.com/rs/zerolog"
)

// AddressSearcher is the part of the geocoding client the handler uses.
type AddressSearcher interface {
	Search(ctx context.Context, query string) ([]geocode.Suggestion, error)
}

// AddressHandler proxies address autocomplete lookups to the geocoding
// provider so the browser never talks to it directly.
type AddressHandler struct {
	searcher AddressSearcher
	logger   zerolog.Logger
}

// NewAddressHandler creates a new address handler.
func NewAddressHandler(searcher AddressSearcher, logger zerolog.Logger) *AddressHandler {
	return &AddressHandler{
		searcher: searcher,
		logger:   logger.With().Str("handler", "address").Logger(),
	}
}

// Search handles GET /api/address/search requests.
func (h *AddressHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")
	suggestions, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		writeBackendError(w, err, "address search failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}
