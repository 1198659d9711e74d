package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/rs/zerolog"
)

// CartHandler exposes the session cart over HTTP.
type CartHandler struct {
	carts   *store.CartStore
	catalog backend.CatalogAPI
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *store.CartStore, catalog backend.CatalogAPI, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the cart summary plus the fetch error slot. The error is
// informational; the items alongside it are still valid local state.
type cartResponse struct {
	model.CartSummary
	Error string `json:"error,omitempty"`
}

// Get handles GET /api/cart requests: reconcile with the backend where
// possible and return the resulting summary.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	items, err := h.carts.FetchCart(r.Context(), sess)
	resp := cartResponse{CartSummary: model.Summarize(items)}
	if errors.Is(err, store.ErrCartUnavailable) {
		resp.Error = "Failed to load cart"
	}

	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /api/cart requests. The service is resolved through the
// backend catalogue so the cart item carries a title/price/image snapshot.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	var req struct {
		ServiceID model.FlexID `json:"service_id"`
		Quantity  int          `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.ServiceID == "" {
		writeError(w, http.StatusBadRequest, "service_id is required", h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be greater than zero", h.logger)
		return
	}

	service, err := h.catalog.GetService(r.Context(), req.ServiceID.String())
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "service not found", h.logger)
			return
		}
		writeBackendError(w, err, "failed to resolve service", h.logger)
		return
	}

	items := h.carts.AddItem(r.Context(), sess, *service, req.Quantity)
	writeJSON(w, http.StatusCreated, cartResponse{CartSummary: model.Summarize(items)})
}

// Update handles PUT /api/cart/{id} requests.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request, itemID string) {
	sess := middleware.SessionFrom(r.Context())

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be greater than zero", h.logger)
		return
	}

	items := h.carts.UpdateQuantity(r.Context(), sess, itemID, req.Quantity)
	writeJSON(w, http.StatusOK, cartResponse{CartSummary: model.Summarize(items)})
}

// Remove handles DELETE /api/cart/{id} requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request, itemID string) {
	sess := middleware.SessionFrom(r.Context())

	items := h.carts.RemoveItem(r.Context(), sess, itemID)
	writeJSON(w, http.StatusOK, cartResponse{CartSummary: model.Summarize(items)})
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	h.carts.ClearCart(r.Context(), sess)
	writeJSON(w, http.StatusOK, cartResponse{CartSummary: model.Summarize(nil)})
}
