package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/backend"
	"storefront/internal/model"
	"storefront/internal/refdata"

	"github.com/rs/zerolog"
)

// featuredServiceCount bounds the landing page service strip.
const featuredServiceCount = 8

// CatalogHandler serves the landing and catalogue view models.
type CatalogHandler struct {
	catalog backend.CatalogAPI
	refData *refdata.Set
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog backend.CatalogAPI, refData *refdata.Set, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		refData: refData,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// categoryView decorates a backend category with its rendering style.
type categoryView struct {
	model.Category
	Style refdata.CategoryStyle `json:"style"`
}

// landingResponse is the landing page view model.
type landingResponse struct {
	LocationGroups   []model.LocationGroup `json:"location_groups"`
	Categories       []categoryView        `json:"categories"`
	FeaturedServices []model.Service       `json:"featured_services"`
}

// Landing handles GET /api/landing requests. The static reference data
// always renders; backend outages degrade the dynamic strips to empty
// lists rather than failing the page.
func (h *CatalogHandler) Landing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	resp := landingResponse{
		LocationGroups:   h.refData.GroupByRegion(),
		Categories:       []categoryView{},
		FeaturedServices: []model.Service{},
	}

	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to fetch categories for landing page")
	}
	for _, cat := range categories {
		if !cat.IsActive {
			continue
		}
		resp.Categories = append(resp.Categories, categoryView{
			Category: cat,
			Style:    h.refData.StyleFor(cat.Name),
		})
	}

	services, err := h.catalog.ListServices(r.Context(), model.ServiceFilter{Limit: featuredServiceCount})
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to fetch featured services for landing page")
	} else {
		resp.FeaturedServices = services
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListServices handles GET /api/services requests with optional
// category, search and pagination filters.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	filter := model.ServiceFilter{
		CategoryID: r.URL.Query().Get("category_id"),
		Search:     r.URL.Query().Get("search"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
		filter.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
		filter.Offset = offset
	}

	services, err := h.catalog.ListServices(r.Context(), filter)
	if err != nil {
		writeBackendError(w, err, "failed to retrieve services", h.logger)
		return
	}
	if services == nil {
		services = []model.Service{}
	}

	writeJSON(w, http.StatusOK, services)
}

// GetService handles GET /api/services/{id} requests.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	serviceID := r.URL.Path[len("/api/services/"):]
	if serviceID == "" {
		writeError(w, http.StatusBadRequest, "service ID is required", h.logger)
		return
	}

	service, err := h.catalog.GetService(r.Context(), serviceID)
	if err != nil {
		if backend.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "service not found", h.logger)
			return
		}
		writeBackendError(w, err, "failed to retrieve service", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, service)
}

// ListCategories handles GET /api/categories requests.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeBackendError(w, err, "failed to retrieve categories", h.logger)
		return
	}

	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{
			Category: cat,
			Style:    h.refData.StyleFor(cat.Name),
		})
	}

	writeJSON(w, http.StatusOK, views)
}

// ListLocations handles GET /api/locations requests. Inactive locations
// are included so the selector can render them as coming soon.
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.refData.GroupByRegion())
}
