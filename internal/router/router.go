package router

import (
	"net/http"
	"strings"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/store"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router wires up.
type Handlers struct {
	Catalog      *handler.CatalogHandler
	Cart         *handler.CartHandler
	Location     *handler.LocationHandler
	Auth         *handler.AuthHandler
	Registration *handler.RegistrationHandler
	Address      *handler.AddressHandler
	Contact      *handler.ContactHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	sessions *store.SessionStore,
	sessionCfg config.SessionConfig,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no session required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/landing", h.Catalog.Landing)

	// Service routes: collection listing and per-id lookups
	serviceRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" && r.URL.Path != "/api/services/" {
			h.Catalog.GetService(w, r)
			return
		}
		h.Catalog.ListServices(w, r)
	}
	mux.HandleFunc("/api/services", serviceRouteHandler)
	mux.HandleFunc("/api/services/", serviceRouteHandler)

	mux.HandleFunc("/api/categories", h.Catalog.ListCategories)
	mux.HandleFunc("/api/categories/", h.Catalog.ListCategories)

	// The static list of serviced locations, and the per-session selection
	mux.HandleFunc("/api/locations", h.Catalog.ListLocations)
	mux.HandleFunc("/api/location", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Location.Get(w, r)
		case http.MethodPut:
			h.Location.Set(w, r)
		case http.MethodDelete:
			h.Location.Clear(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Cart routes: route based on method and path
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/" {
			switch r.Method {
			case http.MethodGet:
				h.Cart.Get(w, r)
			case http.MethodPost:
				h.Cart.Add(w, r)
			case http.MethodDelete:
				h.Cart.Clear(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		itemID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/cart/"), "/")
		if itemID == "" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.Cart.Update(w, r, itemID)
		case http.MethodDelete:
			h.Cart.Remove(w, r, itemID)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	mux.HandleFunc("/api/auth/login", h.Auth.Login)
	mux.HandleFunc("/api/auth/logout", h.Auth.Logout)
	mux.HandleFunc("/api/auth/me", h.Auth.Me)

	mux.HandleFunc("/api/register/partner", h.Registration.RegisterPartner)
	mux.HandleFunc("/api/register/professional", h.Registration.RegisterProfessional)

	mux.HandleFunc("/api/address/search", h.Address.Search)

	mux.HandleFunc("/api/contact", h.Contact.Submit)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Session
	var root http.Handler = mux
	root = middleware.Session(sessions, sessionCfg, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
