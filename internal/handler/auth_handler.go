package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/rs/zerolog"
)

// AuthHandler bridges backend authentication and the session auth slice.
// The bearer token never reaches the browser; it lives in the session
// store and is attached to backend calls server-side.
type AuthHandler struct {
	auth     backend.AuthAPI
	sessions *store.SessionStore
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth backend.AuthAPI, sessions *store.SessionStore, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	sess := middleware.SessionFrom(r.Context())

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required", h.logger)
		return
	}

	result, err := h.auth.Login(r.Context(), model.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		writeBackendError(w, err, "login failed", h.logger)
		return
	}

	auth := store.AuthState{
		Authenticated: true,
		Token:         result.AccessToken,
		User:          &result.User,
	}
	if err := h.sessions.SetAuth(r.Context(), sess.ID, auth); err != nil {
		h.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to persist auth state")
		writeError(w, http.StatusInternalServerError, "failed to establish session", h.logger)
		return
	}

	h.logger.Info().Str("session_id", sess.ID).Msg("user logged in")
	writeJSON(w, http.StatusOK, result.User)
}

// Logout handles POST /api/auth/logout requests. The local cart slice is
// left untouched so the user keeps a guest cart after logging out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	sess := middleware.SessionFrom(r.Context())

	if err := h.sessions.Clear(r.Context(), sess.ID); err != nil {
		h.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to clear auth state")
		writeError(w, http.StatusInternalServerError, "failed to end session", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me requests.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	sess := middleware.SessionFrom(r.Context())

	if !sess.SyncEligible() {
		writeError(w, http.StatusUnauthorized, "not authenticated", h.logger)
		return
	}

	user, err := h.auth.GetMe(r.Context(), sess.Auth.Token)
	if err != nil {
		writeBackendError(w, err, "failed to load account", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
