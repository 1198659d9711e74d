package middleware

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, sess store.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SessionFrom extracts the request session from the context. Requests that
// bypass the session middleware get an anonymous zero session.
func SessionFrom(ctx context.Context) store.Session {
	if sess, ok := ctx.Value(sessionContextKey).(store.Session); ok {
		return sess
	}
	return store.Session{}
}

// Session ensures every request carries a browser session. An existing
// cookie is reused; otherwise a new session id is issued. The session's
// persisted auth slice is loaded and attached to the request context; a
// persistence failure degrades the request to guest rather than failing it.
func Session(sessions *store.SessionStore, cfg config.SessionConfig, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   cfg.TTLSeconds,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			auth, err := sessions.Get(r.Context(), sessionID)
			if err != nil {
				logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load session auth state")
				auth = store.AuthState{}
			}

			sess := store.Session{ID: sessionID, Auth: auth}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
