package store

import (
	"context"
	"errors"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Session identifies a browser session and carries its authentication
// state for the duration of one request.
type Session struct {
	ID   string
	Auth AuthState
}

// AuthState is the persisted auth slice of a session: the backend bearer
// token, the authenticated flag, and a snapshot of the account.
type AuthState struct {
	Authenticated bool        `json:"authenticated"`
	Token         string      `json:"token"`
	User          *model.User `json:"user,omitempty"`
}

// SyncEligible reports whether cart mutations should be pushed to the
// backend. True only when the session is authenticated AND holds a
// non-empty token; an authenticated flag without a token is treated as
// stale, partially-initialised state and degrades to local-only behaviour.
func (s Session) SyncEligible() bool {
	return s.Auth.Authenticated && s.Auth.Token != ""
}

// SessionStore persists per-session authentication state.
type SessionStore struct {
	persistence Persistence
	logger      zerolog.Logger
}

// NewSessionStore creates a session store on top of the given persistence.
func NewSessionStore(persistence Persistence, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		persistence: persistence,
		logger:      logger.With().Str("store", "session").Logger(),
	}
}

func authKey(sessionID string) string {
	return "auth:" + sessionID
}

// Get returns the auth state for a session. A session with no stored auth
// slice is an anonymous guest, not an error.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (AuthState, error) {
	var auth AuthState
	err := s.persistence.Load(ctx, authKey(sessionID), &auth)
	if errors.Is(err, ErrNotFound) {
		return AuthState{}, nil
	}
	if err != nil {
		return AuthState{}, err
	}
	return auth, nil
}

// SetAuth stores the auth state for a session.
func (s *SessionStore) SetAuth(ctx context.Context, sessionID string, auth AuthState) error {
	return s.persistence.Save(ctx, authKey(sessionID), auth)
}

// Clear removes the auth state for a session, returning it to guest status.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.persistence.Delete(ctx, authKey(sessionID))
}
