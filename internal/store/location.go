package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// LocationStore persists the selected service location per session. It is a
// single-value store with get/set/clear; active/inactive gating against the
// static location list is the caller's responsibility.
type LocationStore struct {
	persistence Persistence
	logger      zerolog.Logger
}

// NewLocationStore creates a location store on top of the given persistence.
func NewLocationStore(persistence Persistence, logger zerolog.Logger) *LocationStore {
	return &LocationStore{
		persistence: persistence,
		logger:      logger.With().Str("store", "location").Logger(),
	}
}

func locationKey(sessionID string) string {
	return "location:" + sessionID
}

// Selected returns the selected location id, or an empty string when none
// has been chosen.
func (s *LocationStore) Selected(ctx context.Context, sessionID string) (string, error) {
	var locationID string
	err := s.persistence.Load(ctx, locationKey(sessionID), &locationID)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return locationID, nil
}

// Select stores the selected location id.
func (s *LocationStore) Select(ctx context.Context, sessionID, locationID string) error {
	return s.persistence.Save(ctx, locationKey(sessionID), locationID)
}

// Clear removes the selected location.
func (s *LocationStore) Clear(ctx context.Context, sessionID string) error {
	return s.persistence.Delete(ctx, locationKey(sessionID))
}
