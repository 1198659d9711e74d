package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading reference data JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based reference data loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "refdata-loader").Logger(),
	}
}

// Load reads a reference data JSON file. Missing category styles fall back
// to the built-in style table so a file can override locations alone.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Set, error) {
	l.logger.Info().Str("file", filePath).Msg("loading reference data file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read reference data file")
		return nil, fmt.Errorf("failed to read reference data file %s: %w", filePath, err)
	}

	set, err := parseSet(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse reference data file")
		return nil, fmt.Errorf("failed to parse reference data file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("locations_loaded", len(set.Locations)).
		Msg("reference data file loaded successfully")

	return set, nil
}

// parseSet decodes and validates a reference dataset.
func parseSet(data []byte) (*Set, error) {
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}

	if len(set.Locations) == 0 {
		return nil, fmt.Errorf("reference data contains no locations")
	}

	seen := make(map[string]bool, len(set.Locations))
	for _, loc := range set.Locations {
		if loc.ID == "" || loc.Name == "" {
			return nil, fmt.Errorf("location entries require id and name")
		}
		if seen[loc.ID] {
			return nil, fmt.Errorf("duplicate location id: %s", loc.ID)
		}
		seen[loc.ID] = true
	}

	if set.CategoryStyles == nil {
		set.CategoryStyles = builtinStyles()
	}

	return &set, nil
}
