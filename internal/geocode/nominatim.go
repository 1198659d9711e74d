// Package geocode wraps the OpenStreetMap Nominatim search endpoint for NZ
// address autocomplete. The endpoint is public and rate-limited; callers
// are expected to debounce their requests.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/config"

	"github.com/rs/zerolog"
)

// MinQueryLength is the minimum query length that triggers a lookup.
// Shorter queries return no candidates without touching the network.
const MinQueryLength = 3

// Suggestion is one address candidate.
type Suggestion struct {
	FullAddress   string  `json:"full_address"`
	AddressNumber string  `json:"address_number,omitempty"`
	StreetName    string  `json:"street_name,omitempty"`
	Suburb        string  `json:"suburb,omitempty"`
	City          string  `json:"city,omitempty"`
	Postcode      string  `json:"postcode,omitempty"`
	Region        string  `json:"region,omitempty"`
	Lat           float64 `json:"lat,omitempty"`
	Lon           float64 `json:"lon,omitempty"`
}

// Client queries the geocoding provider. Read-only; errors propagate to
// the caller.
type Client struct {
	baseURL     string
	userAgent   string
	countryCode string
	maxResults  int
	httpClient  *http.Client
	logger      zerolog.Logger
}

// New creates a geocoding client.
func New(cfg config.GeocodeConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		userAgent:   cfg.UserAgent,
		countryCode: cfg.CountryCode,
		maxResults:  cfg.MaxResults,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logger.With().Str("component", "geocode").Logger(),
	}
}

// nominatimResult is the provider's wire format. Coordinates arrive as
// strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Postcode      string `json:"postcode"`
		State         string `json:"state"`
		County        string `json:"county"`
	} `json:"address"`
}

// Search returns address candidates for a free-text query, restricted to
// the configured country.
func (c *Client) Search(ctx context.Context, query string) ([]Suggestion, error) {
	if len([]rune(query)) < MinQueryLength {
		return []Suggestion{}, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("countrycodes", c.countryCode)
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(c.maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("query", query).Msg("geocode request failed")
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode provider returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, toSuggestion(r))
	}

	c.logger.Debug().
		Str("query", query).
		Int("candidates", len(suggestions)).
		Msg("geocode search completed")

	return suggestions, nil
}

func toSuggestion(r nominatimResult) Suggestion {
	s := Suggestion{
		FullAddress:   r.DisplayName,
		AddressNumber: r.Address.HouseNumber,
		StreetName:    r.Address.Road,
		Suburb:        r.Address.Suburb,
		City:          r.Address.City,
		Postcode:      r.Address.Postcode,
		Region:        r.Address.State,
	}
	if s.Suburb == "" {
		s.Suburb = r.Address.Neighbourhood
	}
	if s.City == "" {
		s.City = r.Address.Town
	}
	if s.City == "" {
		s.City = r.Address.Village
	}
	if s.Region == "" {
		s.Region = r.Address.County
	}
	if lat, err := strconv.ParseFloat(r.Lat, 64); err == nil {
		s.Lat = lat
	}
	if lon, err := strconv.ParseFloat(r.Lon, 64); err == nil {
		s.Lon = lon
	}
	return s
}
