package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/config"

	"github.com/rs/zerolog"
)

// Client issues typed HTTP calls against the marketplace backend API.
// It carries no retry, backoff or caching logic; callers decide how to
// degrade when a call fails.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a backend API client.
func New(cfg config.BackendConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger.With().Str("component", "backend-client").Logger(),
	}
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// do performs a single JSON request. A non-empty token is sent as a bearer
// Authorization header. When out is non-nil the response body is decoded
// into it.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("backend request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response for %s %s: %w", method, path, err)
	}
	return nil
}

// errorFromResponse builds an APIError from a failed response. The backend
// reports errors as {"detail": "..."}.
func (c *Client) errorFromResponse(resp *http.Response, method, path string) error {
	message := http.StatusText(resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var payload struct {
			Detail string `json:"detail"`
		}
		if jsonErr := json.Unmarshal(data, &payload); jsonErr == nil && payload.Detail != "" {
			message = payload.Detail
		}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("detail", message).
		Msg("backend returned error")

	return &APIError{Status: resp.StatusCode, Message: message}
}
