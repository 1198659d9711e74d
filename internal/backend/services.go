package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/model"
)

// CatalogAPI defines the read-only catalogue operations used by the
// storefront pages.
type CatalogAPI interface {
	// ListServices retrieves services matching the filter.
	ListServices(ctx context.Context, filter model.ServiceFilter) ([]model.Service, error)

	// GetService retrieves a single service by id.
	GetService(ctx context.Context, id string) (*model.Service, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// GetCategory retrieves a single category by id.
	GetCategory(ctx context.Context, id string) (*model.Category, error)
}

// ListServices retrieves services matching the filter.
func (c *Client) ListServices(ctx context.Context, filter model.ServiceFilter) ([]model.Service, error) {
	params := url.Values{}
	if filter.CategoryID != "" {
		params.Set("category_id", filter.CategoryID)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Limit > 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		params.Set("offset", strconv.Itoa(filter.Offset))
	}

	path := "/services"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var services []model.Service
	if err := c.do(ctx, http.MethodGet, path, "", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService retrieves a single service by id.
func (c *Client) GetService(ctx context.Context, id string) (*model.Service, error) {
	var service model.Service
	path := fmt.Sprintf("/services/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateService creates a service. Backend-side authorisation restricts
// this to admin and partner accounts.
func (c *Client) CreateService(ctx context.Context, token string, service model.Service) (*model.Service, error) {
	var created model.Service
	if err := c.do(ctx, http.MethodPost, "/services", token, service, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateService updates an existing service.
func (c *Client) UpdateService(ctx context.Context, token, id string, service model.Service) (*model.Service, error) {
	var updated model.Service
	path := fmt.Sprintf("/services/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, token, service, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteService deletes a service.
func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	path := fmt.Sprintf("/services/%s", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
