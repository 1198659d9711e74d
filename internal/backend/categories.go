package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

// ListCategories retrieves all categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory retrieves a single category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	path := fmt.Sprintf("/categories/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
