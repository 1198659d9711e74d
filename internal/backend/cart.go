package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"storefront/internal/model"
)

// CartAPI defines the cart operations the storefront needs from the
// backend. All calls require a bearer token; the backend rejects anonymous
// cart access.
type CartAPI interface {
	// GetCart retrieves the authoritative server cart.
	GetCart(ctx context.Context, token string) (*model.CartSummary, error)

	// AddCartItem adds a service to the server cart and returns the stored item.
	AddCartItem(ctx context.Context, token, serviceID string, quantity int) (*model.CartItem, error)

	// UpdateCartItem sets the quantity of an existing server cart item.
	UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*model.CartItem, error)

	// RemoveCartItem deletes a single server cart item.
	RemoveCartItem(ctx context.Context, token, itemID string) error

	// ClearCart deletes every item in the server cart.
	ClearCart(ctx context.Context, token string) error
}

// GetCart retrieves the authoritative server cart.
func (c *Client) GetCart(ctx context.Context, token string) (*model.CartSummary, error) {
	var summary model.CartSummary
	if err := c.do(ctx, http.MethodGet, "/cart/", token, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// AddCartItem adds a service to the server cart and returns the stored item.
func (c *Client) AddCartItem(ctx context.Context, token, serviceID string, quantity int) (*model.CartItem, error) {
	payload := struct {
		ServiceID string `json:"service_id"`
		Quantity  int    `json:"quantity"`
	}{ServiceID: serviceID, Quantity: quantity}

	var item model.CartItem
	if err := c.do(ctx, http.MethodPost, "/cart/", token, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of an existing server cart item.
func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*model.CartItem, error) {
	payload := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	var item model.CartItem
	path := fmt.Sprintf("/cart/%s/", url.PathEscape(itemID))
	if err := c.do(ctx, http.MethodPut, path, token, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a single server cart item.
func (c *Client) RemoveCartItem(ctx context.Context, token, itemID string) error {
	path := fmt.Sprintf("/cart/%s/", url.PathEscape(itemID))
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// ClearCart deletes every item in the server cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/cart/", token, nil, nil)
}
