package model

import "time"

// GuestUserID is the sentinel owner recorded on cart items that have not
// been associated with an authenticated account.
const GuestUserID = "guest"

// CartItem is a line in the shopping cart. The service title, price and
// image are denormalised snapshots captured at add-time; totals are always
// computed from the snapshot price, never from a live service lookup.
type CartItem struct {
	ID           string    `json:"id"`
	Local        bool      `json:"local,omitempty"` // id is locally generated, backend has no record of it
	UserID       string    `json:"user_id"`
	ServiceID    FlexID    `json:"service_id"`
	ServiceTitle string    `json:"service_title,omitempty"`
	ServicePrice float64   `json:"service_price,omitempty"`
	ServiceImage string    `json:"service_image,omitempty"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// Synced reports whether the item carries a server-assigned identifier.
func (i CartItem) Synced() bool {
	return !i.Local
}

// CartSummary is the aggregate view of a cart.
type CartSummary struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
	Total      float64    `json:"total"`
}

// TotalItems returns the sum of all item quantities.
func TotalItems(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the sum of price multiplied by quantity across all items,
// using each item's stored price snapshot.
func Subtotal(items []CartItem) float64 {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.ServicePrice * float64(item.Quantity)
	}
	return subtotal
}

// Summarize builds a CartSummary from the given items.
func Summarize(items []CartItem) CartSummary {
	if items == nil {
		items = []CartItem{}
	}
	subtotal := Subtotal(items)
	return CartSummary{
		Items:      items,
		TotalItems: TotalItems(items),
		Subtotal:   subtotal,
		Total:      subtotal,
	}
}
