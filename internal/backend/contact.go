package backend

import (
	"context"
	"net/http"

	"storefront/internal/model"
)

// ContactAPI defines the contact-form operations used by the storefront.
type ContactAPI interface {
	// SubmitContact forwards a contact-form submission. No token: the
	// endpoint is public.
	SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactAck, error)
}

// SubmitContact forwards a contact-form submission.
func (c *Client) SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactAck, error) {
	var ack model.ContactAck
	if err := c.do(ctx, http.MethodPost, "/contact/submit", "", msg, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
