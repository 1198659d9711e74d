package backend

import (
	"context"
	"net/http"

	"storefront/internal/model"
)

// AuthAPI defines the authentication and onboarding operations used by the
// storefront.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and account snapshot.
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error)

	// GetMe retrieves the account belonging to the token.
	GetMe(ctx context.Context, token string) (*model.User, error)

	// RegisterPartner submits a partner onboarding application.
	RegisterPartner(ctx context.Context, reg model.PartnerRegistration) (*model.RegistrationAck, error)

	// RegisterProfessional submits a freelance professional application.
	RegisterProfessional(ctx context.Context, reg model.ProfessionalRegistration) (*model.RegistrationAck, error)
}

// Login exchanges credentials for a bearer token and account snapshot.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a customer account.
func (c *Client) Register(ctx context.Context, user model.User, password string) (*model.AuthResult, error) {
	payload := struct {
		model.User
		Password string `json:"password"`
	}{User: user, Password: password}

	var result model.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMe retrieves the account belonging to the token.
func (c *Client) GetMe(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterPartner submits a partner onboarding application.
func (c *Client) RegisterPartner(ctx context.Context, reg model.PartnerRegistration) (*model.RegistrationAck, error) {
	var ack model.RegistrationAck
	if err := c.do(ctx, http.MethodPost, "/auth/register/partner", "", reg, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// RegisterProfessional submits a freelance professional application.
func (c *Client) RegisterProfessional(ctx context.Context, reg model.ProfessionalRegistration) (*model.RegistrationAck, error) {
	var ack model.RegistrationAck
	if err := c.do(ctx, http.MethodPost, "/professionals/register", "", reg, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
