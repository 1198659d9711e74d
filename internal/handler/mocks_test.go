package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"storefront/internal/backend"
	"storefront/internal/geocode"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/stretchr/testify/mock"
)

// MockCatalogAPI is a mock implementation of backend.CatalogAPI.
type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) ListServices(ctx context.Context, filter model.ServiceFilter) ([]model.Service, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockCatalogAPI) GetService(ctx context.Context, id string) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogAPI) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogAPI) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

// MockCartBackend is a mock implementation of backend.CartAPI.
type MockCartBackend struct {
	mock.Mock
}

func (m *MockCartBackend) GetCart(ctx context.Context, token string) (*model.CartSummary, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSummary), args.Error(1)
}

func (m *MockCartBackend) AddCartItem(ctx context.Context, token, serviceID string, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, token, serviceID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartBackend) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, token, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartBackend) RemoveCartItem(ctx context.Context, token, itemID string) error {
	args := m.Called(ctx, token, itemID)
	return args.Error(0)
}

func (m *MockCartBackend) ClearCart(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockAuthAPI is a mock implementation of backend.AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthAPI) GetMe(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthAPI) RegisterPartner(ctx context.Context, reg model.PartnerRegistration) (*model.RegistrationAck, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegistrationAck), args.Error(1)
}

func (m *MockAuthAPI) RegisterProfessional(ctx context.Context, reg model.ProfessionalRegistration) (*model.RegistrationAck, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegistrationAck), args.Error(1)
}

// MockContactAPI is a mock implementation of backend.ContactAPI.
type MockContactAPI struct {
	mock.Mock
}

func (m *MockContactAPI) SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactAck, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactAck), args.Error(1)
}

// MockSearcher is a mock implementation of AddressSearcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]geocode.Suggestion, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geocode.Suggestion), args.Error(1)
}

func notFoundErr() error {
	return &backend.APIError{Status: http.StatusNotFound, Message: "Service not found"}
}

// withSession attaches a session to the request the way the middleware does.
func withSession(r *http.Request, sess store.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), sess))
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, r)
	return w
}
