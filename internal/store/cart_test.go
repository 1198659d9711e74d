package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartAPI is a mock implementation of backend.CartAPI.
type MockCartAPI struct {
	mock.Mock
}

func (m *MockCartAPI) GetCart(ctx context.Context, token string) (*model.CartSummary, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartSummary), args.Error(1)
}

func (m *MockCartAPI) AddCartItem(ctx context.Context, token, serviceID string, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, token, serviceID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartAPI) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*model.CartItem, error) {
	args := m.Called(ctx, token, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *MockCartAPI) RemoveCartItem(ctx context.Context, token, itemID string) error {
	args := m.Called(ctx, token, itemID)
	return args.Error(0)
}

func (m *MockCartAPI) ClearCart(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestCartStore(api *MockCartAPI) *CartStore {
	return NewCartStore(NewMemoryPersistence(), api, zerolog.Nop())
}

func guestSession() Session {
	return Session{ID: "sess-guest"}
}

func authedSession() Session {
	return Session{
		ID: "sess-authed",
		Auth: AuthState{
			Authenticated: true,
			Token:         "token-123",
			User:          &model.User{ID: "u1", Email: "user@example.com"},
		},
	}
}

// staleSession is authenticated but lost its token; cart operations must
// behave exactly like a guest's.
func staleSession() Session {
	return Session{ID: "sess-stale", Auth: AuthState{Authenticated: true}}
}

func testService() model.Service {
	return model.Service{
		ID:    "svc-1",
		Title: "Lawn Mowing",
		Price: 20.00,
		Image: "lawn.jpg",
	}
}

func TestCartStore_AddItem_Guest_NoBackendCalls(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.True(t, items[0].Local)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, model.GuestUserID, items[0].UserID)
	assert.Equal(t, "Lawn Mowing", items[0].ServiceTitle)
	assert.Equal(t, 20.00, items[0].ServicePrice)
	assert.Equal(t, 1, items[0].Quantity)

	// No mock expectations were set: any backend call would panic the test.
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_Guest_SameServiceIncrements(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	s.AddItem(ctx, sess, testService(), 1)
	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_Guest_QuantityFloor(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()

	items := s.AddItem(ctx, guestSession(), testService(), -3)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartStore_AddItem_LegacyIDFallback(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	legacy := model.Service{LegacyID: "legacy-9", Title: "Old Record", Price: 5}
	items := s.AddItem(ctx, sess, legacy, 1)

	require.Len(t, items, 1)
	assert.Equal(t, model.FlexID("legacy-9"), items[0].ServiceID)
}

func TestCartStore_AddItem_NoIdentifier_Ignored(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	items := s.AddItem(ctx, sess, model.Service{Title: "Broken"}, 1)

	assert.Empty(t, items)
}

func TestCartStore_AddItem_Authed_NewItem_SyncSuccess(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()

	api.On("GetCart", mock.Anything, "token-123").
		Return(&model.CartSummary{Items: []model.CartItem{}}, nil)
	serverItem := &model.CartItem{
		ID:           "srv-item-1",
		UserID:       "u1",
		ServiceID:    "svc-1",
		ServiceTitle: "Lawn Mowing",
		ServicePrice: 20.00,
		Quantity:     1,
	}
	api.On("AddCartItem", mock.Anything, "token-123", "svc-1", 1).Return(serverItem, nil)

	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.Equal(t, "srv-item-1", items[0].ID)
	assert.False(t, items[0].Local)
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_Authed_NewItem_SyncFailureKeepsTempItem(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()

	api.On("GetCart", mock.Anything, "token-123").
		Return(&model.CartSummary{Items: []model.CartItem{}}, nil)
	api.On("AddCartItem", mock.Anything, "token-123", "svc-1", 1).
		Return(nil, errors.New("backend down"))

	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.True(t, items[0].Local)
	assert.Equal(t, 1, items[0].Quantity)

	// The temp item survives into subsequent reads.
	assert.True(t, s.IsInCart(ctx, sess, "svc-1"))
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_Authed_ExistingServerItem_Increments(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()

	existing := model.CartItem{
		ID: "srv-item-1", UserID: "u1", ServiceID: "svc-1",
		ServiceTitle: "Lawn Mowing", ServicePrice: 20.00, Quantity: 1,
	}
	api.On("GetCart", mock.Anything, "token-123").
		Return(&model.CartSummary{Items: []model.CartItem{existing}}, nil)
	updated := existing
	updated.Quantity = 2
	api.On("UpdateCartItem", mock.Anything, "token-123", "srv-item-1", 2).Return(&updated, nil)

	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	api.AssertExpectations(t)
}

// The server cart fetched before an add replaces whatever was held locally.
func TestCartStore_AddItem_Authed_PrefetchReplacesLocalState(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()

	// Seed local state with an item the server does not know about.
	s.saveItems(ctx, sess.ID, []model.CartItem{
		{ID: "old-local", Local: true, ServiceID: "svc-gone", Quantity: 5},
	})

	serverCart := model.CartItem{
		ID: "srv-item-2", ServiceID: "svc-2", ServiceTitle: "Gutter Cleaning",
		ServicePrice: 60.00, Quantity: 1,
	}
	api.On("GetCart", mock.Anything, "token-123").
		Return(&model.CartSummary{Items: []model.CartItem{serverCart}}, nil)
	saved := &model.CartItem{
		ID: "srv-item-3", ServiceID: "svc-1", ServiceTitle: "Lawn Mowing",
		ServicePrice: 20.00, Quantity: 1,
	}
	api.On("AddCartItem", mock.Anything, "token-123", "svc-1", 1).Return(saved, nil)

	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 2)
	assert.Equal(t, "srv-item-2", items[0].ID)
	assert.Equal(t, "srv-item-3", items[1].ID)
	assert.False(t, s.IsInCart(ctx, sess, "svc-gone"))
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_Authed_PrefetchFailureFallsBackToLocal(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()

	s.saveItems(ctx, sess.ID, []model.CartItem{
		{ID: "local-1", Local: true, ServiceID: "svc-1", ServicePrice: 20.00, Quantity: 1},
	})

	api.On("GetCart", mock.Anything, "token-123").Return(nil, errors.New("timeout"))

	// Existing local item matches, so the add becomes an increment. The item
	// is Local, so no update is pushed.
	items := s.AddItem(ctx, sess, testService(), 1)

	require.Len(t, items, 1)
	assert.Equal(t, "local-1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	api.AssertExpectations(t)
}

func TestCartStore_AddItem_StaleAuth_BehavesLikeGuest(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()

	items := s.AddItem(ctx, staleSession(), testService(), 1)

	require.Len(t, items, 1)
	assert.True(t, items[0].Local)
	api.AssertExpectations(t)
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		sess         Session
		seed         []model.CartItem
		itemID       string
		quantity     int
		wantQuantity int
		setupMock    func(api *MockCartAPI)
	}{
		{
			name:         "guest update is local only",
			sess:         guestSession(),
			seed:         []model.CartItem{{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 1}},
			itemID:       "i1",
			quantity:     4,
			wantQuantity: 4,
		},
		{
			name:         "quantity below one is ignored",
			sess:         guestSession(),
			seed:         []model.CartItem{{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 2}},
			itemID:       "i1",
			quantity:     0,
			wantQuantity: 2,
		},
		{
			name:         "authed update of local item skips backend",
			sess:         authedSession(),
			seed:         []model.CartItem{{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 1}},
			itemID:       "i1",
			quantity:     3,
			wantQuantity: 3,
		},
		{
			name:         "authed update of synced item pushes to backend",
			sess:         authedSession(),
			seed:         []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", Quantity: 1}},
			itemID:       "srv-1",
			quantity:     3,
			wantQuantity: 3,
			setupMock: func(api *MockCartAPI) {
				api.On("UpdateCartItem", mock.Anything, "token-123", "srv-1", 3).
					Return(&model.CartItem{ID: "srv-1", Quantity: 3}, nil)
			},
		},
		{
			name:         "push failure keeps optimistic quantity",
			sess:         authedSession(),
			seed:         []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", Quantity: 1}},
			itemID:       "srv-1",
			quantity:     5,
			wantQuantity: 5,
			setupMock: func(api *MockCartAPI) {
				api.On("UpdateCartItem", mock.Anything, "token-123", "srv-1", 5).
					Return(nil, errors.New("backend down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockCartAPI{}
			if tt.setupMock != nil {
				tt.setupMock(api)
			}
			s := newTestCartStore(api)
			ctx := context.Background()
			s.saveItems(ctx, tt.sess.ID, tt.seed)

			items := s.UpdateQuantity(ctx, tt.sess, tt.itemID, tt.quantity)

			require.Len(t, items, 1)
			assert.Equal(t, tt.wantQuantity, items[0].Quantity)
			api.AssertExpectations(t)
		})
	}
}

func TestCartStore_UpdateQuantity_UnknownItem_NoOp(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, Quantity: 1}})

	items := s.UpdateQuantity(ctx, sess, "missing", 4)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartStore_RemoveItem_Guest(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{
		{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 1},
		{ID: "i2", Local: true, ServiceID: "svc-2", Quantity: 2},
	})

	items := s.RemoveItem(ctx, sess, "i1")

	require.Len(t, items, 1)
	assert.Equal(t, "i2", items[0].ID)
	api.AssertExpectations(t)
}

func TestCartStore_RemoveItem_Authed_SyncedItemDeletedOnBackend(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", Quantity: 1}})

	api.On("RemoveCartItem", mock.Anything, "token-123", "srv-1").Return(nil)

	items := s.RemoveItem(ctx, sess, "srv-1")

	assert.Empty(t, items)
	api.AssertExpectations(t)
}

func TestCartStore_RemoveItem_Authed_BackendFailureKeepsLocalRemoval(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", Quantity: 1}})

	api.On("RemoveCartItem", mock.Anything, "token-123", "srv-1").
		Return(errors.New("backend down"))

	items := s.RemoveItem(ctx, sess, "srv-1")

	assert.Empty(t, items)
	assert.Empty(t, s.Items(ctx, sess))
	api.AssertExpectations(t)
}

func TestCartStore_RemoveItem_LocalItemSkipsBackend(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "tmp-1", Local: true, ServiceID: "svc-1", Quantity: 1}})

	items := s.RemoveItem(ctx, sess, "tmp-1")

	assert.Empty(t, items)
	api.AssertExpectations(t)
}

func TestCartStore_ClearCart(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", Quantity: 2}})

	api.On("ClearCart", mock.Anything, "token-123").Return(nil)

	s.ClearCart(ctx, sess)

	assert.Empty(t, s.Items(ctx, sess))
	api.AssertExpectations(t)
}

func TestCartStore_ClearCart_Guest_NoBackendCall(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, Quantity: 2}})

	s.ClearCart(ctx, sess)

	assert.Empty(t, s.Items(ctx, sess))
	api.AssertExpectations(t)
}

func TestCartStore_FetchCart_Guest_ReturnsLocal(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 1}})

	items, err := s.FetchCart(ctx, sess)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	api.AssertExpectations(t)
}

func TestCartStore_FetchCart_Authed_ServerReplacesLocal(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "old", Local: true, ServiceID: "svc-9", Quantity: 3}})

	api.On("GetCart", mock.Anything, "token-123").Return(&model.CartSummary{
		Items: []model.CartItem{{ID: "srv-1", ServiceID: "svc-1", ServicePrice: 20, Quantity: 1}},
	}, nil)

	items, err := s.FetchCart(ctx, sess)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "srv-1", items[0].ID)

	// The replacement is persisted, not just returned.
	stored := s.Items(ctx, sess)
	require.Len(t, stored, 1)
	assert.Equal(t, "srv-1", stored[0].ID)
	api.AssertExpectations(t)
}

func TestCartStore_FetchCart_Authed_FailurePreservesLocal(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := authedSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, ServiceID: "svc-1", Quantity: 2}})

	api.On("GetCart", mock.Anything, "token-123").Return(nil, errors.New("timeout"))

	items, err := s.FetchCart(ctx, sess)

	assert.ErrorIs(t, err, ErrCartUnavailable)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	api.AssertExpectations(t)
}

func TestCartStore_FetchCart_StaleAuth_ReturnsLocalWithoutBackendCall(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := staleSession()
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, Quantity: 1}})

	items, err := s.FetchCart(ctx, sess)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	api.AssertExpectations(t)
}

func TestCartStore_Summary_WorkedExample(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	s.AddItem(ctx, sess, model.Service{ID: "svc-1", Title: "Lawn Mowing", Price: 20.00}, 1)
	s.AddItem(ctx, sess, model.Service{ID: "svc-2", Title: "Gutter Cleaning", Price: 60.00}, 2)

	summary := s.Summary(ctx, sess)

	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 140.00, summary.Subtotal)
	assert.Equal(t, 140.00, summary.Total)
}

func TestCartStore_Summary_Empty(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()

	summary := s.Summary(ctx, guestSession())

	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.TotalItems)
	assert.Equal(t, 0.00, summary.Subtotal)
}

func TestCartStore_IsInCart_NumericIDMatchesString(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()
	sess := guestSession()

	// Simulate a numeric id arriving from the wire.
	var id model.FlexID
	require.NoError(t, id.UnmarshalJSON([]byte("42")))
	s.saveItems(ctx, sess.ID, []model.CartItem{{ID: "i1", Local: true, ServiceID: id, Quantity: 1}})

	assert.True(t, s.IsInCart(ctx, sess, "42"))
	assert.False(t, s.IsInCart(ctx, sess, "43"))
}

func TestCartStore_SessionLocks_BoundedAcrossManySessions(t *testing.T) {
	api := &MockCartAPI{}
	s := newTestCartStore(api)
	ctx := context.Background()

	// Cookie-less clients mint a fresh session per request, so the lock
	// pool must stay fixed no matter how many distinct session ids make
	// no-op mutations.
	distinct := make(map[*sync.Mutex]struct{})
	for i := 0; i < 10000; i++ {
		sessionID := "sess-" + strconv.Itoa(i)
		s.UpdateQuantity(ctx, Session{ID: sessionID}, "missing-item", 1)
		distinct[s.sessionLock(sessionID)] = struct{}{}
	}

	assert.LessOrEqual(t, len(distinct), cartLockStripes)

	// The same session always maps to the same lock.
	assert.Same(t, s.sessionLock("sess-42"), s.sessionLock("sess-42"))

	// No-op guest mutations never reach the backend.
	api.AssertExpectations(t)
}
