package store

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"storefront/internal/backend"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrCartUnavailable is returned by FetchCart when the backend cart could
// not be loaded. The locally-held items remain valid.
var ErrCartUnavailable = errors.New("failed to load cart")

// CartStore maintains the client-visible shopping cart for each browser
// session across three user states: anonymous guest, authenticated with a
// valid token, and authenticated with stale auth state. Mutations are
// applied locally first and pushed to the backend when the session is
// sync-eligible; backend failures degrade to "trust local state" so a
// user's cart contents are never visibly undone by a transient network
// error. The one exception is FetchCart, which reports failure to the
// caller alongside the preserved local items.
//
// The server cart remains the source of truth: a successful fetch replaces
// local items wholesale (last-fetch-wins) rather than diffing.
// cartLockStripes is the size of the fixed mutex pool session ids hash
// into. Sessions arrive with attacker-controlled cardinality, so the pool
// must not grow with them.
const cartLockStripes = 64

type CartStore struct {
	persistence Persistence
	api         backend.CartAPI
	logger      zerolog.Logger

	// Per-session mutation locks, hash-striped over a fixed pool.
	// Serialises the fetch-then-mutate window within this process; across
	// processes last-fetch-wins is the only reconciliation mechanism.
	locks [cartLockStripes]sync.Mutex
}

// NewCartStore creates a cart store on top of the given persistence and
// backend cart API.
func NewCartStore(persistence Persistence, api backend.CartAPI, logger zerolog.Logger) *CartStore {
	return &CartStore{
		persistence: persistence,
		api:         api,
		logger:      logger.With().Str("store", "cart").Logger(),
	}
}

func (s *CartStore) sessionLock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%cartLockStripes]
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// loadItems reads the session's persisted items. A missing or unreadable
// snapshot yields an empty cart.
func (s *CartStore) loadItems(ctx context.Context, sessionID string) []model.CartItem {
	var items []model.CartItem
	err := s.persistence.Load(ctx, cartKey(sessionID), &items)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart snapshot")
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items
}

// saveItems persists the session's items. Persistence is best-effort: a
// write failure is logged and the in-flight response still reflects the
// mutation.
func (s *CartStore) saveItems(ctx context.Context, sessionID string, items []model.CartItem) {
	if err := s.persistence.Save(ctx, cartKey(sessionID), items); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist cart snapshot")
	}
}

// indexByService finds the item referencing the given service, tolerant of
// numeric vs string identifier representations.
func indexByService(items []model.CartItem, serviceID string) int {
	serviceID = strings.TrimSpace(serviceID)
	for i, item := range items {
		if item.ServiceID.EqualsID(serviceID) {
			return i
		}
	}
	return -1
}

// Items returns the locally-held cart items without contacting the backend.
func (s *CartStore) Items(ctx context.Context, sess Session) []model.CartItem {
	return s.loadItems(ctx, sess.ID)
}

// Summary returns the derived aggregate over the locally-held items:
// total item count (sum of quantities) and subtotal computed from each
// item's stored price snapshot.
func (s *CartStore) Summary(ctx context.Context, sess Session) model.CartSummary {
	return model.Summarize(s.loadItems(ctx, sess.ID))
}

// IsInCart reports whether the cart holds an item for the given service.
func (s *CartStore) IsInCart(ctx context.Context, sess Session, serviceID string) bool {
	return indexByService(s.loadItems(ctx, sess.ID), serviceID) >= 0
}

// AddItem adds a service to the cart, incrementing the quantity when an
// item for the service already exists. For sync-eligible sessions the
// authoritative server cart is fetched first and replaces local state
// (last-fetch-wins); if that fetch fails the previously-held local items
// are used instead. The mutation is applied optimistically and pushed to
// the backend afterwards; push failures are logged and the optimistic
// state is kept. A service with no resolvable identifier is ignored.
func (s *CartStore) AddItem(ctx context.Context, sess Session, service model.Service, quantity int) []model.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	serviceID := service.CanonicalID()
	if serviceID == "" {
		s.logger.Error().Str("title", service.Title).Msg("service has no resolvable identifier, ignoring add")
		return s.loadItems(ctx, sess.ID)
	}

	lock := s.sessionLock(sess.ID)
	lock.Lock()
	defer lock.Unlock()

	items := s.loadItems(ctx, sess.ID)

	if sess.SyncEligible() {
		summary, err := s.api.GetCart(ctx, sess.Auth.Token)
		if err != nil {
			s.logger.Warn().Err(err).Str("session_id", sess.ID).
				Msg("failed to fetch cart before adding, using local state")
		} else {
			items = summary.Items
			if items == nil {
				items = []model.CartItem{}
			}
		}
	}

	if idx := indexByService(items, serviceID); idx >= 0 {
		items[idx].Quantity += quantity
		s.saveItems(ctx, sess.ID, items)

		if sess.SyncEligible() && items[idx].Synced() {
			if _, err := s.api.UpdateCartItem(ctx, sess.Auth.Token, items[idx].ID, items[idx].Quantity); err != nil {
				// Keep the optimistic quantity, no rollback.
				s.logger.Warn().Err(err).Str("item_id", items[idx].ID).
					Msg("failed to sync cart item update")
			}
		}
		return items
	}

	newItem := model.CartItem{
		ID:           uuid.NewString(),
		Local:        true,
		UserID:       model.GuestUserID,
		ServiceID:    model.FlexID(serviceID),
		ServiceTitle: service.Title,
		ServicePrice: service.Price,
		ServiceImage: service.Image,
		Quantity:     quantity,
		CreatedAt:    time.Now().UTC(),
	}
	items = append(items, newItem)
	s.saveItems(ctx, sess.ID, items)

	if sess.SyncEligible() {
		saved, err := s.api.AddCartItem(ctx, sess.Auth.Token, serviceID, quantity)
		if err != nil {
			// The temp item stays so the user's action is never visibly undone.
			s.logger.Warn().Err(err).Str("service_id", serviceID).
				Msg("failed to sync new cart item")
			return items
		}
		for i := range items {
			if items[i].Local && items[i].ID == newItem.ID {
				items[i] = *saved
				break
			}
		}
		s.saveItems(ctx, sess.ID, items)
	}

	return items
}

// UpdateQuantity rewrites the matching item's quantity optimistically. The
// backend call is skipped entirely for items the backend has no record of
// yet; otherwise the update is pushed and a failure is logged without
// reverting.
func (s *CartStore) UpdateQuantity(ctx context.Context, sess Session, itemID string, quantity int) []model.CartItem {
	if quantity < 1 {
		return s.loadItems(ctx, sess.ID)
	}

	lock := s.sessionLock(sess.ID)
	lock.Lock()
	defer lock.Unlock()

	items := s.loadItems(ctx, sess.ID)
	var target *model.CartItem
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			target = &items[i]
			break
		}
	}
	if target == nil {
		return items
	}
	s.saveItems(ctx, sess.ID, items)

	if sess.SyncEligible() && target.Synced() {
		if _, err := s.api.UpdateCartItem(ctx, sess.Auth.Token, itemID, quantity); err != nil {
			s.logger.Warn().Err(err).Str("item_id", itemID).Msg("failed to update cart quantity")
		}
	}
	return items
}

// RemoveItem filters the item out of local state, then deletes it from the
// backend when it is server-synced and the session is sync-eligible. A
// failed delete is logged; local state is not reverted.
func (s *CartStore) RemoveItem(ctx context.Context, sess Session, itemID string) []model.CartItem {
	lock := s.sessionLock(sess.ID)
	lock.Lock()
	defer lock.Unlock()

	items := s.loadItems(ctx, sess.ID)
	var removed *model.CartItem
	kept := items[:0]
	for i := range items {
		if items[i].ID == itemID {
			item := items[i]
			removed = &item
			continue
		}
		kept = append(kept, items[i])
	}
	if removed == nil {
		return items
	}
	s.saveItems(ctx, sess.ID, kept)

	if sess.SyncEligible() && removed.Synced() {
		if err := s.api.RemoveCartItem(ctx, sess.Auth.Token, itemID); err != nil {
			s.logger.Warn().Err(err).Str("item_id", itemID).Msg("failed to remove cart item")
		}
	}
	return kept
}

// ClearCart empties local state immediately and fires a backend clear for
// sync-eligible sessions without awaiting reconciliation.
func (s *CartStore) ClearCart(ctx context.Context, sess Session) {
	lock := s.sessionLock(sess.ID)
	lock.Lock()
	defer lock.Unlock()

	s.saveItems(ctx, sess.ID, []model.CartItem{})

	if sess.SyncEligible() {
		if err := s.api.ClearCart(ctx, sess.Auth.Token); err != nil {
			s.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to clear backend cart")
		}
	}
}

// FetchCart reconciles local state with the authoritative server cart.
// Sessions that are not sync-eligible get their local items untouched. On
// a successful fetch the server's item list replaces local state
// wholesale; on failure the existing local items are preserved and
// returned together with ErrCartUnavailable for the caller to surface.
func (s *CartStore) FetchCart(ctx context.Context, sess Session) ([]model.CartItem, error) {
	if !sess.SyncEligible() {
		return s.loadItems(ctx, sess.ID), nil
	}

	lock := s.sessionLock(sess.ID)
	lock.Lock()
	defer lock.Unlock()

	summary, err := s.api.GetCart(ctx, sess.Auth.Token)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sess.ID).Msg("failed to fetch cart")
		return s.loadItems(ctx, sess.ID), ErrCartUnavailable
	}

	items := summary.Items
	if items == nil {
		items = []model.CartItem{}
	}
	s.saveItems(ctx, sess.ID, items)
	return items, nil
}
