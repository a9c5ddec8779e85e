// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// StorageKey is the fixed key the cart is persisted under. There is exactly
// one cart per installation, so the key carries no other identity.
const StorageKey = "shopping-cart"

// Store is the single source of truth for the shopping cart and the only
// component permitted to mutate cart state. Every mutation runs a pure
// reducer, then synchronously serializes the resulting line items (not the
// derived totals) to durable storage.
type Store struct {
	mu    sync.Mutex
	state State
	kv    storage.KV
	log   *logrus.Logger

	checkingOut atomic.Bool
}

// NewStore creates a cart store and restores previously persisted items.
// The load happens exactly once, before any operation is accepted; malformed
// persisted data falls back to the empty cart and is logged, never returned.
func NewStore(kv storage.KV, log *logrus.Logger) *Store {
	s := &Store{
		state: Empty(),
		kv:    kv,
		log:   log,
	}
	s.load(context.Background())
	return s
}

// State returns a snapshot of the current cart state. The items slice is
// copied so callers hold read references only.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add adds one unit of the product to the cart
func (s *Store) Add(product catalog.Product) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Add(s.state, product)
	s.persist()
	return s.snapshot()
}

// Remove removes the line item with the given product id
func (s *Store) Remove(productID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Remove(s.state, productID)
	s.persist()
	return s.snapshot()
}

// SetQuantity replaces a line item's quantity; below 1 removes the item
func (s *Store) SetQuantity(productID string, quantity int) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = SetQuantity(s.state, productID, quantity)
	s.persist()
	return s.snapshot()
}

// Clear empties the cart
func (s *Store) Clear() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Empty()
	s.persist()
	return s.snapshot()
}

// BeginCheckout raises the checkout-in-progress flag. While it is held,
// empty-cart reactions (such as a redirect away from the checkout view) must
// not fire, because the cart is cleared as the final step of a successful
// submission.
func (s *Store) BeginCheckout() {
	s.checkingOut.Store(true)
}

// EndCheckout lowers the checkout-in-progress flag
func (s *Store) EndCheckout() {
	s.checkingOut.Store(false)
}

// CheckoutInProgress reports whether an order submission is in flight
func (s *Store) CheckoutInProgress() bool {
	return s.checkingOut.Load()
}

// load restores the persisted line items and recomputes totals. Persisted
// aggregates are never trusted; corrupt data degrades to the empty cart.
func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, StorageKey)
	if err == storage.ErrKeyNotFound {
		return
	}
	if err != nil {
		s.log.WithError(err).Warn("Failed to load cart, starting empty")
		return
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.WithError(err).Warn("Persisted cart is malformed, starting empty")
		return
	}

	for _, item := range items {
		if item.Product.ID == "" || item.Quantity < 1 {
			s.log.Warn("Persisted cart has invalid line items, starting empty")
			return
		}
	}

	s.state = calculateTotals(items)
}

// persist writes the current line items under the cart key. Storage failures
// are absorbed here: the in-memory cart stays authoritative for the session.
func (s *Store) persist() {
	data, err := json.Marshal(s.state.Items)
	if err != nil {
		s.log.WithError(err).Error("Failed to serialize cart")
		return
	}
	if err := s.kv.Set(context.Background(), StorageKey, data); err != nil {
		s.log.WithError(err).Error("Failed to persist cart")
	}
}

func (s *Store) snapshot() State {
	items := make([]LineItem, len(s.state.Items))
	copy(items, s.state.Items)
	return State{
		Items:      items,
		TotalItems: s.state.TotalItems,
		TotalPrice: s.state.TotalPrice,
	}
}
