// internal/domain/order/repository.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// StorageKey is the fixed key the most recent order is persisted under.
// It is a single slot: each checkout overwrites the previous order. The key
// is disjoint from the cart's, so the two stores never contend.
const StorageKey = "last-order"

// ErrNoOrder is returned by Last when no order has been placed yet
var ErrNoOrder = errors.New("order: no order placed")

// Repository persists the most recent order for the confirmation view
type Repository struct {
	kv storage.KV
}

// NewRepository creates an order repository on the given storage
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Save serializes the order into the last-order slot
func (r *Repository) Save(ctx context.Context, o Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to serialize order: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist order: %w", err)
	}
	return nil
}

// Last reads back the most recently placed order
func (r *Repository) Last(ctx context.Context) (*Order, error) {
	data, err := r.kv.Get(ctx, StorageKey)
	if err == storage.ErrKeyNotFound {
		return nil, ErrNoOrder
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last order: %w", err)
	}

	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to decode last order: %w", err)
	}
	return &o, nil
}
