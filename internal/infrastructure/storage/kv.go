// internal/infrastructure/storage/kv.go
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is the durable key-value persistence port. The cart store and the order
// repository write under disjoint fixed keys and never contend with each
// other; implementations only need last-writer-wins semantics per key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
