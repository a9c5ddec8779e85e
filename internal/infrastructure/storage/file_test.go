// internal/infrastructure/storage/file_test.go
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "shopping-cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "shopping-cart", []byte(`[{"quantity":1}]`)))

	value, err := store.Get(ctx, "shopping-cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":1}]`, string(value))
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "last-order", []byte(`{"id":"1"}`)))
	require.NoError(t, store.Set(ctx, "last-order", []byte(`{"id":"2"}`)))

	value, err := store.Get(ctx, "last-order")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"2"}`, string(value))
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "../escape/attempt", []byte("x")))

	// The key stays inside the data directory under a sanitized name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape_attempt.json", entries[0].Name())

	value, err := store.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(value))
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStoreIsolatesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'x'

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(value))

	value[0] = 'z'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
