// internal/infrastructure/catalog/static_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/domain/catalog"
)

func newStatic(t *testing.T) *StaticSource {
	t.Helper()
	source, err := NewStaticSource()
	require.NoError(t, err)
	return source
}

func TestStaticFetchPage(t *testing.T) {
	source := newStatic(t)
	ctx := context.Background()

	page, err := source.FetchPage(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "1", page.Products[0].ID)
	assert.Equal(t, "wireless-headphones", page.Products[0].Slug)

	page, err = source.FetchPage(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "5", page.Products[0].ID)
}

func TestStaticFetchPageOutOfBounds(t *testing.T) {
	source := newStatic(t)
	ctx := context.Background()

	page, err := source.FetchPage(ctx, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 5, page.Total)

	page, err = source.FetchPage(ctx, 10, -3)
	require.NoError(t, err)
	assert.Len(t, page.Products, 5)
}

func TestStaticFetchByID(t *testing.T) {
	source := newStatic(t)

	product, err := source.FetchByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Bluetooth Speaker", product.Title)

	_, err = source.FetchByID(context.Background(), "999")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStaticSearch(t *testing.T) {
	source := newStatic(t)

	page, err := source.Search(context.Background(), "mouse")
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Gaming Mouse", page.Products[0].Title)

	page, err = source.Search(context.Background(), "zz-no-match")
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestStaticFetchByCategory(t *testing.T) {
	source := newStatic(t)

	page, err := source.FetchByCategory(context.Background(), "AUDIO")
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	for _, p := range page.Products {
		assert.Equal(t, "audio", p.Category)
	}
}

func TestStaticFetchCategories(t *testing.T) {
	source := newStatic(t)

	categories, err := source.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"accessories", "audio", "peripherals"}, categories)
}
