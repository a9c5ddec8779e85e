// internal/domain/catalog/normalize_test.go
package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := map[string]any{
		"id":        float64(123),
		"title":     " Test Product ",
		"price":     10.0,
		"thumbnail": "img.png",
	}

	product, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "123", product.ID)
	assert.Equal(t, "Test Product", product.Title)
	assert.Equal(t, 10.0, product.Price)
	assert.Nil(t, product.Rating)
	assert.Equal(t, "img.png", product.Image)
	assert.Equal(t, []string{"img.png"}, product.Images)
	assert.Equal(t, "test-product", product.Slug)
}

func TestNormalizeStringID(t *testing.T) {
	product, err := Normalize(map[string]any{
		"id":    "42",
		"title": "Gaming Mouse",
		"price": 39.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", product.ID)
}

func TestNormalizeInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"nil record", nil},
		{"missing id", map[string]any{"title": "x", "price": 1.0}},
		{"empty string id", map[string]any{"id": "", "title": "x", "price": 1.0}},
		{"boolean id", map[string]any{"id": true, "title": "x", "price": 1.0}},
		{"missing title", map[string]any{"id": "1", "price": 1.0}},
		{"numeric title", map[string]any{"id": "1", "title": 12.0, "price": 1.0}},
		{"missing price", map[string]any{"id": "1", "title": "x"}},
		{"string price", map[string]any{"id": "1", "title": "x", "price": "12"}},
		{"NaN price", map[string]any{"id": "1", "title": "x", "price": math.NaN()}},
		{"infinite price", map[string]any{"id": "1", "title": "x", "price": math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestNormalizeOptionalFields(t *testing.T) {
	product, err := Normalize(map[string]any{
		"id":          "7",
		"title":       "Bluetooth Speaker",
		"price":       49.5,
		"rating":      4.2,
		"images":      []any{"a.png", "b.png"},
		"description": "portable",
		"category":    "audio",
		"brand":       "SoundWave",
		"stock":       float64(36),
	})
	require.NoError(t, err)

	require.NotNil(t, product.Rating)
	assert.Equal(t, 4.2, *product.Rating)
	assert.Equal(t, []string{"a.png", "b.png"}, product.Images)
	assert.Equal(t, "a.png", product.Image)
	assert.Equal(t, "audio", product.Category)
	assert.Equal(t, "SoundWave", product.Brand)
	assert.Equal(t, 36, product.Stock)
}

func TestNormalizeOutOfRangeRatingDropped(t *testing.T) {
	product, err := Normalize(map[string]any{
		"id": "1", "title": "x", "price": 1.0, "rating": 9.5,
	})
	require.NoError(t, err)
	assert.Nil(t, product.Rating)
}

func TestNormalizeAll(t *testing.T) {
	products, err := NormalizeAll([]any{
		map[string]any{"id": "1", "title": "A", "price": 10.0},
		map[string]any{"id": "2", "title": "B", "price": 5.0},
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].Slug)
}

func TestNormalizeAllEmpty(t *testing.T) {
	products, err := NormalizeAll([]any{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestNormalizeAllNotACollection(t *testing.T) {
	for _, input := range []any{nil, "products", 42, map[string]any{"id": "1"}} {
		_, err := NormalizeAll(input)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "catalog: product list is not a collection", err.Error())
	}
}

func TestNormalizeAllFailFast(t *testing.T) {
	_, err := NormalizeAll([]any{
		map[string]any{"id": "1", "title": "ok", "price": 1.0},
		map[string]any{"id": "2", "title": 3.0, "price": 1.0},
		map[string]any{"id": "3", "title": "never reached", "price": 1.0},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "invalid product fields", validationErr.Reason)
}
