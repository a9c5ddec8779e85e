// internal/infrastructure/catalog/static.go
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// seedProducts is the built-in demo catalogue served when no remote source
// is configured. Records are raw on purpose: they go through the same
// normalizer as API responses.
var seedProducts = []map[string]any{
	{
		"id": "1", "title": "Wireless Headphones", "price": 99.99, "rating": 4.5,
		"thumbnail": "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?auto=format&fit=crop&w=800&q=60",
		"category":  "audio", "brand": "SoundWave", "stock": 24,
		"description": "Over-ear wireless headphones with active noise cancelling.",
	},
	{
		"id": "2", "title": "Smartphone Holder", "price": 19.99, "rating": 4.0,
		"thumbnail": "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?auto=format&fit=crop&w=800&q=60",
		"category":  "accessories", "brand": "GripFix", "stock": 120,
		"description": "Adjustable desk holder for phones and small tablets.",
	},
	{
		"id": "3", "title": "Bluetooth Speaker", "price": 49.5, "rating": 4.2,
		"thumbnail": "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?auto=format&fit=crop&w=800&q=60",
		"category":  "audio", "brand": "SoundWave", "stock": 36,
		"description": "Portable speaker with 12 hours of playtime.",
	},
	{
		"id": "4", "title": "Gaming Mouse", "price": 39.99, "rating": 4.6,
		"thumbnail": "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=60",
		"category":  "peripherals", "brand": "ClickPro", "stock": 58,
		"description": "Lightweight gaming mouse with a 16k DPI sensor.",
	},
	{
		"id": "5", "title": "Mechanical Keyboard", "price": 129.99, "rating": 4.8,
		"thumbnail": "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=60",
		"category":  "peripherals", "brand": "ClickPro", "stock": 17,
		"description": "Tenkeyless mechanical keyboard with hot-swap switches.",
	},
}

// StaticSource serves a fixed, pre-normalized product list. It implements
// the same Source contract as the remote client, so the rest of the
// application cannot tell the difference.
type StaticSource struct {
	products []catalog.Product
}

// NewStaticSource normalizes the seed catalogue once at construction
func NewStaticSource() (*StaticSource, error) {
	products, err := catalog.NormalizeAll(seedProducts)
	if err != nil {
		return nil, fmt.Errorf("invalid seed catalogue: %w", err)
	}
	return &StaticSource{products: products}, nil
}

// FetchPage returns one page of the seed catalogue
func (s *StaticSource) FetchPage(ctx context.Context, limit, skip int) (*catalog.Page, error) {
	total := len(s.products)
	if skip < 0 {
		skip = 0
	}
	if skip > total {
		skip = total
	}
	end := total
	if limit > 0 && skip+limit < total {
		end = skip + limit
	}

	page := make([]catalog.Product, end-skip)
	copy(page, s.products[skip:end])
	return &catalog.Page{Products: page, Total: total}, nil
}

// FetchByID returns the product with the given id
func (s *StaticSource) FetchByID(ctx context.Context, id string) (*catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, catalog.ErrNotFound
}

// Search matches the query against product titles, case-insensitively
func (s *StaticSource) Search(ctx context.Context, query string) (*catalog.Page, error) {
	matches := catalog.Apply(s.products, catalog.Filters{Search: query})
	return &catalog.Page{Products: matches, Total: len(matches)}, nil
}

// FetchByCategory returns the products of one category
func (s *StaticSource) FetchByCategory(ctx context.Context, category string) (*catalog.Page, error) {
	matches := make([]catalog.Product, 0)
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			matches = append(matches, p)
		}
	}
	return &catalog.Page{Products: matches, Total: len(matches)}, nil
}

// FetchCategories returns the distinct categories of the seed catalogue
func (s *StaticSource) FetchCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range s.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
