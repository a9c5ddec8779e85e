// internal/domain/catalog/source.go
package catalog

import (
	"context"
	"errors"
)

// ErrFetchFailed is the generic retryable failure surfaced for any
// product-source error. Callers retry by user action, never automatically.
var ErrFetchFailed = errors.New("catalog: fetch failed")

// ErrNotFound is returned when a product id does not exist at the source
var ErrNotFound = errors.New("catalog: product not found")

// Page represents one page of normalized products
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// Source provides normalized products from an external catalogue
type Source interface {
	FetchPage(ctx context.Context, limit, skip int) (*Page, error)
	FetchByID(ctx context.Context, id string) (*Product, error)
	Search(ctx context.Context, query string) (*Page, error)
	FetchByCategory(ctx context.Context, category string) (*Page, error)
	FetchCategories(ctx context.Context) ([]string, error)
}
