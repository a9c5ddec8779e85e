// internal/infrastructure/catalog/dummyjson.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// DummyJSONSource fetches products from the DummyJSON API and normalizes
// them into the canonical Product shape. All transport and decoding failures
// surface as the generic catalog.ErrFetchFailed condition; HTTP-level detail
// stays in the wrapped message.
type DummyJSONSource struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewDummyJSONSource creates a DummyJSON-backed product source
func NewDummyJSONSource(cfg *config.Config, log *logrus.Logger) *DummyJSONSource {
	return &DummyJSONSource{
		baseURL: cfg.Catalog.BaseURL,
		client:  &http.Client{Timeout: cfg.Catalog.RequestTimeout},
		log:     log,
	}
}

// pageResponse mirrors the DummyJSON list payload. Products stay loosely
// typed until they pass through the normalizer.
type pageResponse struct {
	Products []map[string]any `json:"products"`
	Total    int              `json:"total"`
}

// FetchPage retrieves one page of products
func (s *DummyJSONSource) FetchPage(ctx context.Context, limit, skip int) (*catalog.Page, error) {
	endpoint := fmt.Sprintf("%s/products?limit=%d&skip=%d", s.baseURL, limit, skip)
	return s.fetchList(ctx, endpoint)
}

// FetchByID retrieves a single product
func (s *DummyJSONSource) FetchByID(ctx context.Context, id string) (*catalog.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%s", s.baseURL, url.PathEscape(id))

	var raw map[string]any
	if err := s.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	product, err := catalog.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Search retrieves products matching a free-text query
func (s *DummyJSONSource) Search(ctx context.Context, query string) (*catalog.Page, error) {
	endpoint := fmt.Sprintf("%s/products/search?q=%s", s.baseURL, url.QueryEscape(query))
	return s.fetchList(ctx, endpoint)
}

// FetchByCategory retrieves the products of one category
func (s *DummyJSONSource) FetchByCategory(ctx context.Context, category string) (*catalog.Page, error) {
	endpoint := fmt.Sprintf("%s/products/category/%s", s.baseURL, url.PathEscape(category))
	return s.fetchList(ctx, endpoint)
}

// FetchCategories retrieves all category names. DummyJSON has served both
// plain strings and {slug, name} objects here, so both are accepted.
func (s *DummyJSONSource) FetchCategories(ctx context.Context) ([]string, error) {
	endpoint := s.baseURL + "/products/categories"

	var raw []any
	if err := s.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			categories = append(categories, v)
		case map[string]any:
			if slug, ok := v["slug"].(string); ok {
				categories = append(categories, slug)
			} else if name, ok := v["name"].(string); ok {
				categories = append(categories, name)
			}
		}
	}
	return categories, nil
}

func (s *DummyJSONSource) fetchList(ctx context.Context, endpoint string) (*catalog.Page, error) {
	var resp pageResponse
	if err := s.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	products, err := catalog.NormalizeAll(resp.Products)
	if err != nil {
		return nil, err
	}

	return &catalog.Page{Products: products, Total: resp.Total}, nil
}

func (s *DummyJSONSource) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.WithError(err).WithField("url", endpoint).Warn("Catalog request failed")
		return fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return catalog.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", catalog.ErrFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrFetchFailed, err)
	}
	return nil
}
