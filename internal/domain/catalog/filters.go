// internal/domain/catalog/filters.go
package catalog

import (
	"sort"
	"strings"
)

// Sort options for product listings
const (
	SortTitleAsc   = "title-asc"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// Filters narrows and orders a product listing
type Filters struct {
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	SortBy    string
}

// IsZero reports whether no filter or sort is set
func (f Filters) IsZero() bool {
	return f.Search == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinRating == nil && f.SortBy == ""
}

// Apply filters and sorts a product list. The input slice is never modified.
func Apply(products []Product, f Filters) []Product {
	out := make([]Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && (p.Rating == nil || *p.Rating < *f.MinRating) {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return ratingOf(out[i]) > ratingOf(out[j]) })
	}

	return out
}

// ratingOf treats unrated products as lowest when sorting by rating
func ratingOf(p Product) float64 {
	if p.Rating == nil {
		return -1
	}
	return *p.Rating
}
