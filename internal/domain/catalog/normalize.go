// internal/domain/catalog/normalize.go
package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a raw product record that cannot be normalized
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "catalog: " + e.Reason
}

// Normalize converts a raw, loosely-typed product record into the canonical
// Product shape. It fails when the id is not coercible to a non-empty string,
// the title is not a string, or the price is not a finite number. Pure: the
// input map is never modified.
func Normalize(raw map[string]any) (Product, error) {
	if raw == nil {
		return Product{}, &ValidationError{Reason: "invalid product data"}
	}

	id, ok := coerceID(raw["id"])
	if !ok {
		return Product{}, &ValidationError{Reason: "invalid product fields"}
	}

	title, ok := raw["title"].(string)
	if !ok {
		return Product{}, &ValidationError{Reason: "invalid product fields"}
	}

	price, ok := coerceNumber(raw["price"])
	if !ok || math.IsNaN(price) || math.IsInf(price, 0) {
		return Product{}, &ValidationError{Reason: "invalid product fields"}
	}

	trimmed := strings.TrimSpace(title)

	image := stringOr(raw["thumbnail"], "")
	images := stringSlice(raw["images"])
	if image == "" {
		image = stringOr(raw["image"], "")
	}
	if image == "" && len(images) > 0 {
		image = images[0]
	}
	if len(images) == 0 {
		images = []string{image}
	}

	var rating *float64
	if r, ok := coerceNumber(raw["rating"]); ok && r >= 0 && r <= 5 {
		rating = &r
	}

	stock := 0
	if s, ok := coerceNumber(raw["stock"]); ok && s > 0 {
		stock = int(s)
	}

	return Product{
		ID:          id,
		Title:       trimmed,
		Price:       price,
		Rating:      rating,
		Image:       image,
		Images:      images,
		Description: stringOr(raw["description"], ""),
		Category:    stringOr(raw["category"], ""),
		Brand:       stringOr(raw["brand"], ""),
		Stock:       stock,
		Slug:        Slugify(trimmed),
	}, nil
}

// NormalizeAll normalizes an ordered sequence of raw product records,
// short-circuiting with the first element's failure.
func NormalizeAll(raw any) ([]Product, error) {
	var records []map[string]any

	switch v := raw.(type) {
	case []map[string]any:
		records = v
	case []any:
		records = make([]map[string]any, len(v))
		for i, elem := range v {
			m, ok := elem.(map[string]any)
			if !ok {
				return nil, &ValidationError{Reason: "invalid product data"}
			}
			records[i] = m
		}
	default:
		return nil, &ValidationError{Reason: "product list is not a collection"}
	}

	products := make([]Product, len(records))
	for i, record := range records {
		product, err := Normalize(record)
		if err != nil {
			return nil, err
		}
		products[i] = product
	}

	return products, nil
}

// coerceID accepts string and numeric ids and renders them as a string
func coerceID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case float64:
		if math.IsNaN(id) || math.IsInf(id, 0) {
			return "", false
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	default:
		return "", false
	}
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func stringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		out := make([]string, len(items))
		copy(out, items)
		return out
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
