// internal/domain/catalog/entity.go
package catalog

import "strings"

// Product represents the canonical product shape used across the application.
// Raw records from any source pass through Normalize before they reach here.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Rating      *float64 `json:"rating"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Stock       int      `json:"stock"`
	Slug        string   `json:"slug"`
}

// InStock reports whether the product has available stock
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Slugify creates a URL-friendly slug from a given string. Lowercased,
// runs of non-alphanumeric characters collapse to a single hyphen, no
// leading or trailing hyphen. Idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
