// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Wireless Headphones", "wireless-headphones"},
		{"punctuation collapses", "iPhone 9 -- (refurbished!)", "iphone-9-refurbished"},
		{"leading and trailing junk", "  ~Mechanical Keyboard~  ", "mechanical-keyboard"},
		{"already a slug", "gaming-mouse", "gaming-mouse"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Wireless Headphones",
		"Essence Mascara Lash Princess",
		"100% Cotton T-Shirt (XL)",
		"Café au Lait",
	}

	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slug of %q must be stable", title)
	}
}

func TestProductInStock(t *testing.T) {
	p := Product{Stock: 3}
	assert.True(t, p.InStock())

	p.Stock = 0
	assert.False(t, p.InStock())
}
