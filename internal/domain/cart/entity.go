// internal/domain/cart/entity.go
package cart

import "github.com/your-org/storefront/internal/domain/catalog"

// LineItem represents one product plus a quantity within the cart
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// State represents the shopping cart. Items keep insertion order and hold at
// most one line item per product id. TotalItems and TotalPrice are derived
// from Items on every transition and never mutated independently.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// Empty returns the empty cart state
func Empty() State {
	return State{Items: []LineItem{}}
}
