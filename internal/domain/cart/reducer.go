// internal/domain/cart/reducer.go
package cart

import "github.com/your-org/storefront/internal/domain/catalog"

// Pure state transitions. Each returns a freshly calculated State and never
// modifies its input, so no caller can observe a partially-updated cart.

// Add increments the quantity of an existing line item by one, or appends a
// new line item with quantity 1 at the end of the sequence.
func Add(s State, product catalog.Product) State {
	items := make([]LineItem, 0, len(s.Items)+1)
	found := false

	for _, item := range s.Items {
		if item.Product.ID == product.ID {
			item.Quantity++
			found = true
		}
		items = append(items, item)
	}

	if !found {
		items = append(items, LineItem{Product: product, Quantity: 1})
	}

	return calculateTotals(items)
}

// Remove drops the line item with the given product id. Removing an absent
// id returns the state unchanged.
func Remove(s State, productID string) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	return calculateTotals(items)
}

// SetQuantity replaces a line item's quantity. A quantity below 1 drops the
// item entirely; callers are expected to clamp UI input, this is the safety
// net.
func SetQuantity(s State, productID string, quantity int) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Product.ID == productID {
			if quantity < 1 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	return calculateTotals(items)
}

// calculateTotals derives TotalItems and TotalPrice from the line items.
// Aggregates are always recomputed here rather than carried over, so they
// cannot drift from the items after a partial failure.
func calculateTotals(items []LineItem) State {
	state := State{Items: items}
	for _, item := range items {
		state.TotalItems += item.Quantity
		state.TotalPrice += item.Product.Price * float64(item.Quantity)
	}
	return state
}
