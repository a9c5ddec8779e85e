// internal/domain/order/builder.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/domain/cart"
)

// Build assembles an immutable order record from the cart contents and the
// already-validated form data. Preconditions: the cart is non-empty and the
// form passed validation — callers must not invoke Build otherwise; it does
// not re-validate.
func Build(state cart.State, form FormData) Order {
	now := time.Now().UTC()
	id := uuid.New()

	items := make([]Item, len(state.Items))
	for i, line := range state.Items {
		items[i] = Item{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		}
	}

	return Order{
		ID:          id.String(),
		OrderNumber: generateOrderNumber(now, id),
		Date:        now.Format(time.RFC3339),
		FormData:    form,
		Items:       items,
		TotalPrice:  state.TotalPrice,
		Status:      StatusPending,
	}
}

// generateOrderNumber builds a human-readable unique order number.
// Format: ORD-YYYYMMDD-XXXXXXXX, with the suffix taken from the order id so
// rapid successive orders never collide.
func generateOrderNumber(t time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(id.String()[:8])
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102"), suffix)
}
