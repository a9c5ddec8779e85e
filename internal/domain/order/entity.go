// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod represents how the customer wants to pay
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Valid reports whether the payment method is one of the known values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodCash:
		return true
	}
	return false
}

// FormData represents the checkout form
type FormData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=card paypal cash"`

	Comments string `json:"comments,omitempty"`
}

// Item is a flattened snapshot of one cart line item, frozen at checkout
// time. Later cart mutations never reach a persisted order.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order represents a placed order. Created exactly once per successful
// checkout submission and immutable afterwards except for status transitions.
type Order struct {
	ID          string   `json:"id"`
	OrderNumber string   `json:"orderNumber"`
	Date        string   `json:"date"`
	FormData    FormData `json:"formData"`
	Items       []Item   `json:"items"`
	TotalPrice  float64  `json:"totalPrice"`
	Status      Status   `json:"status"`
}

// CreatedAt parses the order's ISO-8601 date
func (o *Order) CreatedAt() (time.Time, error) {
	return time.Parse(time.RFC3339, o.Date)
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending
}

// IsCompleted checks if the order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}
