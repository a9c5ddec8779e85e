// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
)

// ErrEmptyCart is returned when an order submission arrives for an empty cart
var ErrEmptyCart = errors.New("checkout: cart is empty")

// NavigateFunc receives the route to the confirmation view after an order is
// persisted. Navigation is an opaque side effect owned by the caller.
type NavigateFunc func(route string)

// Service runs the order submission pipeline:
// validate form, build order, persist order, navigate, clear cart.
type Service struct {
	store    *cart.Store
	orders   *order.Repository
	log      *logrus.Logger
	delay    time.Duration
	route    string
	navigate NavigateFunc
}

// NewService creates a checkout service. navigate may be nil when no caller
// observes the navigation intent.
func NewService(store *cart.Store, orders *order.Repository, log *logrus.Logger, delay time.Duration, route string, navigate NavigateFunc) *Service {
	return &Service{
		store:    store,
		orders:   orders,
		log:      log,
		delay:    delay,
		route:    route,
		navigate: navigate,
	}
}

// Submit places an order from the current cart and the given form.
//
// An invalid form is reported through the Result, not an error. The
// checkout-in-progress flag is held for the whole submission so empty-cart
// reactions stay suspended while the cart is cleared at the end. The cart is
// cleared strictly after the navigation intent is issued: clearing first
// would let an empty-cart redirect hijack the in-flight confirmation.
func (s *Service) Submit(ctx context.Context, form order.FormData) (*order.Order, Result, error) {
	result := Validate(form)
	if !result.Valid {
		return nil, result, nil
	}

	snapshot := s.store.State()
	if len(snapshot.Items) == 0 {
		return nil, result, ErrEmptyCart
	}

	s.store.BeginCheckout()
	defer s.store.EndCheckout()

	// Simulated payment round-trip. Not cancellable once started: if the
	// caller has gone away we still finish the sequence, fire and forget.
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	placed := order.Build(snapshot, form)

	if err := s.orders.Save(ctx, placed); err != nil {
		return nil, result, fmt.Errorf("failed to place order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_number": placed.OrderNumber,
		"total_price":  placed.TotalPrice,
		"items":        len(placed.Items),
	}).Info("Order placed")

	if s.navigate != nil {
		s.navigate(s.route)
	}

	s.store.Clear()

	return &placed, result, nil
}
