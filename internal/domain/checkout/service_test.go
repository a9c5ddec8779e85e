// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

var (
	productA = catalog.Product{ID: "a", Title: "Product A", Price: 10}
	productB = catalog.Product{ID: "b", Title: "Product B", Price: 5}
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fixture struct {
	store   *cart.Store
	orders  *order.Repository
	service *Service
	routes  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := storage.NewMemoryStore()
	f := &fixture{
		store:  cart.NewStore(kv, testLogger()),
		orders: order.NewRepository(kv),
	}
	f.service = NewService(f.store, f.orders, testLogger(), 0, "/checkout/success", func(route string) {
		f.routes = append(f.routes, route)
	})
	return f
}

func TestSubmitPlacesOrder(t *testing.T) {
	f := newFixture(t)
	f.store.Add(productA)
	f.store.Add(productA)
	f.store.Add(productB)

	placed, result, err := f.service.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.True(t, result.Valid)

	require.Len(t, placed.Items, 2)
	assert.Equal(t, 25.0, placed.TotalPrice)
	assert.Equal(t, order.StatusPending, placed.Status)
	assert.NotEmpty(t, placed.OrderNumber)
	assert.Equal(t, "Jane", placed.FormData.FirstName)

	// The order is retrievable and the cart has been cleared.
	last, err := f.orders.Last(context.Background())
	require.NoError(t, err)
	assert.Equal(t, placed.ID, last.ID)
	assert.Empty(t, f.store.State().Items)

	assert.Equal(t, []string{"/checkout/success"}, f.routes)
}

func TestSubmitInvalidFormPlacesNothing(t *testing.T) {
	f := newFixture(t)
	f.store.Add(productA)

	form := validForm()
	form.Email = "nope"

	placed, result, err := f.service.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Nil(t, placed)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid email format", result.FieldErrors["email"])

	// Nothing persisted, cart untouched.
	_, err = f.orders.Last(context.Background())
	assert.ErrorIs(t, err, order.ErrNoOrder)
	assert.Len(t, f.store.State().Items, 1)
	assert.Empty(t, f.routes)
}

func TestSubmitEmptyCart(t *testing.T) {
	f := newFixture(t)

	placed, _, err := f.service.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, placed)
	assert.Empty(t, f.routes)
}

func TestSubmitNavigatesBeforeClearingCart(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := cart.NewStore(kv, testLogger())
	orders := order.NewRepository(kv)
	store.Add(productA)

	var itemsAtNavigate int
	var checkingOutAtNavigate bool
	service := NewService(store, orders, testLogger(), 0, "/done", func(string) {
		itemsAtNavigate = len(store.State().Items)
		checkingOutAtNavigate = store.CheckoutInProgress()
	})

	_, _, err := service.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, 1, itemsAtNavigate)
	assert.True(t, checkingOutAtNavigate)
	assert.Empty(t, store.State().Items)
	assert.False(t, store.CheckoutInProgress())
}

func TestSubmitNilNavigate(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := cart.NewStore(kv, testLogger())
	store.Add(productB)

	service := NewService(store, order.NewRepository(kv), testLogger(), 0, "/done", nil)

	placed, _, err := service.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Empty(t, store.State().Items)
}

func TestSubmitHonorsProcessingDelay(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := cart.NewStore(kv, testLogger())
	store.Add(productA)

	delay := 30 * time.Millisecond
	service := NewService(store, order.NewRepository(kv), testLogger(), delay, "/done", nil)

	start := time.Now()
	_, _, err := service.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}
