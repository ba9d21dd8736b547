package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/dto"
	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
	"github.com/xupateste/ctlg-tros/internal/worker"
)

// fakeEnqueuer records enqueued payloads instead of pushing to Redis.
type fakeEnqueuer struct {
	touches []worker.ContactTouchPayload
	emails  []worker.EmailJobPayload
	fail    bool
}

func (f *fakeEnqueuer) EnqueueContactTouch(_ context.Context, payload interface{}) error {
	if f.fail {
		return errors.New("redis down")
	}
	f.touches = append(f.touches, payload.(worker.ContactTouchPayload))
	return nil
}

func (f *fakeEnqueuer) EnqueueEmail(_ context.Context, payload interface{}) error {
	if f.fail {
		return errors.New("redis down")
	}
	f.emails = append(f.emails, payload.(worker.EmailJobPayload))
	return nil
}

func checkoutFixture(t *testing.T) (CheckoutService, repository.OrderRepository, *fakeEnqueuer) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	tenants := repository.NewTenantRepository(st, schema.NewTenantSchema(schema.ProductionDefaults()))
	orders := repository.NewOrderRepository(st)

	_, err := tenants.Create(ctx, "demo@example.com", "x", map[string]any{
		"slug":   "demo",
		"phone":  "51911111111",
		"sales2": "51922222222",
	})
	require.NoError(t, err)

	enq := &fakeEnqueuer{}
	return NewCheckoutService(tenants, orders, enq), orders, enq
}

func TestCheckoutBuildsLinkAndPersistsOrder(t *testing.T) {
	ctx := context.Background()
	svc, orders, enq := checkoutFixture(t)

	resp, err := svc.Checkout(ctx, "demo", dto.CheckoutRequest{
		Phone: "51987654321",
		Name:  "Ana",
		Items: []dto.CheckoutItem{
			{Title: "Martillo", Price: decimal.NewFromFloat(25.5), Count: 2},
			{Title: "Cinta", Price: decimal.NewFromInt(8), Count: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.NewFromInt(59)), "2*25.50 + 8 = 59, got %s", resp.Total)
	assert.NotEmpty(t, resp.OrderID)
	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/51911111111?text="), resp.Link)

	decoded, err := url.QueryUnescape(strings.TrimPrefix(resp.Link, "https://wa.me/51911111111?text="))
	require.NoError(t, err)
	assert.Contains(t, decoded, "2 x Martillo")
	assert.Contains(t, decoded, "Total: 59.00")

	saved, err := orders.List(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, false, saved[0]["checked"])
	assert.Equal(t, 59.0, saved[0]["total"])

	// The shopper's touch went to the queue, carrying the same phone.
	require.Len(t, enq.touches, 1)
	assert.Equal(t, "demo", enq.touches[0].Tenant)
	assert.Equal(t, "51987654321", enq.touches[0].Touch["phone"])
}

func TestCheckoutRoutesToSalesContact(t *testing.T) {
	svc, _, _ := checkoutFixture(t)

	resp, err := svc.Checkout(context.Background(), "demo", dto.CheckoutRequest{
		Phone: "51987654321",
		Sales: "sales2",
		Items: []dto.CheckoutItem{{Title: "Martillo", Price: decimal.NewFromInt(10), Count: 1}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/51922222222?text="), resp.Link)
}

func TestCheckoutUnknownTenant(t *testing.T) {
	svc, _, _ := checkoutFixture(t)

	_, err := svc.Checkout(context.Background(), "ghost", dto.CheckoutRequest{
		Phone: "51987654321",
		Items: []dto.CheckoutItem{{Title: "Martillo", Price: decimal.NewFromInt(10), Count: 1}},
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCheckoutSurvivesQueueFailure(t *testing.T) {
	ctx := context.Background()
	svc, orders, enq := checkoutFixture(t)
	enq.fail = true

	// A dead queue must not lose the sale.
	resp, err := svc.Checkout(ctx, "demo", dto.CheckoutRequest{
		Phone: "51987654321",
		Items: []dto.CheckoutItem{{Title: "Martillo", Price: decimal.NewFromInt(10), Count: 1}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.OrderID)

	saved, _ := orders.List(ctx, "demo")
	assert.Len(t, saved, 1)
}
