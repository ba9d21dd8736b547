package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

func catalogFixture(t *testing.T) CatalogService {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	tenants := repository.NewTenantRepository(st, schema.NewTenantSchema(schema.ProductionDefaults()))
	products := repository.NewProductRepository(st, schema.NewProductSchema())

	_, err := tenants.Create(ctx, "demo@example.com", "x", map[string]any{
		"slug": "demo", "title": "Demo", "phone": "51911111111",
	})
	require.NoError(t, err)

	// nil Redis client: cache layer short-circuits, reads hit the store.
	return NewCatalogService(tenants, products, nil)
}

func TestStorefrontBundlesTenantAndCatalog(t *testing.T) {
	ctx := context.Background()
	svc := catalogFixture(t)

	_, err := svc.CreateProduct(ctx, "demo", map[string]any{"title": "Martillo", "price": float64(25)})
	require.NoError(t, err)

	resp, err := svc.Storefront(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, "Demo", resp.Tenant.Title)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Martillo", resp.Products[0].Title)
}

func TestStorefrontUnknownTenant(t *testing.T) {
	svc := catalogFixture(t)
	_, err := svc.Storefront(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalogProductLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := catalogFixture(t)

	p, err := svc.CreateProduct(ctx, "demo", map[string]any{"title": "Martillo"})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, "demo", p.ID, map[string]any{"price": float64(30)})
	require.NoError(t, err)

	products, err := svc.Products(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 30.0, products[0].Price)

	_, err = svc.RemoveProduct(ctx, "demo", p.ID)
	require.NoError(t, err)
	products, _ = svc.Products(ctx, "demo")
	assert.Empty(t, products)
}
