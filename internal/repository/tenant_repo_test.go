package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

func newTenantRepo() (TenantRepository, *store.Memory) {
	st := store.NewMemory()
	return NewTenantRepository(st, schema.NewTenantSchema(schema.ProductionDefaults())), st
}

func TestTenantCreateKeyedBySlug(t *testing.T) {
	ctx := context.Background()
	repo, st := newTenantRepo()

	tenant, err := repo.Create(ctx, "ana@example.com", "secreto", map[string]any{
		"slug": "mi-tienda", "title": "Mi Tienda", "phone": "51987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "mi-tienda", tenant.Slug)
	assert.Equal(t, "teal", tenant.Color, "defaults filled in")

	// The document id IS the slug.
	doc, err := st.Get(ctx, store.Tenants(), "mi-tienda")
	require.NoError(t, err)
	assert.Equal(t, "mi-tienda", doc.Data["slug"])
	assert.NotEmpty(t, doc.Data["passwordHash"])
	assert.NotEqual(t, "secreto", doc.Data["passwordHash"])
}

func TestTenantCreateRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTenantRepo()

	_, err := repo.Create(ctx, "a@example.com", "x", map[string]any{"slug": "demo"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, "b@example.com", "y", map[string]any{"slug": "demo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe")
}

func TestTenantCreateRequiresSlug(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTenantRepo()

	_, err := repo.Create(ctx, "a@example.com", "x", map[string]any{"title": "Sin Slug"})
	require.Error(t, err)
}

func TestTenantFetchNeverLeaksCredentials(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTenantRepo()

	_, err := repo.Create(ctx, "ana@example.com", "secreto", map[string]any{"slug": "demo"})
	require.NoError(t, err)

	tenants, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 1)

	// Credentials live on the document but outside the declared fields, so
	// the fetch cast cannot surface them no matter how it is serialized.
	tenant, err := repo.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", tenant.Slug)
}

func TestTenantUpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo, st := newTenantRepo()

	_, err := repo.Create(ctx, "a@example.com", "x", map[string]any{
		"slug": "demo", "createdAt": int64(500),
	})
	require.NoError(t, err)

	patch, err := repo.Update(ctx, "demo", map[string]any{
		"title": "Renombrada", "createdAt": int64(999),
	})
	require.NoError(t, err)
	_, ok := patch["createdAt"]
	assert.False(t, ok)

	doc, _ := st.Get(ctx, store.Tenants(), "demo")
	assert.Equal(t, int64(500), doc.Data["createdAt"])
	assert.Equal(t, "Renombrada", doc.Data["title"])
}

func TestTenantUpdateMercadoPago(t *testing.T) {
	ctx := context.Background()
	repo, st := newTenantRepo()

	_, err := repo.Create(ctx, "a@example.com", "x", map[string]any{"slug": "demo"})
	require.NoError(t, err)

	// The generic update strips payment credentials.
	_, err = repo.Update(ctx, "demo", map[string]any{
		"mercadopago": map[string]any{"token": "via-generic"},
	})
	require.NoError(t, err)
	doc, _ := st.Get(ctx, store.Tenants(), "demo")
	assert.Nil(t, doc.Data["mercadopago"])

	// The dedicated operation is the only writer.
	require.NoError(t, repo.UpdateMercadoPago(ctx, "demo", map[string]any{
		"mercadopago": map[string]any{"token": "abc", "expiration": float64(99)},
	}))
	doc, _ = st.Get(ctx, store.Tenants(), "demo")
	mp := doc.Data["mercadopago"].(map[string]any)
	assert.Equal(t, "abc", mp["token"])
	assert.Equal(t, int64(99), mp["expiration"])
}
