package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

func newContactRepo() (ContactRepository, *store.Memory) {
	st := store.NewMemory()
	return NewContactRepository(st, schema.NewContactSchema()), st
}

func TestReconcileFirstTouchCreates(t *testing.T) {
	ctx := context.Background()
	repo, _ := newContactRepo()

	c, err := repo.Reconcile(ctx, "demo", map[string]any{
		"phone": "51987654321", "name": "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Visits)
	assert.Equal(t, "Ana", c.Name)
	assert.NotEmpty(t, c.ID)

	contacts, err := repo.List(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
}

func TestReconcileSecondTouchMerges(t *testing.T) {
	ctx := context.Background()
	repo, _ := newContactRepo()

	first, err := repo.Reconcile(ctx, "demo", map[string]any{
		"phone": "51987654321", "name": "Ana", "location": "Lima",
	})
	require.NoError(t, err)

	second, err := repo.Reconcile(ctx, "demo", map[string]any{
		"phone": "51987654321", "name": "Ana María", "description": "pedido grande",
	})
	require.NoError(t, err)

	// Incoming identity data wins, the counter climbs, createdAt is kept.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.Visits)
	assert.Equal(t, "Ana María", second.Name)
	assert.Equal(t, "pedido grande", second.Description)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	contacts, _ := repo.List(ctx, "demo")
	assert.Len(t, contacts, 1, "no duplicate record for the same phone")
}

func TestReconcileResetsLegacyCreatedAt(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	repo := NewContactRepository(st, schema.NewContactSchema())

	// Imported record still carrying the legacy sentinel timestamp.
	require.NoError(t, st.Set(ctx, store.Contacts("demo"), "c1", map[string]any{
		"phone":     "51987654321",
		"name":      "Ana",
		"visits":    int64(7),
		"createdAt": legacyCreatedAt,
	}))

	c, err := repo.Reconcile(ctx, "demo", map[string]any{"phone": "51987654321"})
	require.NoError(t, err)
	assert.NotEqual(t, legacyCreatedAt, c.CreatedAt)
	assert.Equal(t, int64(8), c.Visits)
}

func TestReconcileDistinctPhones(t *testing.T) {
	ctx := context.Background()
	repo, _ := newContactRepo()

	_, err := repo.Reconcile(ctx, "demo", map[string]any{"phone": "111"})
	require.NoError(t, err)
	_, err = repo.Reconcile(ctx, "demo", map[string]any{"phone": "222"})
	require.NoError(t, err)

	contacts, _ := repo.List(ctx, "demo")
	assert.Len(t, contacts, 2)
}

func TestContactCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newContactRepo()

	c, err := repo.Create(ctx, "demo", map[string]any{"phone": "111", "name": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Visits)

	patch, err := repo.Update(ctx, "demo", c.ID, map[string]any{"name": "Ana María"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", patch["name"])

	_, err = repo.Update(ctx, "demo", "ghost", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
