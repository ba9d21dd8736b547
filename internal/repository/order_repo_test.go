package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/store"
)

func TestOrderIntakeForcesModerationDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(store.NewMemory())

	// Whatever the input claims is overwritten at the door.
	order, err := repo.Intake(ctx, "demo", map[string]any{
		"phone":     "51987654321",
		"total":     42.5,
		"checked":   true,
		"deleted":   true,
		"createdAt": int64(1),
	})
	require.NoError(t, err)
	assert.Equal(t, false, order["checked"])
	assert.Equal(t, false, order["deleted"])
	assert.NotEqual(t, int64(1), order["createdAt"])
	assert.NotEmpty(t, order["id"])
	assert.Equal(t, 42.5, order["total"])
}

func TestOrderUpdateVerbatim(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(store.NewMemory())

	order, err := repo.Intake(ctx, "demo", map[string]any{"phone": "111"})
	require.NoError(t, err)
	id := order["id"].(string)

	// Orders have no coercion schema: the owner's patch applies as-is,
	// except the id which stays store-managed.
	patch, err := repo.Update(ctx, "demo", id, map[string]any{
		"checked": true, "whatever": "sticks", "id": "forged",
	})
	require.NoError(t, err)
	_, ok := patch["id"]
	assert.False(t, ok)

	orders, _ := repo.List(ctx, "demo")
	require.Len(t, orders, 1)
	assert.Equal(t, true, orders[0]["checked"])
	assert.Equal(t, "sticks", orders[0]["whatever"])
	assert.Equal(t, id, orders[0]["id"])
}

func TestOrderRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(store.NewMemory())

	order, _ := repo.Intake(ctx, "demo", map[string]any{"phone": "111"})
	id := order["id"].(string)

	removed, err := repo.Remove(ctx, "demo", id)
	require.NoError(t, err)
	assert.Equal(t, id, removed)

	orders, _ := repo.List(ctx, "demo")
	assert.Empty(t, orders)
}
