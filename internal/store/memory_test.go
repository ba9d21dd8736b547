package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	path := Products("demo")

	id, err := m.Add(ctx, path, map[string]any{"title": "Martillo"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := m.Get(ctx, path, id)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", doc.Data["title"])

	require.NoError(t, m.Update(ctx, path, id, map[string]any{"price": 10.0}))
	doc, _ = m.Get(ctx, path, id)
	assert.Equal(t, 10.0, doc.Data["price"])
	assert.Equal(t, "Martillo", doc.Data["title"], "patch merges, does not replace")

	require.NoError(t, m.Delete(ctx, path, id))
	_, err = m.Get(ctx, path, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.Update(ctx, Products("demo"), "nope", map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	// UpdateIfExists on a vanished document is a silent no-op.
	assert.NoError(t, m.UpdateIfExists(ctx, Products("demo"), "nope", map[string]any{"a": 1}))
}

func TestMemoryFindByField(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	path := Contacts("demo")

	_, _ = m.Add(ctx, path, map[string]any{"phone": "111"})
	_, _ = m.Add(ctx, path, map[string]any{"phone": "222"})
	_, _ = m.Add(ctx, path, map[string]any{"phone": "222"})

	docs, err := m.FindByField(ctx, path, "phone", "222")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, _ = m.FindByField(ctx, path, "phone", "333")
	assert.Empty(t, docs)

	// Equality is typed: a numerically-stored field never matches its
	// string form, same as the Mongo filter.
	_, _ = m.Add(ctx, path, map[string]any{"phone": int64(444)})
	docs, _ = m.FindByField(ctx, path, "phone", "444")
	assert.Empty(t, docs)
	docs, _ = m.FindByField(ctx, path, "phone", int64(444))
	assert.Len(t, docs, 1)
}

func TestMemoryReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	path := Tenants()

	require.NoError(t, m.Set(ctx, path, "demo", map[string]any{
		"title": "Mi tienda",
		"flags": []any{"1"},
	}))

	doc, _ := m.Get(ctx, path, "demo")
	doc.Data["title"] = "mutated"
	doc.Data["flags"].([]any)[0] = "mutated"

	fresh, _ := m.Get(ctx, path, "demo")
	assert.Equal(t, "Mi tienda", fresh.Data["title"])
	assert.Equal(t, "1", fresh.Data["flags"].([]any)[0])
}

func TestMemoryBatchAtomicity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	path := Products("demo")

	// Second op targets a missing document: nothing from the batch lands.
	err := m.Batch(ctx, path, []BatchOp{
		{Kind: BatchCreate, ID: "p1", Data: map[string]any{"title": "uno"}},
		{Kind: BatchUpdate, ID: "ghost", Data: map[string]any{"title": "dos"}},
	})
	require.Error(t, err)

	docs, _ := m.List(ctx, path)
	assert.Empty(t, docs)

	// A valid batch applies everything.
	require.NoError(t, m.Batch(ctx, path, []BatchOp{
		{Kind: BatchCreate, ID: "p1", Data: map[string]any{"title": "uno"}},
		{Kind: BatchCreate, ID: "p2", Data: map[string]any{"title": "dos"}},
	}))
	docs, _ = m.List(ctx, path)
	assert.Len(t, docs, 2)
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "tenants", Tenants())
	assert.Equal(t, "tenants/demo/products", Products("demo"))
	assert.Equal(t, "tenants/demo/contacts", Contacts("demo"))
	assert.Equal(t, "tenants/demo/orders", Orders("demo"))
}
