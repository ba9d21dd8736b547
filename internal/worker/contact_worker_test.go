package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xupateste/ctlg-tros/internal/repository"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

func TestContactWorkerReconcilesTouch(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	contacts := repository.NewContactRepository(st, schema.NewContactSchema())
	w := NewContactWorker(contacts)

	payload, _ := json.Marshal(ContactTouchPayload{
		Tenant: "demo",
		Touch:  map[string]any{"phone": "51987654321", "name": "Ana"},
	})

	require.NoError(t, w.Process(ctx, payload))
	require.NoError(t, w.Process(ctx, payload))

	list, err := contacts.List(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].Visits)
}

func TestContactWorkerDropsMalformedPayload(t *testing.T) {
	ctx := context.Background()
	w := NewContactWorker(repository.NewContactRepository(store.NewMemory(), schema.NewContactSchema()))

	// Garbage and empty payloads are dropped, not retried through the DLQ.
	assert.NoError(t, w.Process(ctx, json.RawMessage(`{broken`)))
	assert.NoError(t, w.Process(ctx, json.RawMessage(`{}`)))
	assert.NoError(t, w.Process(ctx, json.RawMessage(`{"tenant":"demo"}`)))
}
