package repository

import (
	"context"

	"github.com/xupateste/ctlg-tros/internal/store"
)

// OrderRepository owns the per-tenant order sub-collection. Orders are raw
// documents: intake forces the moderation defaults, and — unlike every other
// entity — updates apply the caller's patch verbatim with no coercion
// schema in between. Orders are written only by our own checkout path, so
// they are treated as semi-trusted internal records.
type OrderRepository interface {
	List(ctx context.Context, tenant string) ([]map[string]any, error)
	// Intake appends a new order. Whatever the input claims for checked,
	// deleted or createdAt is overwritten at the door.
	Intake(ctx context.Context, tenant string, raw map[string]any) (map[string]any, error)
	Update(ctx context.Context, tenant, id string, patch map[string]any) (map[string]any, error)
	Remove(ctx context.Context, tenant, id string) (string, error)
}

type orderRepository struct {
	store store.Store
}

func NewOrderRepository(st store.Store) OrderRepository {
	return &orderRepository{store: st}
}

func (r *orderRepository) List(ctx context.Context, tenant string) ([]map[string]any, error) {
	docs, err := r.store.List(ctx, store.Orders(tenant))
	if err != nil {
		return nil, err
	}
	orders := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		order := doc.Data
		order["id"] = doc.ID
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *orderRepository) Intake(ctx context.Context, tenant string, raw map[string]any) (map[string]any, error) {
	order := make(map[string]any, len(raw)+3)
	for k, v := range raw {
		order[k] = v
	}
	order["createdAt"] = r.store.Now()
	order["checked"] = false
	order["deleted"] = false

	id, err := r.store.Add(ctx, store.Orders(tenant), order)
	if err != nil {
		return nil, err
	}
	order["id"] = id
	return order, nil
}

func (r *orderRepository) Update(ctx context.Context, tenant, id string, patch map[string]any) (map[string]any, error) {
	delete(patch, "id")
	if err := r.store.Update(ctx, store.Orders(tenant), id, patch); err != nil {
		return nil, err
	}
	return patch, nil
}

func (r *orderRepository) Remove(ctx context.Context, tenant, id string) (string, error) {
	if err := r.store.Delete(ctx, store.Orders(tenant), id); err != nil {
		return "", err
	}
	return id, nil
}
