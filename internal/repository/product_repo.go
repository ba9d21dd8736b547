package repository

import (
	"context"

	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

// ProductRepository owns the per-tenant product sub-collection.
type ProductRepository interface {
	List(ctx context.Context, tenant string) ([]model.Product, error)
	Create(ctx context.Context, tenant string, raw map[string]any) (model.Product, error)
	Update(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error)
	Remove(ctx context.Context, tenant, id string) (string, error)
	// Upsert applies a mixed list of new and existing products in one atomic
	// batch: items with an id are patched, items without get a fresh id and
	// slug. Either the whole list lands or none of it does.
	Upsert(ctx context.Context, tenant string, items []map[string]any) ([]model.Product, error)
}

type productRepository struct {
	store  store.Store
	schema *schema.ProductSchema
}

func NewProductRepository(st store.Store, sch *schema.ProductSchema) ProductRepository {
	return &productRepository{store: st, schema: sch}
}

func (r *productRepository) List(ctx context.Context, tenant string) ([]model.Product, error) {
	docs, err := r.store.List(ctx, store.Products(tenant))
	if err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		p := r.schema.Fetch(doc.Data)
		p.ID = doc.ID
		products = append(products, p)
	}
	return products, nil
}

// Create allocates the document id before the single write so the payload can
// embed its own id — the slug carries the id as uniqueness suffix, and a
// write whose id the payload does not know would break that derivation.
func (r *productRepository) Create(ctx context.Context, tenant string, raw map[string]any) (model.Product, error) {
	id := r.store.NewID()
	raw["id"] = id
	raw["slug"] = r.schema.SlugFor(raw, id)

	doc := r.schema.Create(raw)
	if err := r.store.Set(ctx, store.Products(tenant), id, doc); err != nil {
		return model.Product{}, err
	}
	p := r.schema.Fetch(doc)
	p.ID = id
	return p, nil
}

// Update recomputes the slug from the payload's current title whenever the
// title is part of the patch, keeping slug and title in lockstep.
func (r *productRepository) Update(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error) {
	if _, ok := raw["title"]; ok {
		raw["slug"] = r.schema.SlugFor(raw, id)
	}
	patch := r.schema.Update(raw)
	if _, ok := patch["updatedAt"]; !ok {
		patch["updatedAt"] = r.store.Now()
	}
	if err := r.store.Update(ctx, store.Products(tenant), id, patch); err != nil {
		return nil, err
	}
	return patch, nil
}

func (r *productRepository) Remove(ctx context.Context, tenant, id string) (string, error) {
	if err := r.store.Delete(ctx, store.Products(tenant), id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *productRepository) Upsert(ctx context.Context, tenant string, items []map[string]any) ([]model.Product, error) {
	ops := make([]store.BatchOp, 0, len(items))
	results := make([]model.Product, 0, len(items))

	for _, raw := range items {
		if id, ok := raw["id"].(string); ok && id != "" {
			if _, ok := raw["title"]; ok {
				raw["slug"] = r.schema.SlugFor(raw, id)
			}
			patch := r.schema.Update(raw)
			if _, exists := patch["updatedAt"]; !exists {
				patch["updatedAt"] = r.store.Now()
			}
			ops = append(ops, store.BatchOp{Kind: store.BatchUpdate, ID: id, Data: patch})

			p := r.schema.Fetch(raw)
			p.ID = id
			results = append(results, p)
			continue
		}

		id := r.store.NewID()
		raw["id"] = id
		raw["slug"] = r.schema.SlugFor(raw, id)
		doc := r.schema.Create(raw)
		ops = append(ops, store.BatchOp{Kind: store.BatchCreate, ID: id, Data: doc})

		p := r.schema.Fetch(doc)
		p.ID = id
		results = append(results, p)
	}

	if err := r.store.Batch(ctx, store.Products(tenant), ops); err != nil {
		return nil, err
	}
	return results, nil
}
