package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

// TenantRepository is the sole writer of tenant documents. Tenants are keyed
// by slug: the slug IS the document id, which makes global uniqueness a
// property of the store rather than something to enforce separately.
type TenantRepository interface {
	List(ctx context.Context) ([]model.Tenant, error)
	Get(ctx context.Context, slug string) (model.Tenant, error)
	Create(ctx context.Context, email, password string, raw map[string]any) (model.Tenant, error)
	Update(ctx context.Context, slug string, raw map[string]any) (map[string]any, error)
	UpdateMercadoPago(ctx context.Context, slug string, raw map[string]any) error
	Remove(ctx context.Context, slug string) (string, error)
}

type tenantRepository struct {
	store  store.Store
	schema *schema.TenantSchema
}

func NewTenantRepository(st store.Store, sch *schema.TenantSchema) TenantRepository {
	return &tenantRepository{store: st, schema: sch}
}

func (r *tenantRepository) List(ctx context.Context) ([]model.Tenant, error) {
	docs, err := r.store.List(ctx, store.Tenants())
	if err != nil {
		return nil, err
	}
	tenants := make([]model.Tenant, 0, len(docs))
	for _, doc := range docs {
		t := r.schema.Fetch(doc.Data)
		t.ID = doc.ID
		tenants = append(tenants, t)
	}
	return tenants, nil
}

func (r *tenantRepository) Get(ctx context.Context, slug string) (model.Tenant, error) {
	doc, err := r.store.Get(ctx, store.Tenants(), slug)
	if err != nil {
		return model.Tenant{}, err
	}
	t := r.schema.Fetch(doc.Data)
	t.ID = doc.ID
	return t, nil
}

// Create provisions a new store. The account credentials live on the tenant
// document but outside the declared client fields, so fetch-casting can never
// leak them. createdAt is set here once and never overwritten by Update.
func (r *tenantRepository) Create(ctx context.Context, email, password string, raw map[string]any) (model.Tenant, error) {
	slug := r.schema.Fetch(raw).Slug
	if slug == "" {
		return model.Tenant{}, fmt.Errorf("slug requerido")
	}
	if _, err := r.store.Get(ctx, store.Tenants(), slug); err == nil {
		return model.Tenant{}, fmt.Errorf("la tienda %q ya existe", slug)
	} else if err != store.ErrNotFound {
		return model.Tenant{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Tenant{}, err
	}

	doc := r.schema.Create(raw)
	doc["slug"] = slug
	doc["email"] = email
	doc["passwordHash"] = string(hash)

	if err := r.store.Set(ctx, store.Tenants(), slug, doc); err != nil {
		return model.Tenant{}, err
	}
	t := r.schema.Fetch(doc)
	t.ID = slug
	return t, nil
}

func (r *tenantRepository) Update(ctx context.Context, slug string, raw map[string]any) (map[string]any, error) {
	patch := r.schema.Update(raw)
	if _, ok := patch["updatedAt"]; !ok {
		patch["updatedAt"] = r.store.Now()
	}
	if err := r.store.Update(ctx, store.Tenants(), slug, patch); err != nil {
		return nil, err
	}
	return patch, nil
}

// UpdateMercadoPago is the only path that mutates payment credentials; the
// generic Update strips them.
func (r *tenantRepository) UpdateMercadoPago(ctx context.Context, slug string, raw map[string]any) error {
	patch := r.schema.MercadoPago(raw)
	patch["updatedAt"] = r.store.Now()
	return r.store.Update(ctx, store.Tenants(), slug, patch)
}

func (r *tenantRepository) Remove(ctx context.Context, slug string) (string, error) {
	if err := r.store.Delete(ctx, store.Tenants(), slug); err != nil {
		return "", err
	}
	return slug, nil
}
