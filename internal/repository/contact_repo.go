package repository

import (
	"context"

	"github.com/xupateste/ctlg-tros/internal/model"
	"github.com/xupateste/ctlg-tros/internal/schema"
	"github.com/xupateste/ctlg-tros/internal/store"
)

// legacyCreatedAt marks contact records imported before timestamps were
// tracked properly. A record still carrying it gets its createdAt reset to
// now on the next reconciliation touch instead of being preserved.
const legacyCreatedAt int64 = 1594090800000

// ContactRepository owns the per-tenant contact sub-collection. Contacts are
// durably identified by phone number; Reconcile is the merge-or-create entry
// point the storefront funnels every shopper touch through.
type ContactRepository interface {
	List(ctx context.Context, tenant string) ([]model.Contact, error)
	Create(ctx context.Context, tenant string, raw map[string]any) (model.Contact, error)
	Update(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error)
	Remove(ctx context.Context, tenant, id string) (string, error)
	Reconcile(ctx context.Context, tenant string, touch map[string]any) (model.Contact, error)
}

type contactRepository struct {
	store  store.Store
	schema *schema.ContactSchema
}

func NewContactRepository(st store.Store, sch *schema.ContactSchema) ContactRepository {
	return &contactRepository{store: st, schema: sch}
}

func (r *contactRepository) List(ctx context.Context, tenant string) ([]model.Contact, error) {
	docs, err := r.store.List(ctx, store.Contacts(tenant))
	if err != nil {
		return nil, err
	}
	contacts := make([]model.Contact, 0, len(docs))
	for _, doc := range docs {
		c := r.schema.Fetch(doc.Data)
		c.ID = doc.ID
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *contactRepository) Create(ctx context.Context, tenant string, raw map[string]any) (model.Contact, error) {
	id := r.store.NewID()
	raw["id"] = id
	if _, ok := raw["createdAt"]; !ok {
		raw["createdAt"] = r.store.Now()
	}
	doc := r.schema.Create(raw)
	if err := r.store.Set(ctx, store.Contacts(tenant), id, doc); err != nil {
		return model.Contact{}, err
	}
	c := r.schema.Fetch(doc)
	c.ID = id
	return c, nil
}

func (r *contactRepository) Update(ctx context.Context, tenant, id string, raw map[string]any) (map[string]any, error) {
	patch := r.schema.Update(raw)
	if _, ok := patch["updatedAt"]; !ok {
		patch["updatedAt"] = r.store.Now()
	}
	if err := r.store.Update(ctx, store.Contacts(tenant), id, patch); err != nil {
		return nil, err
	}
	return patch, nil
}

func (r *contactRepository) Remove(ctx context.Context, tenant, id string) (string, error) {
	if err := r.store.Delete(ctx, store.Contacts(tenant), id); err != nil {
		return "", err
	}
	return id, nil
}

// Reconcile folds an inbound touch into the tenant's contact book, keyed by
// exact phone equality.
//
// Existing matches (phone should be unique, but every match is merged if the
// data got duplicated): the touch's name/description/location win, the visit
// counter increments, visitsPast/createdAtPast/pastInfo carry forward with
// their documented defaults, and createdAt is preserved — unless it still
// holds the legacy sentinel, in which case it resets to now. The write
// re-checks existence and silently skips records that vanished between the
// query and the patch.
//
// No match: a fresh contact with visits=1 and all three timestamps set to
// now.
//
// The phone-equality query and the per-match patch are separate round trips
// with no isolation between them, so two concurrent first touches from the
// same phone can both create a record. Callers that need the result awaited
// call this directly; the storefront path enqueues it as a background job.
func (r *contactRepository) Reconcile(ctx context.Context, tenant string, touch map[string]any) (model.Contact, error) {
	incoming := r.schema.Fetch(touch)
	now := r.store.Now()

	docs, err := r.store.FindByField(ctx, store.Contacts(tenant), "phone", incoming.Phone)
	if err != nil {
		return model.Contact{}, err
	}

	if len(docs) == 0 {
		doc := r.schema.Create(touch)
		doc["visits"] = int64(1)
		doc["createdAt"] = now
		doc["createdAtPast"] = now
		doc["updatedAt"] = now
		id, err := r.store.Add(ctx, store.Contacts(tenant), doc)
		if err != nil {
			return model.Contact{}, err
		}
		c := r.schema.Fetch(doc)
		c.ID = id
		return c, nil
	}

	var merged model.Contact
	for _, doc := range docs {
		existing := r.schema.Fetch(doc.Data)

		createdAt := existing.CreatedAt
		if createdAt == legacyCreatedAt {
			createdAt = now
		}

		patch := map[string]any{
			"name":          incoming.Name,
			"description":   incoming.Description,
			"location":      incoming.Location,
			"pastInfo":      existing.PastInfo,
			"createdAt":     createdAt,
			"createdAtPast": existing.CreatedAtPast,
			"updatedAt":     now,
			"visitsPast":    existing.VisitsPast,
			"visits":        existing.Visits + 1,
		}
		if err := r.store.UpdateIfExists(ctx, store.Contacts(tenant), doc.ID, patch); err != nil {
			return model.Contact{}, err
		}

		merged = existing
		merged.ID = doc.ID
		merged.Name = incoming.Name
		merged.Description = incoming.Description
		merged.Location = incoming.Location
		merged.CreatedAt = createdAt
		merged.UpdatedAt = now
		merged.Visits = existing.Visits + 1
	}
	return merged, nil
}
