// Package store abstracts the hierarchical document database the platform
// persists to. Collections are addressed Firestore-style:
//
//	tenants
//	tenants/{tenantId}/products
//	tenants/{tenantId}/contacts
//	tenants/{tenantId}/orders
//
// Two implementations exist: Mongo (production) and an in-memory store used
// by tests and for local development without a database.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get/Update when the addressed document does not
// exist. Persistence failures of any other kind propagate unchanged.
var ErrNotFound = errors.New("documento no encontrado")

// Doc is a raw document together with its store-assigned id.
type Doc struct {
	ID   string
	Data map[string]any
}

// BatchOp is one entry of an atomic multi-document batch.
type BatchOp struct {
	Kind BatchKind
	ID   string
	Data map[string]any
}

type BatchKind int

const (
	// BatchCreate sets a brand-new document at a pre-allocated id.
	BatchCreate BatchKind = iota
	// BatchUpdate patches an existing document; the batch fails as a whole
	// when the target does not exist.
	BatchUpdate
)

// Store is the full capability set the repository façade relies on.
// No retries happen at this layer; a failed call surfaces to the caller.
type Store interface {
	// Now returns the current server timestamp in whole seconds.
	Now() int64

	// NewID allocates a document id without writing anything, so derived
	// fields (slugs) can embed the id before the single create write.
	NewID() string

	List(ctx context.Context, path string) ([]Doc, error)
	Get(ctx context.Context, path, id string) (Doc, error)
	FindByField(ctx context.Context, path, field string, value any) ([]Doc, error)

	// Add writes a document under a generated id and returns the id.
	Add(ctx context.Context, path string, data map[string]any) (string, error)
	// Set writes the full document at a known id, creating it if absent.
	Set(ctx context.Context, path, id string, data map[string]any) error
	// Update patches an existing document. ErrNotFound when absent.
	Update(ctx context.Context, path, id string, patch map[string]any) error
	// UpdateIfExists re-checks existence and patches inside a transaction,
	// silently doing nothing when the document vanished in between.
	UpdateIfExists(ctx context.Context, path, id string, patch map[string]any) error
	Delete(ctx context.Context, path, id string) error

	// Batch commits a mix of creates and updates atomically: either every
	// op applies or none do.
	Batch(ctx context.Context, path string, ops []BatchOp) error
}

// Collection path helpers. Tenant documents are keyed by slug, so tenantID
// below is the tenant's slug.

func Tenants() string                 { return "tenants" }
func Products(tenantID string) string { return "tenants/" + tenantID + "/products" }
func Contacts(tenantID string) string { return "tenants/" + tenantID + "/contacts" }
func Orders(tenantID string) string   { return "tenants/" + tenantID + "/orders" }
