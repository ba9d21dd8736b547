package schema

import (
	"time"

	"github.com/xupateste/ctlg-tros/internal/model"
)

// ContactSchema casts raw contact documents. Contacts are keyed naturally by
// phone number; the reconciliation protocol in the repository layer owns the
// merge semantics, this schema only shapes records.
type ContactSchema struct {
	now func() int64
}

func NewContactSchema() *ContactSchema {
	return &ContactSchema{now: func() int64 { return time.Now().Unix() }}
}

// WithClock replaces the timestamp source.
func (s *ContactSchema) WithClock(now func() int64) *ContactSchema {
	s.now = now
	return s
}

var contactStringKeys = []string{
	"name", "phone", "description", "location", "sales", "pastInfo",
}

// Fetch casts a raw persisted contact into the full shape. Never returns an
// undefined field.
func (s *ContactSchema) Fetch(raw map[string]any) model.Contact {
	if raw == nil {
		raw = map[string]any{}
	}
	now := s.now()
	return model.Contact{
		ID:            stringOr(raw, "id", ""),
		Name:          stringOr(raw, "name", ""),
		Phone:         stringOr(raw, "phone", ""),
		Description:   stringOr(raw, "description", ""),
		Location:      stringOr(raw, "location", ""),
		Sales:         stringOr(raw, "sales", "phone"),
		PastInfo:      stringOr(raw, "pastInfo", ""),
		Visits:        intOr(raw, "visits", 0),
		VisitsPast:    intOr(raw, "visitsPast", 0),
		CreatedAt:     intOr(raw, "createdAt", now),
		CreatedAtPast: intOr(raw, "createdAtPast", now),
		UpdatedAt:     intOr(raw, "updatedAt", now),
	}
}

// Create casts the payload persisted for a new contact. First touch starts
// the visit counter at 1.
func (s *ContactSchema) Create(raw map[string]any) map[string]any {
	now := s.now()
	doc := map[string]any{
		"sales":         "phone",
		"pastInfo":      "",
		"visits":        int64(1),
		"visitsPast":    int64(0),
		"createdAt":     now,
		"createdAtPast": now,
		"updatedAt":     now,
	}
	for _, key := range contactStringKeys {
		putString(doc, raw, key)
	}
	putString(doc, raw, "id")
	putInt(doc, raw, "visits")
	putInt(doc, raw, "visitsPast")
	putInt(doc, raw, "createdAt")
	putInt(doc, raw, "createdAtPast")
	putInt(doc, raw, "updatedAt")
	return doc
}

// Update casts a partial contact payload into a sparse patch.
func (s *ContactSchema) Update(raw map[string]any) map[string]any {
	patch := map[string]any{}
	for _, key := range contactStringKeys {
		putString(patch, raw, key)
	}
	putInt(patch, raw, "visits")
	putInt(patch, raw, "visitsPast")
	putInt(patch, raw, "updatedAt")
	return patch
}
