package worker

// contact_worker.go
// Processes contact touches from QueueContact: every storefront interaction
// that identifies a shopper by phone number lands here, and the touch is
// reconciled against the tenant's contact book off the request path.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/xupateste/ctlg-tros/internal/repository"
)

// ContactTouchPayload is the job envelope sent to QueueContact.
type ContactTouchPayload struct {
	Tenant string         `json:"tenant"`
	Touch  map[string]any `json:"touch"`
}

type ContactWorker struct {
	contacts repository.ContactRepository
}

func NewContactWorker(contacts repository.ContactRepository) *ContactWorker {
	return &ContactWorker{contacts: contacts}
}

// Process reconciles one touch. A malformed payload is dropped with a log
// line; a store failure is returned so the pool moves the job to the DLQ.
func (w *ContactWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ContactTouchPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("contact_worker: invalid payload")
		return nil
	}
	if payload.Tenant == "" || payload.Touch == nil {
		log.Warn().Msg("contact_worker: empty tenant or touch — skipping")
		return nil
	}

	contact, err := w.contacts.Reconcile(ctx, payload.Tenant, payload.Touch)
	if err != nil {
		return fmt.Errorf("reconcile contact for %s: %w", payload.Tenant, err)
	}
	log.Info().
		Str("tenant", payload.Tenant).
		Str("phone", contact.Phone).
		Int64("visits", contact.Visits).
		Msg("contact_worker: touch reconciled")
	return nil
}
