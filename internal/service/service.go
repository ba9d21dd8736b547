// Package service holds the business operations between the HTTP handlers
// and the repository layer.
package service

import "context"

// Enqueuer is the async-job surface services depend on.
// *worker.Dispatcher implements it; tests substitute a fake.
type Enqueuer interface {
	EnqueueContactTouch(ctx context.Context, payload interface{}) error
	EnqueueEmail(ctx context.Context, payload interface{}) error
}
