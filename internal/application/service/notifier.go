package service

import "context"

// Notifier is the best-effort outbound side channel. Callers publish from a
// goroutine and log failures; a Notify error must never fail the primary
// operation.
type Notifier interface {
	Notify(ctx context.Context, subject, message string) error
}
