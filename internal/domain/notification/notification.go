package notification

import (
	"context"
	"time"
)

type Notification struct {
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// Feed is the capped store of recently delivered notifications the worker
// fills and the admin surface reads.
type Feed interface {
	Push(ctx context.Context, n Notification) error
	Recent(ctx context.Context, limit int) ([]Notification, error)
}
