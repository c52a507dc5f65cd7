package ports

import (
	"context"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

// NotificationQueue is the durable outbox. Producers only enqueue; the
// dispatcher is the sole writer of status transitions afterwards.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n *domain.Notification) error
	// Claim opens a transaction, locks up to limit due pending rows and
	// returns them as a batch. The locks are held until Close so a second
	// dispatcher instance cannot pick up the same rows.
	Claim(ctx context.Context, limit int) (NotificationBatch, error)
}

type NotificationBatch interface {
	Rows() []*domain.Notification
	MarkSent(ctx context.Context, id string) error
	// MarkFailed records a failed attempt. A terminal failure moves the row
	// to the error status; otherwise nextAttempt schedules the retry.
	MarkFailed(ctx context.Context, id string, attempts int, lastError string, nextAttempt *time.Time, terminal bool) error
	// Close commits the batch and releases the row locks.
	Close(ctx context.Context) error
}
