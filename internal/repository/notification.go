package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications
			(id, channel, recipient, subject, body, status, attempts, max_attempts, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		n.ID, n.Channel, n.Recipient, n.Subject, n.Body,
		n.Status, n.Attempts, n.MaxAttempts, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	return nil
}

// Claim opens a transaction and locks up to limit due pending rows, oldest
// first. The returned batch keeps the transaction open so the locks hold
// until Close; a second dispatcher instance blocks on the same rows instead
// of double-sending them. Rows already sent or in terminal error are never
// selected again.
func (r *NotificationRepository) Claim(ctx context.Context, limit int) (ports.NotificationBatch, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	query := `SELECT id, channel, recipient, subject, body, status,
					 attempts, max_attempts, last_error, next_attempt_at, sent_at, created_at
			  FROM notifications
			  WHERE status = $1 AND (next_attempt_at IS NULL OR next_attempt_at <= now())
			  ORDER BY created_at ASC
			  LIMIT $2
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, domain.NotificationStatusPending, limit)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("select pending: %w", err)
	}
	defer rows.Close()

	batch := &notificationBatch{tx: tx}
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(
			&n.ID, &n.Channel, &n.Recipient, &n.Subject, &n.Body, &n.Status,
			&n.Attempts, &n.MaxAttempts, &n.LastError, &n.NextAttemptAt, &n.SentAt, &n.CreatedAt,
		); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		batch.rows = append(batch.rows, &n)
	}
	if err = rows.Err(); err != nil {
		tx.Rollback()
		return nil, err
	}

	return batch, nil
}

type notificationBatch struct {
	tx   *sql.Tx
	rows []*domain.Notification
}

func (b *notificationBatch) Rows() []*domain.Notification {
	return b.rows
}

func (b *notificationBatch) MarkSent(ctx context.Context, id string) error {
	query := `UPDATE notifications SET status = $2, sent_at = now() WHERE id = $1`
	if _, err := b.tx.ExecContext(ctx, query, id, domain.NotificationStatusSent); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	return nil
}

func (b *notificationBatch) MarkFailed(ctx context.Context, id string, attempts int, lastError string, nextAttempt *time.Time, terminal bool) error {
	if terminal {
		query := `UPDATE notifications
				  SET status = $2, attempts = $3, last_error = $4, next_attempt_at = NULL
				  WHERE id = $1`
		if _, err := b.tx.ExecContext(ctx, query, id, domain.NotificationStatusError, attempts, lastError); err != nil {
			return fmt.Errorf("mark error: %w", err)
		}
		return nil
	}

	query := `UPDATE notifications
			  SET attempts = $2, last_error = $3, next_attempt_at = $4
			  WHERE id = $1`
	if _, err := b.tx.ExecContext(ctx, query, id, attempts, lastError, nextAttempt); err != nil {
		return fmt.Errorf("schedule retry: %w", err)
	}
	return nil
}

func (b *notificationBatch) Close(ctx context.Context) error {
	return b.tx.Commit()
}
