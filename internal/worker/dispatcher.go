package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Backoff returns the delay before the next retry after a failed attempt:
// attempts times base, capped.
func Backoff(attempts int, base, limit time.Duration) time.Duration {
	d := time.Duration(attempts) * base
	if d > limit {
		return limit
	}
	return d
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int
	BackoffBase  time.Duration
	BackoffCap   time.Duration
	// MaxAttempts is the fallback for rows enqueued without a per-row limit.
	MaxAttempts int
}

// Dispatcher drains the notification queue: it claims batches of due pending
// rows under row locks, routes each row to its channel sender and applies the
// retry policy. One row's failure never aborts the rest of the batch.
type Dispatcher struct {
	queue   ports.NotificationQueue
	senders map[domain.NotificationChannel]ports.Sender
	cfg     Config
	log     logger.Logger
}

func New(
	queue ports.NotificationQueue,
	senders map[domain.NotificationChannel]ports.Sender,
	cfg Config,
	log logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		queue:   queue,
		senders: senders,
		cfg:     cfg,
		log:     log,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.log.Info("dispatcher started",
		logger.Duration("poll_interval", d.cfg.PollInterval),
		logger.Int("batch_size", d.cfg.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			d.log.Info("dispatcher stopped")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

// tick drains the queue until a claim comes back empty, so a backlog does
// not wait one poll interval per batch.
func (d *Dispatcher) tick(ctx context.Context) {
	for {
		n, err := d.ProcessBatch(ctx)
		if err != nil {
			d.log.Error("batch failed", logger.String("error", err.Error()))
			return
		}
		if n == 0 {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// ProcessBatch claims and processes one batch; returns how many rows it saw.
func (d *Dispatcher) ProcessBatch(ctx context.Context) (int, error) {
	batch, err := d.queue.Claim(ctx, d.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claim batch: %w", err)
	}

	rows := batch.Rows()
	for _, n := range rows {
		d.processRow(ctx, batch, n)
	}

	if err = batch.Close(ctx); err != nil {
		return len(rows), fmt.Errorf("commit batch: %w", err)
	}
	return len(rows), nil
}

func (d *Dispatcher) processRow(ctx context.Context, batch ports.NotificationBatch, n *domain.Notification) {
	defer func() {
		if rec := recover(); rec != nil {
			// a poisoned row must not take down the loop
			errText := fmt.Sprintf("panic: %v", rec)
			if err := batch.MarkFailed(ctx, n.ID, n.Attempts+1, errText, nil, true); err != nil {
				d.log.Error("failed to record panic",
					logger.String("notification_id", n.ID),
					logger.String("error", err.Error()),
				)
			}
			d.log.Error("panic while processing notification",
				logger.String("notification_id", n.ID),
				logger.String("panic", errText),
			)
		}
	}()

	if n.Recipient == "" {
		// not retryable, nothing to deliver to
		if err := batch.MarkFailed(ctx, n.ID, n.Attempts+1, "no recipient", nil, true); err != nil {
			d.log.Error("failed to mark notification",
				logger.String("notification_id", n.ID),
				logger.String("error", err.Error()),
			)
		}
		d.log.Warn("notification has no recipient",
			logger.String("notification_id", n.ID),
		)
		return
	}

	sendErr := d.send(ctx, n)
	if sendErr == nil {
		if err := batch.MarkSent(ctx, n.ID); err != nil {
			d.log.Error("failed to mark notification sent",
				logger.String("notification_id", n.ID),
				logger.String("error", err.Error()),
			)
			return
		}
		d.log.Info("notification sent",
			logger.String("notification_id", n.ID),
			logger.String("channel", string(n.Channel)),
			logger.String("recipient", n.Recipient),
		)
		return
	}

	maxAttempts := n.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = d.cfg.MaxAttempts
	}

	attempts := n.Attempts + 1
	if attempts >= maxAttempts {
		if err := batch.MarkFailed(ctx, n.ID, attempts, sendErr.Error(), nil, true); err != nil {
			d.log.Error("failed to mark notification",
				logger.String("notification_id", n.ID),
				logger.String("error", err.Error()),
			)
			return
		}
		d.log.Error("notification reached max attempts",
			logger.String("notification_id", n.ID),
			logger.Int("attempts", attempts),
			logger.String("error", sendErr.Error()),
		)
		return
	}

	next := time.Now().UTC().Add(Backoff(attempts, d.cfg.BackoffBase, d.cfg.BackoffCap))
	if err := batch.MarkFailed(ctx, n.ID, attempts, sendErr.Error(), &next, false); err != nil {
		d.log.Error("failed to schedule retry",
			logger.String("notification_id", n.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	d.log.Warn("notification send failed, retry scheduled",
		logger.String("notification_id", n.ID),
		logger.Int("attempts", attempts),
		logger.String("error", sendErr.Error()),
	)
}

func (d *Dispatcher) send(ctx context.Context, n *domain.Notification) error {
	s, ok := d.senders[n.Channel]
	if !ok {
		return fmt.Errorf("no sender for channel %q", n.Channel)
	}
	return s.Send(ctx, n)
}
