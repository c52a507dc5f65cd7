package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/sgimenez0/RoomBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testConfig() Config {
	return Config{
		PollInterval: 10 * time.Second,
		BatchSize:    10,
		BackoffBase:  5 * time.Minute,
		BackoffCap:   24 * time.Hour,
		MaxAttempts:  5,
	}
}

func TestBackoff_Linear(t *testing.T) {
	base := 5 * time.Minute

	assert.Equal(t, 5*time.Minute, Backoff(1, base, 24*time.Hour))
	assert.Equal(t, 15*time.Minute, Backoff(3, base, 24*time.Hour))
	assert.Equal(t, 25*time.Minute, Backoff(5, base, 24*time.Hour))
}

func TestBackoff_Capped(t *testing.T) {
	base := 5 * time.Minute

	assert.Equal(t, 24*time.Hour, Backoff(300, base, 24*time.Hour))
	assert.Equal(t, 24*time.Hour, Backoff(100000, base, 24*time.Hour))
}

func TestDispatcher_ProcessBatch_Empty(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{}, testConfig(), log)

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	n, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDispatcher_ProcessBatch_ClaimError(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{}, testConfig(), log)

	queue.EXPECT().Claim(mock.Anything, 10).Return(nil, errors.New("db down"))

	_, err := d.ProcessBatch(context.Background())

	require.Error(t, err)
}

func TestDispatcher_ProcessBatch_Sent(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	sender := mocks.NewMockSender(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{
		domain.ChannelEmail: sender,
	}, testConfig(), log)

	row := &domain.Notification{
		ID:          "n1",
		Channel:     domain.ChannelEmail,
		Recipient:   "a@ucu.edu.uy",
		Status:      domain.NotificationStatusPending,
		MaxAttempts: 5,
	}

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{row})
	sender.EXPECT().Send(mock.Anything, row).Return(nil)
	batch.EXPECT().MarkSent(mock.Anything, "n1").Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	n, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_ProcessBatch_EmptyRecipientIsTerminal(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{}, testConfig(), log)

	row := &domain.Notification{
		ID:          "n1",
		Channel:     domain.ChannelEmail,
		Recipient:   "",
		Status:      domain.NotificationStatusPending,
		MaxAttempts: 5,
	}

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{row})
	batch.EXPECT().MarkFailed(mock.Anything, "n1", 1, "no recipient", mock.Anything, true).Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	n, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_ProcessBatch_RetryScheduled(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	sender := mocks.NewMockSender(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{
		domain.ChannelEmail: sender,
	}, testConfig(), log)

	row := &domain.Notification{
		ID:          "n1",
		Channel:     domain.ChannelEmail,
		Recipient:   "a@ucu.edu.uy",
		Status:      domain.NotificationStatusPending,
		Attempts:    1,
		MaxAttempts: 5,
	}

	var nextAttempt *time.Time
	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{row})
	sender.EXPECT().Send(mock.Anything, row).Return(errors.New("smtp refused"))
	batch.EXPECT().MarkFailed(mock.Anything, "n1", 2, "smtp refused", mock.Anything, false).
		Run(func(ctx context.Context, id string, attempts int, lastError string, next *time.Time, terminal bool) {
			nextAttempt = next
		}).
		Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	before := time.Now().UTC()
	_, err := d.ProcessBatch(context.Background())
	require.NoError(t, err)

	// second failure: retry in 2 * base
	require.NotNil(t, nextAttempt)
	expected := before.Add(10 * time.Minute)
	assert.WithinDuration(t, expected, *nextAttempt, 5*time.Second)
}

func TestDispatcher_ProcessBatch_MaxAttemptsIsTerminal(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	sender := mocks.NewMockSender(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{
		domain.ChannelEmail: sender,
	}, testConfig(), log)

	row := &domain.Notification{
		ID:          "n1",
		Channel:     domain.ChannelEmail,
		Recipient:   "a@ucu.edu.uy",
		Status:      domain.NotificationStatusPending,
		Attempts:    4,
		MaxAttempts: 5,
	}

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{row})
	sender.EXPECT().Send(mock.Anything, row).Return(errors.New("smtp refused"))
	batch.EXPECT().MarkFailed(mock.Anything, "n1", 5, "smtp refused", mock.Anything, true).Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	_, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
}

func TestDispatcher_ProcessBatch_UnknownChannelGoesToRetry(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	log := newTestLogger(t)

	// no senders registered at all
	d := New(queue, map[domain.NotificationChannel]ports.Sender{}, testConfig(), log)

	row := &domain.Notification{
		ID:          "n1",
		Channel:     domain.ChannelTelegram,
		Recipient:   "123456",
		Status:      domain.NotificationStatusPending,
		MaxAttempts: 5,
	}

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{row})
	batch.EXPECT().MarkFailed(mock.Anything, "n1", 1, mock.Anything, mock.Anything, false).Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	_, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
}

func TestDispatcher_ProcessBatch_RowFailureDoesNotAbortBatch(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	batch := mocks.NewMockNotificationBatch(t)
	sender := mocks.NewMockSender(t)
	log := newTestLogger(t)

	d := New(queue, map[domain.NotificationChannel]ports.Sender{
		domain.ChannelEmail: sender,
	}, testConfig(), log)

	bad := &domain.Notification{
		ID: "n1", Channel: domain.ChannelEmail, Recipient: "a@ucu.edu.uy",
		Status: domain.NotificationStatusPending, MaxAttempts: 5,
	}
	good := &domain.Notification{
		ID: "n2", Channel: domain.ChannelEmail, Recipient: "b@ucu.edu.uy",
		Status: domain.NotificationStatusPending, MaxAttempts: 5,
	}

	queue.EXPECT().Claim(mock.Anything, 10).Return(batch, nil)
	batch.EXPECT().Rows().Return([]*domain.Notification{bad, good})
	sender.EXPECT().Send(mock.Anything, bad).Return(errors.New("mailbox full"))
	batch.EXPECT().MarkFailed(mock.Anything, "n1", 1, "mailbox full", mock.Anything, false).Return(nil)
	sender.EXPECT().Send(mock.Anything, good).Return(nil)
	batch.EXPECT().MarkSent(mock.Anything, "n2").Return(nil)
	batch.EXPECT().Close(mock.Anything).Return(nil)

	n, err := d.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDispatcher_StartStopsOnContextCancel(t *testing.T) {
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	cfg := testConfig()
	cfg.PollInterval = time.Hour // never ticks during the test

	d := New(queue, map[domain.NotificationChannel]ports.Sender{}, cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
