package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const (
	claimQuery       = `WHERE status = \$1 AND \(next_attempt_at IS NULL OR next_attempt_at <= now\(\)\)`
	markSentQuery    = `SET status = \$2, sent_at = now\(\)`
	markErrorQuery   = `SET status = \$2, attempts = \$3, last_error = \$4, next_attempt_at = NULL`
	scheduleRetrySQL = `SET attempts = \$2, last_error = \$3, next_attempt_at = \$4`
)

func newNotificationMock(t *testing.T) (*NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNotificationRepo(&dbpg.DB{Master: db}), mock
}

func notificationRows() *sqlmock.Rows {
	return sqlmock.NewRows(append(
		[]string{"id", "channel", "recipient", "subject", "body", "status"},
		"attempts", "max_attempts", "last_error", "next_attempt_at", "sent_at", "created_at",
	))
}

func TestNotificationRepo_Claim_SelectsOnlyDuePending(t *testing.T) {
	repo, mock := newNotificationMock(t)
	created := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	// the claim filters on pending status with a due next_attempt_at; sent
	// and terminal-error rows can never match
	mock.ExpectQuery(claimQuery).
		WithArgs(domain.NotificationStatusPending, 10).
		WillReturnRows(notificationRows().
			AddRow("n-1", "email", "a@uni.edu", "Reservation", "body", "pending",
				0, 5, nil, nil, nil, created).
			AddRow("n-2", "telegram", "4242", "Reservation", "body", "pending",
				2, 5, "timeout", created.Add(time.Minute), nil, created))

	batch, err := repo.Claim(context.Background(), 10)
	require.NoError(t, err)

	rows := batch.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "n-1", rows[0].ID)
	assert.Nil(t, rows[0].LastError)
	assert.Nil(t, rows[0].NextAttemptAt)
	require.NotNil(t, rows[1].LastError)
	assert.Equal(t, "timeout", *rows[1].LastError)
	assert.Equal(t, 2, rows[1].Attempts)

	mock.ExpectCommit()
	require.NoError(t, batch.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_Claim_EmptyBatch(t *testing.T) {
	repo, mock := newNotificationMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(claimQuery).
		WithArgs(domain.NotificationStatusPending, 10).
		WillReturnRows(notificationRows())
	mock.ExpectCommit()

	batch, err := repo.Claim(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, batch.Rows())
	require.NoError(t, batch.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_MarkSent_CommitsWithBatch(t *testing.T) {
	repo, mock := newNotificationMock(t)
	created := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(claimQuery).
		WillReturnRows(notificationRows().
			AddRow("n-1", "email", "a@uni.edu", "Reservation", "body", "pending",
				0, 5, nil, nil, nil, created))
	mock.ExpectExec(markSentQuery).
		WithArgs("n-1", domain.NotificationStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch, err := repo.Claim(context.Background(), 10)
	require.NoError(t, err)
	require.NoError(t, batch.MarkSent(context.Background(), "n-1"))
	require.NoError(t, batch.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_MarkFailed_TerminalClearsSchedule(t *testing.T) {
	repo, mock := newNotificationMock(t)
	created := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(claimQuery).
		WillReturnRows(notificationRows().
			AddRow("n-1", "email", "a@uni.edu", "Reservation", "body", "pending",
				4, 5, "timeout", nil, nil, created))
	mock.ExpectExec(markErrorQuery).
		WithArgs("n-1", domain.NotificationStatusError, 5, "smtp refused").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch, err := repo.Claim(context.Background(), 10)
	require.NoError(t, err)
	require.NoError(t, batch.MarkFailed(context.Background(), "n-1", 5, "smtp refused", nil, true))
	require.NoError(t, batch.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_MarkFailed_SchedulesRetry(t *testing.T) {
	repo, mock := newNotificationMock(t)
	created := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	next := created.Add(5 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(claimQuery).
		WillReturnRows(notificationRows().
			AddRow("n-1", "email", "a@uni.edu", "Reservation", "body", "pending",
				0, 5, nil, nil, nil, created))
	mock.ExpectExec(scheduleRetrySQL).
		WithArgs("n-1", 1, "timeout", next).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch, err := repo.Claim(context.Background(), 10)
	require.NoError(t, err)
	require.NoError(t, batch.MarkFailed(context.Background(), "n-1", 1, "timeout", &next, false))
	require.NoError(t, batch.Close(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_Enqueue(t *testing.T) {
	repo, mock := newNotificationMock(t)
	created := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	n := &domain.Notification{
		ID:          "n-1",
		Channel:     domain.ChannelEmail,
		Recipient:   "a@uni.edu",
		Subject:     "Reservation confirmed",
		Body:        "body",
		Status:      domain.NotificationStatusPending,
		MaxAttempts: 5,
		CreatedAt:   created,
	}

	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(n.ID, n.Channel, n.Recipient, n.Subject, n.Body,
			n.Status, n.Attempts, n.MaxAttempts, n.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Enqueue(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}
