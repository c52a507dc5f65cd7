package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
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

func testDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func TestReservationService_Create_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	input := domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001", "30000002"},
	}

	var storedCIs []string
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, r *domain.Reservation, cis []string) {
			storedCIs = cis
		}).
		Return(nil)

	participantRepo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001", Email: "a@ucu.edu.uy"}, nil)
	participantRepo.EXPECT().GetByCI(mock.Anything, "30000002").
		Return(&domain.Participant{CI: "30000002", Email: "b@ucu.edu.uy"}, nil)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil).Times(2)

	reservation, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, domain.ReservationStatusActive, reservation.Status)
	assert.Equal(t, "Lab A", reservation.RoomName)
	assert.Equal(t, []string{"30000001", "30000002"}, storedCIs)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_DeduplicatesRoster(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	input := domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001", "30000001", "30000001"},
	}

	var storedCIs []string
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, r *domain.Reservation, cis []string) {
			storedCIs = cis
		}).
		Return(nil)
	participantRepo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001", Email: "a@ucu.edu.uy"}, nil)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"30000001"}, storedCIs)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_NoParticipants(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomName: "Lab A",
		Building: "Main",
		Date:     testDate(t, "2025-03-10"),
		SlotID:   1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_EmptyCI(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001", ""},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_SlotTaken(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_Create_SanctionActive(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrSanctionActive)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSanctionActive)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	details := &domain.ReservationDetails{
		Reservation: domain.Reservation{
			ID:       "r1",
			RoomName: "Lab A",
			Building: "Main",
			Date:     testDate(t, "2025-03-10"),
			Status:   domain.ReservationStatusActive,
		},
		Roster: []domain.RosterEntry{
			{ReservationID: "r1", CI: "30000001"},
		},
	}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(details, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1").Return(nil)
	participantRepo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001", Email: "a@ucu.edu.uy"}, nil)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)

	err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Cancel_NotActive(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	details := &domain.ReservationDetails{
		Reservation: domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled},
	}
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(details, nil)
	repo.EXPECT().Cancel(mock.Anything, "r1").Return(domain.ErrReservationNotActive)

	err := svc.Cancel(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotActive)
}

func TestReservationService_Delete_PassThrough(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().Delete(mock.Anything, "r1").Return(domain.ErrReservationNotDeletable)

	err := svc.Delete(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotDeletable)
}

func TestReservationService_Modify_PassThrough(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	input := domain.ModifyReservationInput{
		RoomName: "Lab B",
		Building: "Main",
		Date:     testDate(t, "2025-03-11"),
		SlotID:   2,
	}
	repo.EXPECT().Modify(mock.Anything, "r1", input).Return(nil)

	err := svc.Modify(context.Background(), "r1", input)

	require.NoError(t, err)
}

func TestReservationService_AddParticipant_EmptyCI(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	err := svc.AddParticipant(context.Background(), "r1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_AddParticipant_CapacityExceeded(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().AddParticipant(mock.Anything, "r1", "30000003").Return(domain.ErrCapacityExceeded)

	err := svc.AddParticipant(context.Background(), "r1", "30000003")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_RemoveParticipant_LastParticipant(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().RemoveParticipant(mock.Anything, "r1", "30000001").Return(domain.ErrLastParticipant)

	err := svc.RemoveParticipant(context.Background(), "r1", "30000001")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLastParticipant)
}

func TestReservationService_SetAttendance_NoCascade(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().SetAttendance(mock.Anything, "r1", "30000001", true).Return(nil, nil)

	sanctioned, err := svc.SetAttendance(context.Background(), "r1", "30000001", true)

	require.NoError(t, err)
	assert.Empty(t, sanctioned)
}

func TestReservationService_SetAttendance_NoShowCascade(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().SetAttendance(mock.Anything, "r1", "30000001", false).
		Return([]string{"30000001"}, nil)
	participantRepo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001", Email: "a@ucu.edu.uy"}, nil)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).Return(nil)

	sanctioned, err := svc.SetAttendance(context.Background(), "r1", "30000001", false)

	require.NoError(t, err)
	assert.Equal(t, []string{"30000001"}, sanctioned)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_SetAttendance_RepoError(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	repo.EXPECT().SetAttendance(mock.Anything, "r1", "30000001", false).
		Return(nil, errors.New("db error"))

	_, err := svc.SetAttendance(context.Background(), "r1", "30000001", false)

	require.Error(t, err)
}

func TestReservationService_NotifyIncludesTelegram(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	participantRepo := mocks.NewMockParticipantRepo(t)
	queue := mocks.NewMockNotificationQueue(t)
	log := newTestLogger(t)

	svc := NewReservationService(repo, participantRepo, queue, log)

	chatID := int64(123456)
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	participantRepo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001", Email: "a@ucu.edu.uy", TelegramChatID: &chatID}, nil)

	channels := make(chan domain.NotificationChannel, 2)
	queue.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, n *domain.Notification) {
			channels <- n.Channel
		}).
		Return(nil).Times(2)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		RoomName:       "Lab A",
		Building:       "Main",
		Date:           testDate(t, "2025-03-10"),
		SlotID:         1,
		ParticipantCIs: []string{"30000001"},
	})
	require.NoError(t, err)

	seen := map[domain.NotificationChannel]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ch := <-channels:
			seen[ch] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notifications")
		}
	}
	assert.True(t, seen[domain.ChannelEmail])
	assert.True(t, seen[domain.ChannelTelegram])
}
