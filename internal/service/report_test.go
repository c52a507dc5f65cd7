package service

import (
	"context"
	"testing"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_RoomUsage_InvalidRange(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.RoomUsage(context.Background(), from, to)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportService_RoomUsage_Success(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	rows := []*domain.RoomUsageRow{
		{RoomName: "Lab A", Building: "Main", Reservations: 12, NoShows: 1},
	}
	repo.EXPECT().RoomUsage(mock.Anything, from, to).Return(rows, nil)

	result, err := svc.RoomUsage(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestReportService_TopParticipants_DefaultLimit(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	repo.EXPECT().TopParticipants(mock.Anything, defaultTopParticipants).Return(nil, nil)

	_, err := svc.TopParticipants(context.Background(), 0)

	require.NoError(t, err)
}

func TestReportService_TopParticipants_ExplicitLimit(t *testing.T) {
	repo := mocks.NewMockReportRepo(t)
	svc := NewReportService(repo)

	repo.EXPECT().TopParticipants(mock.Anything, 5).Return(nil, nil)

	_, err := svc.TopParticipants(context.Background(), 5)

	require.NoError(t, err)
}
