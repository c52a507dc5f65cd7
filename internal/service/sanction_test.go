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

func TestSanctionService_Create_Success(t *testing.T) {
	repo := mocks.NewMockSanctionRepo(t)
	log := newTestLogger(t)

	svc := NewSanctionService(repo, log)

	var stored *domain.Sanction
	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.Sanction) {
			stored = s
		}).
		Return(nil)

	sanction, err := svc.Create(context.Background(), "30000001", 60)

	require.NoError(t, err)
	assert.NotEmpty(t, sanction.ID)
	assert.Equal(t, "30000001", sanction.CI)
	assert.Equal(t, sanction, stored)
	assert.Equal(t, 60*24*time.Hour, sanction.EndDate.Sub(sanction.StartDate))
}

func TestSanctionService_Create_InvalidInput(t *testing.T) {
	repo := mocks.NewMockSanctionRepo(t)
	log := newTestLogger(t)

	svc := NewSanctionService(repo, log)

	_, err := svc.Create(context.Background(), "", 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), "30000001", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSanctionService_Create_Overlap(t *testing.T) {
	repo := mocks.NewMockSanctionRepo(t)
	log := newTestLogger(t)

	svc := NewSanctionService(repo, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSanctionOverlap)

	_, err := svc.Create(context.Background(), "30000001", 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSanctionOverlap)
}

func TestSanctionService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockSanctionRepo(t)
	log := newTestLogger(t)

	svc := NewSanctionService(repo, log)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrSanctionNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSanctionNotFound)
}

func TestSanctionService_ListByParticipant(t *testing.T) {
	repo := mocks.NewMockSanctionRepo(t)
	log := newTestLogger(t)

	svc := NewSanctionService(repo, log)

	sanctions := []*domain.Sanction{{ID: "s1", CI: "30000001"}}
	repo.EXPECT().ListByParticipant(mock.Anything, "30000001").Return(sanctions, nil)

	result, err := svc.ListByParticipant(context.Background(), "30000001")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
