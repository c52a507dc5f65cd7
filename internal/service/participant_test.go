package service

import (
	"context"
	"testing"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParticipantService_Create_Success(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), domain.CreateParticipantInput{
		CI:    "30000001",
		Name:  "Ana Perez",
		Email: "ana.perez@ucu.edu.uy",
		Memberships: []domain.Membership{
			{Program: "Computer Science", Role: domain.RoleStudent},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "30000001", p.CI)
	assert.Len(t, p.Memberships, 1)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestParticipantService_Create_MissingFields(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	cases := []struct {
		name  string
		input domain.CreateParticipantInput
	}{
		{"no ci", domain.CreateParticipantInput{Name: "Ana", Email: "a@ucu.edu.uy"}},
		{"no name", domain.CreateParticipantInput{CI: "30000001", Email: "a@ucu.edu.uy"}},
		{"no email", domain.CreateParticipantInput{CI: "30000001", Name: "Ana"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestParticipantService_Create_InvalidRole(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	_, err := svc.Create(context.Background(), domain.CreateParticipantInput{
		CI:    "30000001",
		Name:  "Ana Perez",
		Email: "ana.perez@ucu.edu.uy",
		Memberships: []domain.Membership{
			{Program: "Computer Science", Role: "janitor"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParticipantService_Create_Duplicate(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrParticipantExists)

	_, err := svc.Create(context.Background(), domain.CreateParticipantInput{
		CI:    "30000001",
		Name:  "Ana Perez",
		Email: "ana.perez@ucu.edu.uy",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantExists)
}

func TestParticipantService_GetByCI(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().GetByCI(mock.Anything, "30000001").
		Return(&domain.Participant{CI: "30000001"}, nil)

	p, err := svc.GetByCI(context.Background(), "30000001")

	require.NoError(t, err)
	assert.Equal(t, "30000001", p.CI)
}

func TestParticipantService_GetByCI_NotFound(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().GetByCI(mock.Anything, "missing").Return(nil, domain.ErrParticipantNotFound)

	_, err := svc.GetByCI(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestParticipantService_Update_Success(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	chatID := int64(4242)
	input := domain.UpdateParticipantInput{
		Name:           "Ana Perez Rossi",
		Email:          "ana.perez@ucu.edu.uy",
		TelegramChatID: &chatID,
	}
	repo.EXPECT().Update(mock.Anything, "30000001", input).Return(nil)

	err := svc.Update(context.Background(), "30000001", input)

	require.NoError(t, err)
}

func TestParticipantService_Update_MissingFields(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	cases := []struct {
		name  string
		ci    string
		input domain.UpdateParticipantInput
	}{
		{"no ci", "", domain.UpdateParticipantInput{Name: "Ana", Email: "a@ucu.edu.uy"}},
		{"no name", "30000001", domain.UpdateParticipantInput{Email: "a@ucu.edu.uy"}},
		{"no email", "30000001", domain.UpdateParticipantInput{Name: "Ana"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Update(context.Background(), tc.ci, tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestParticipantService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).
		Return(domain.ErrParticipantNotFound)

	err := svc.Update(context.Background(), "missing", domain.UpdateParticipantInput{
		Name:  "Ana",
		Email: "a@ucu.edu.uy",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestParticipantService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().Delete(mock.Anything, "30000001").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "30000001"))
}

func TestParticipantService_Delete_InUse(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	repo.EXPECT().Delete(mock.Anything, "30000001").Return(domain.ErrParticipantInUse)

	err := svc.Delete(context.Background(), "30000001")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantInUse)
}

func TestParticipantService_Delete_MissingCI(t *testing.T) {
	repo := mocks.NewMockParticipantRepo(t)
	svc := NewParticipantService(repo)

	err := svc.Delete(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
