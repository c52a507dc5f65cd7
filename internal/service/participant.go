package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
)

type ParticipantService struct {
	repo ports.ParticipantRepo
}

func NewParticipantService(repo ports.ParticipantRepo) *ParticipantService {
	return &ParticipantService{repo: repo}
}

func (s *ParticipantService) Create(ctx context.Context, input domain.CreateParticipantInput) (*domain.Participant, error) {
	if input.CI == "" {
		return nil, fmt.Errorf("%w: ci is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	for _, m := range input.Memberships {
		if m.Role != domain.RoleStudent && m.Role != domain.RoleFaculty {
			return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, m.Role)
		}
	}

	p := &domain.Participant{
		CI:             input.CI,
		Name:           input.Name,
		Email:          input.Email,
		TelegramChatID: input.TelegramChatID,
		Memberships:    input.Memberships,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	return p, nil
}

func (s *ParticipantService) Update(ctx context.Context, ci string, input domain.UpdateParticipantInput) error {
	if ci == "" {
		return fmt.Errorf("%w: ci is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	if err := s.repo.Update(ctx, ci, input); err != nil {
		return fmt.Errorf("update participant: %w", err)
	}

	return nil
}

func (s *ParticipantService) Delete(ctx context.Context, ci string) error {
	if ci == "" {
		return fmt.Errorf("%w: ci is required", domain.ErrValidation)
	}
	return s.repo.Delete(ctx, ci)
}

func (s *ParticipantService) GetByCI(ctx context.Context, ci string) (*domain.Participant, error) {
	return s.repo.GetByCI(ctx, ci)
}

func (s *ParticipantService) List(ctx context.Context) ([]*domain.Participant, error) {
	return s.repo.List(ctx)
}
