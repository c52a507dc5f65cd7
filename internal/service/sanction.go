package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SanctionService struct {
	repo   ports.SanctionRepo
	logger logger.Logger
}

func NewSanctionService(repo ports.SanctionRepo, logger logger.Logger) *SanctionService {
	return &SanctionService{repo: repo, logger: logger}
}

// Create applies a manual sanction of the given duration starting today.
func (s *SanctionService) Create(ctx context.Context, ci string, days int) (*domain.Sanction, error) {
	if ci == "" {
		return nil, fmt.Errorf("%w: ci is required", domain.ErrValidation)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of days", domain.ErrValidation)
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	sanction := &domain.Sanction{
		ID:        uuid.New().String(),
		CI:        ci,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sanction); err != nil {
		return nil, fmt.Errorf("create sanction: %w", err)
	}

	s.logger.Info("sanction created",
		logger.String("sanction_id", sanction.ID),
		logger.String("ci", ci),
		logger.Int("days", days),
	)

	return sanction, nil
}

func (s *SanctionService) List(ctx context.Context) ([]*domain.Sanction, error) {
	return s.repo.List(ctx)
}

func (s *SanctionService) ListByParticipant(ctx context.Context, ci string) ([]*domain.Sanction, error) {
	return s.repo.ListByParticipant(ctx, ci)
}

func (s *SanctionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sanction: %w", err)
	}

	s.logger.Info("sanction deleted", logger.String("sanction_id", id))
	return nil
}
