package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
)

const defaultTopParticipants = 10

type ReportService struct {
	repo ports.ReportRepo
}

func NewReportService(repo ports.ReportRepo) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) RoomUsage(ctx context.Context, from, to time.Time) ([]*domain.RoomUsageRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", domain.ErrValidation)
	}
	return s.repo.RoomUsage(ctx, from, to)
}

func (s *ReportService) TopParticipants(ctx context.Context, limit int) ([]*domain.ParticipantUsageRow, error) {
	if limit <= 0 {
		limit = defaultTopParticipants
	}
	return s.repo.TopParticipants(ctx, limit)
}
