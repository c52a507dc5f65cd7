package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReportRepo(db *dbpg.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReportRepository) RoomUsage(ctx context.Context, from, to time.Time) ([]*domain.RoomUsageRow, error) {
	query := `SELECT s.name, s.building,
					 COUNT(r.id) FILTER (WHERE r.id IS NOT NULL),
					 COUNT(r.id) FILTER (WHERE r.status = $3)
			  FROM rooms s
			  LEFT JOIN reservations r
				ON r.room_name = s.name AND r.building = s.building
			   AND r.date BETWEEN $1 AND $2
			  GROUP BY s.name, s.building
			  ORDER BY 3 DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, domain.ReservationStatusNoShow)
	if err != nil {
		return nil, fmt.Errorf("room usage report: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoomUsageRow
	for rows.Next() {
		var row domain.RoomUsageRow
		if err = rows.Scan(&row.RoomName, &row.Building, &row.Reservations, &row.NoShows); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		res = append(res, &row)
	}

	return res, rows.Err()
}

func (r *ReportRepository) TopParticipants(ctx context.Context, limit int) ([]*domain.ParticipantUsageRow, error) {
	query := `SELECT p.ci, p.name, COUNT(rp.reservation_id)
			  FROM participants p
			  JOIN reservation_participants rp ON rp.ci = p.ci
			  GROUP BY p.ci, p.name
			  ORDER BY 3 DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top participants report: %w", err)
	}
	defer rows.Close()

	var res []*domain.ParticipantUsageRow
	for rows.Next() {
		var row domain.ParticipantUsageRow
		if err = rows.Scan(&row.CI, &row.Name, &row.Reservations); err != nil {
			return nil, fmt.Errorf("scan participant row: %w", err)
		}
		res = append(res, &row)
	}

	return res, rows.Err()
}
