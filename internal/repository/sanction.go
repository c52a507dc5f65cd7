package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SanctionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSanctionRepo(db *dbpg.DB) *SanctionRepository {
	return &SanctionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create is the manual sanction path: unlike the no-show cascade it rejects
// intervals that overlap an existing sanction for the participant. The
// overlap check and insert run in one transaction under the participant row
// lock so two admins cannot race in overlapping intervals.
func (r *SanctionRepository) Create(ctx context.Context, s *domain.Sanction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var lockedCI string
	if err = tx.QueryRowContext(ctx,
		`SELECT ci FROM participants WHERE ci = $1 FOR UPDATE`, s.CI,
	).Scan(&lockedCI); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrParticipantNotFound
		}
		return fmt.Errorf("lock participant: %w", err)
	}

	var overlaps bool
	overlapQuery := `SELECT EXISTS(
		SELECT 1 FROM sanctions
		WHERE ci = $1 AND start_date <= $3 AND end_date >= $2)`
	if err = tx.QueryRowContext(ctx, overlapQuery, s.CI, s.StartDate, s.EndDate).Scan(&overlaps); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return domain.ErrSanctionOverlap
	}

	query := `INSERT INTO sanctions (id, ci, start_date, end_date, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, s.ID, s.CI, s.StartDate, s.EndDate, s.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrParticipantNotFound
		}
		return fmt.Errorf("insert sanction: %w", err)
	}

	return tx.Commit()
}

func (r *SanctionRepository) List(ctx context.Context) ([]*domain.Sanction, error) {
	query := `SELECT id, ci, start_date, end_date, created_at
			  FROM sanctions ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sanctions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sanction
	for rows.Next() {
		var s domain.Sanction
		if err = rows.Scan(&s.ID, &s.CI, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sanction: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SanctionRepository) ListByParticipant(ctx context.Context, ci string) ([]*domain.Sanction, error) {
	query := `SELECT id, ci, start_date, end_date, created_at
			  FROM sanctions WHERE ci = $1 ORDER BY start_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ci)
	if err != nil {
		return nil, fmt.Errorf("list sanctions by participant: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sanction
	for rows.Next() {
		var s domain.Sanction
		if err = rows.Scan(&s.ID, &s.CI, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sanction: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SanctionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sanctions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sanction: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSanctionNotFound
	}

	return nil
}
