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

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the participant and all memberships in one transaction.
// A duplicate (ci, program) membership is an integrity conflict, not a
// business rejection.
func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO participants (ci, name, email, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(
		ctx, query, p.CI, p.Name, p.Email, p.TelegramChatID, p.CreatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrParticipantExists
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	membershipQuery := `INSERT INTO participant_programs (ci, program, role) VALUES ($1, $2, $3)`
	for _, m := range p.Memberships {
		if _, err = tx.ExecContext(ctx, membershipQuery, p.CI, m.Program, m.Role); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return fmt.Errorf("membership %s: %w", m.Program, domain.ErrDuplicate)
				case "23503":
					return fmt.Errorf("program %s: %w", m.Program, domain.ErrValidation)
				}
			}
			return fmt.Errorf("insert membership: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ParticipantRepository) GetByCI(ctx context.Context, ci string) (*domain.Participant, error) {
	query := `SELECT ci, name, email, telegram_chat_id, created_at FROM participants WHERE ci = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ci)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	var p domain.Participant
	if err = row.Scan(&p.CI, &p.Name, &p.Email, &p.TelegramChatID, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	membershipQuery := `SELECT pp.program, pp.role, pr.tier
			 FROM participant_programs pp
			 JOIN programs pr ON pr.name = pp.program
			 WHERE pp.ci = $1`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, membershipQuery, ci)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Membership
		if err = rows.Scan(&m.Program, &m.Role, &m.Tier); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		p.Memberships = append(p.Memberships, m)
	}

	return &p, rows.Err()
}

func (r *ParticipantRepository) Update(ctx context.Context, ci string, input domain.UpdateParticipantInput) error {
	query := `UPDATE participants SET name = $2, email = $3, telegram_chat_id = $4 WHERE ci = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, ci, input.Name, input.Email, input.TelegramChatID,
	)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrParticipantNotFound
	}

	return nil
}

// Delete removes the participant and their memberships. Participants still
// referenced by reservations or sanctions are protected by foreign keys.
func (r *ParticipantRepository) Delete(ctx context.Context, ci string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM participant_programs WHERE ci = $1`, ci,
	); err != nil {
		return fmt.Errorf("delete memberships: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE ci = $1`, ci)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("participant %s: %w", ci, domain.ErrParticipantInUse)
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrParticipantNotFound
	}

	return tx.Commit()
}

func (r *ParticipantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	query := `SELECT ci, name, email, telegram_chat_id, created_at
			  FROM participants ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.CI, &p.Name, &p.Email, &p.TelegramChatID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
