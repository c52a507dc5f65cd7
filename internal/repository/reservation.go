package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/rules"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const noShowSanctionDays = 60

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create claims the (room, date, slot) triple and inserts the reservation with
// its roster in one transaction. The room row is locked FOR UPDATE first, so
// two concurrent callers serialize there: the second one observes the first
// one's insert and fails with ErrSlotTaken. Any rule failure rolls back the
// whole transaction; no partial reservation or roster row survives.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, cis []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	roomQuery := `SELECT capacity, type FROM rooms WHERE name = $1 AND building = $2 FOR UPDATE`
	var capacity int
	var roomType domain.RoomType
	if err = tx.QueryRowContext(ctx, roomQuery, res.RoomName, res.Building).Scan(&capacity, &roomType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	takenQuery := `SELECT EXISTS(
		SELECT 1 FROM reservations
		WHERE room_name = $1 AND building = $2 AND date = $3 AND slot_id = $4 AND status = $5)`
	var taken bool
	if err = tx.QueryRowContext(
		ctx, takenQuery, res.RoomName, res.Building,
		res.Date, res.SlotID, domain.ReservationStatusActive,
	).Scan(&taken); err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	insertQuery := `INSERT INTO reservations (id, room_name, building, date, slot_id, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, insertQuery, res.ID, res.RoomName, res.Building,
		res.Date, res.SlotID, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrTimeSlotNotFound
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	engine := rules.NewEngine(tx)
	room := &domain.Room{Name: res.RoomName, Building: res.Building, Capacity: capacity, Type: roomType}
	for _, ci := range cis {
		var exists bool
		if err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM participants WHERE ci = $1)`, ci,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check participant: %w", err)
		}
		if !exists {
			return fmt.Errorf("participant %s: %w", ci, domain.ErrParticipantNotFound)
		}
		if err = engine.CheckParticipant(ctx, ci, room, res.Date); err != nil {
			return err
		}
	}

	ok, err := engine.CapacityOK(ctx, res.ID, capacity, len(cis))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCapacityExceeded
	}

	rosterQuery := `INSERT INTO reservation_participants (reservation_id, ci) VALUES ($1, $2)`
	for _, ci := range cis {
		if _, err = tx.ExecContext(ctx, rosterQuery, res.ID, ci); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("participant %s: %w", ci, domain.ErrAlreadyOnReservation)
			}
			return fmt.Errorf("insert roster row: %w", err)
		}
	}

	return tx.Commit()
}

// Cancel transitions active -> cancelled. Any other starting status fails.
func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE reservations SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.ReservationStatusCancelled, domain.ReservationStatusActive,
	)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil || row.Scan(&status) != nil {
			return domain.ErrReservationNotFound
		}
		return domain.ErrReservationNotActive
	}

	return nil
}

// Delete hard-deletes a cancelled or no-show reservation with its roster.
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var deletable bool
	if err = tx.QueryRowContext(ctx,
		`SELECT status = ANY($2) FROM reservations WHERE id = $1 FOR UPDATE`,
		id, pq.Array(domain.DeletableStatuses),
	).Scan(&deletable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}

	if !deletable {
		return domain.ErrReservationNotDeletable
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM reservation_participants WHERE reservation_id = $1`, id); err != nil {
		return fmt.Errorf("delete roster: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	return tx.Commit()
}

// Modify moves a reservation to a new (room, date, slot) triple. The
// uniqueness check excludes the reservation itself; participant eligibility
// is deliberately not re-run here, this is the administrative override.
func (r *ReservationRepository) Modify(ctx context.Context, id string, input domain.ModifyReservationInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ReservationStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM reservations WHERE id = $1 FOR UPDATE`, id,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}

	var capacity int
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM rooms WHERE name = $1 AND building = $2 FOR UPDATE`,
		input.RoomName, input.Building,
	).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	takenQuery := `SELECT EXISTS(
		SELECT 1 FROM reservations
		WHERE room_name = $1 AND building = $2 AND date = $3 AND slot_id = $4
		  AND status = $5 AND id <> $6)`
	var taken bool
	if err = tx.QueryRowContext(
		ctx, takenQuery, input.RoomName, input.Building,
		input.Date, input.SlotID, domain.ReservationStatusActive, id,
	).Scan(&taken); err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	updateQuery := `UPDATE reservations
			 SET room_name = $2, building = $3, date = $4, slot_id = $5, updated_at = now()
			 WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, updateQuery, id, input.RoomName, input.Building, input.Date, input.SlotID,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrTimeSlotNotFound
		}
		return fmt.Errorf("update reservation: %w", err)
	}

	return tx.Commit()
}

// AddParticipant enforces room capacity under the reservation row lock.
func (r *ReservationRepository) AddParticipant(ctx context.Context, id, ci string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ReservationStatus
	var capacity int
	lockQuery := `SELECT r.status, s.capacity
		FROM reservations r
		JOIN rooms s ON s.name = r.room_name AND s.building = r.building
		WHERE r.id = $1 FOR UPDATE OF r`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&status, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}
	if status != domain.ReservationStatusActive {
		return domain.ErrReservationNotActive
	}

	var exists bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE ci = $1)`, ci,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check participant: %w", err)
	}
	if !exists {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrParticipantNotFound)
	}

	engine := rules.NewEngine(tx)
	ok, err := engine.CapacityOK(ctx, id, capacity, 1)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCapacityExceeded
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO reservation_participants (reservation_id, ci) VALUES ($1, $2)`, id, ci,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("participant %s: %w", ci, domain.ErrAlreadyOnReservation)
		}
		return fmt.Errorf("insert roster row: %w", err)
	}

	return tx.Commit()
}

// RemoveParticipant refuses to leave an active reservation empty.
func (r *ReservationRepository) RemoveParticipant(ctx context.Context, id, ci string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ReservationStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM reservations WHERE id = $1 FOR UPDATE`, id,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}

	var total int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservation_participants WHERE reservation_id = $1`, id,
	).Scan(&total); err != nil {
		return fmt.Errorf("count roster: %w", err)
	}
	if status == domain.ReservationStatusActive && total <= 1 {
		return domain.ErrLastParticipant
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM reservation_participants WHERE reservation_id = $1 AND ci = $2`, id, ci,
	)
	if err != nil {
		return fmt.Errorf("delete roster row: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrNotOnReservation)
	}

	return tx.Commit()
}

// SetAttendance writes one attendance flag and runs the no-show derivation:
// when every roster entry ends up explicitly marked absent, every participant
// gets a sanction of noShowSanctionDays starting today and the reservation
// becomes no_show, all inside the attendance transaction. The derived
// sanctions skip the overlap check on purpose; the cascade must not fail the
// attendance write.
func (r *ReservationRepository) SetAttendance(ctx context.Context, id, ci string, attended bool) ([]string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.ReservationStatus
	if err = tx.QueryRowContext(ctx,
		`SELECT status FROM reservations WHERE id = $1 FOR UPDATE`, id,
	).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE reservation_participants SET attended = $3 WHERE reservation_id = $1 AND ci = $2`,
		id, ci, attended,
	)
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("attendance rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("participant %s: %w", ci, domain.ErrNotOnReservation)
	}

	var total, present, unset int
	countQuery := `SELECT COUNT(*),
			COUNT(*) FILTER (WHERE attended),
			COUNT(*) FILTER (WHERE attended IS NULL)
		FROM reservation_participants WHERE reservation_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, id).Scan(&total, &present, &unset); err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	if status != domain.ReservationStatusActive || total == 0 || present > 0 || unset > 0 {
		return nil, tx.Commit()
	}

	// Nobody attended: sanction the whole roster and flip the status.
	rosterRows, err := tx.QueryContext(ctx,
		`SELECT ci FROM reservation_participants WHERE reservation_id = $1`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	var sanctioned []string
	for rosterRows.Next() {
		var rosterCI string
		if err = rosterRows.Scan(&rosterCI); err != nil {
			rosterRows.Close()
			return nil, fmt.Errorf("scan roster: %w", err)
		}
		sanctioned = append(sanctioned, rosterCI)
	}
	if err = rosterRows.Err(); err != nil {
		rosterRows.Close()
		return nil, err
	}
	rosterRows.Close()

	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, noShowSanctionDays)
	for _, rosterCI := range sanctioned {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO sanctions (id, ci, start_date, end_date, created_at) VALUES ($1, $2, $3, $4, now())`,
			uuid.New().String(), rosterCI, start, end,
		); err != nil {
			return nil, fmt.Errorf("insert sanction: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, domain.ReservationStatusNoShow,
	); err != nil {
		return nil, fmt.Errorf("mark no-show: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return sanctioned, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	query := `SELECT id, room_name, building, date, slot_id, status, created_at, updated_at
			  FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var d domain.ReservationDetails
	if err = row.Scan(
		&d.Reservation.ID, &d.Reservation.RoomName, &d.Reservation.Building,
		&d.Reservation.Date, &d.Reservation.SlotID, &d.Reservation.Status,
		&d.Reservation.CreatedAt, &d.Reservation.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	rosterQuery := `SELECT reservation_id, ci, attended
			 FROM reservation_participants WHERE reservation_id = $1 ORDER BY ci`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, rosterQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.RosterEntry
		if err = rows.Scan(&e.ReservationID, &e.CI, &e.Attended); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		d.Roster = append(d.Roster, e)
	}

	return &d, rows.Err()
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.ReservationSummary, error) {
	query := `SELECT r.id, r.room_name, r.building, r.date, r.slot_id, r.status,
					 r.created_at, r.updated_at, COUNT(rp.ci)
			  FROM reservations r
			  LEFT JOIN reservation_participants rp ON rp.reservation_id = r.id
			  GROUP BY r.id
			  ORDER BY r.date DESC, r.slot_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReservationSummary
	for rows.Next() {
		var s domain.ReservationSummary
		if err = rows.Scan(
			&s.ID, &s.RoomName, &s.Building, &s.Date, &s.SlotID,
			&s.Status, &s.CreatedAt, &s.UpdatedAt, &s.Participants,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ListByParticipant(ctx context.Context, ci string) ([]*domain.Reservation, error) {
	query := `SELECT r.id, r.room_name, r.building, r.date, r.slot_id, r.status, r.created_at, r.updated_at
			  FROM reservations r
			  JOIN reservation_participants rp ON rp.reservation_id = r.id
			  WHERE rp.ci = $1
			  ORDER BY r.date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ci)
	if err != nil {
		return nil, fmt.Errorf("list reservations by participant: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var v domain.Reservation
		if err = rows.Scan(
			&v.ID, &v.RoomName, &v.Building, &v.Date,
			&v.SlotID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ListTimeSlots(ctx context.Context) ([]*domain.TimeSlot, error) {
	query := `SELECT id, start_time, end_time FROM time_slots ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.TimeSlot
	for rows.Next() {
		var t domain.TimeSlot
		if err = rows.Scan(&t.ID, &t.StartTime, &t.EndTime); err != nil {
			return nil, fmt.Errorf("scan time slot: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
