// Package rules holds the eligibility checks applied to every reservation
// attempt. The self-service and admin paths both go through Engine so the
// rule set exists exactly once; administrative overrides skip it explicitly.
package rules

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

const (
	// MaxDailyReservations is the cap of active reservations a
	// non-privileged participant may hold on a single date.
	MaxDailyReservations = 2
	// MaxWeeklyReservations is the cap within a Monday-start week.
	MaxWeeklyReservations = 3
)

// IsPrivileged reports whether any membership grants unlimited quotas:
// a faculty role or a graduate-tier program.
func IsPrivileged(memberships []domain.Membership) bool {
	for _, m := range memberships {
		if m.Role == domain.RoleFaculty || m.Tier == domain.TierGraduate {
			return true
		}
	}
	return false
}

// RoomAllows reports whether a participant with the given privilege may use
// a room of the given type. Graduate and faculty rooms admit the same
// privileged set.
func RoomAllows(t domain.RoomType, privileged bool) bool {
	switch t {
	case domain.RoomTypeOpen:
		return true
	case domain.RoomTypeGraduate, domain.RoomTypeFaculty:
		return privileged
	default:
		return false
	}
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func WeekBounds(d time.Time) (time.Time, time.Time) {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// Querier is the query surface the engine needs. Satisfied by *sql.Tx and
// *sql.DB; the engine is meant to run inside the caller's open transaction
// so rules see the same snapshot the mutation will commit against.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Engine struct {
	q Querier
}

func NewEngine(q Querier) *Engine {
	return &Engine{q: q}
}

// HasActiveSanction reports whether a sanction interval contains day.
func (e *Engine) HasActiveSanction(ctx context.Context, ci string, day time.Time) (bool, error) {
	const query = `SELECT EXISTS(
		SELECT 1 FROM sanctions
		WHERE ci = $1 AND $2::date BETWEEN start_date AND end_date)`

	var active bool
	if err := e.q.QueryRowContext(ctx, query, ci, day).Scan(&active); err != nil {
		return false, fmt.Errorf("check sanction: %w", err)
	}
	return active, nil
}

// Memberships loads the academic program memberships of a participant.
func (e *Engine) Memberships(ctx context.Context, ci string) ([]domain.Membership, error) {
	const query = `SELECT pp.program, pp.role, p.tier
		FROM participant_programs pp
		JOIN programs p ON p.name = pp.program
		WHERE pp.ci = $1`

	rows, err := e.q.QueryContext(ctx, query, ci)
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	defer rows.Close()

	var res []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err = rows.Scan(&m.Program, &m.Role, &m.Tier); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// CountActiveOnDate counts active reservations the participant is on for date.
func (e *Engine) CountActiveOnDate(ctx context.Context, ci string, date time.Time) (int, error) {
	const query = `SELECT COUNT(*)
		FROM reservation_participants rp
		JOIN reservations r ON r.id = rp.reservation_id
		WHERE rp.ci = $1 AND r.date = $2 AND r.status = $3`

	var n int
	err := e.q.QueryRowContext(ctx, query, ci, date, domain.ReservationStatusActive).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count daily reservations: %w", err)
	}
	return n, nil
}

// CountActiveInWeek counts distinct active reservations within the
// Monday-start week containing date.
func (e *Engine) CountActiveInWeek(ctx context.Context, ci string, date time.Time) (int, error) {
	const query = `SELECT COUNT(DISTINCT r.id)
		FROM reservation_participants rp
		JOIN reservations r ON r.id = rp.reservation_id
		WHERE rp.ci = $1 AND r.date BETWEEN $2 AND $3 AND r.status = $4`

	monday, sunday := WeekBounds(date)
	var n int
	err := e.q.QueryRowContext(ctx, query, ci, monday, sunday, domain.ReservationStatusActive).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count weekly reservations: %w", err)
	}
	return n, nil
}

// CapacityOK reports whether the reservation can take incoming more
// participants without exceeding capacity.
func (e *Engine) CapacityOK(ctx context.Context, reservationID string, capacity, incoming int) (bool, error) {
	const query = `SELECT COUNT(*) FROM reservation_participants WHERE reservation_id = $1`

	var current int
	if err := e.q.QueryRowContext(ctx, query, reservationID).Scan(&current); err != nil {
		return false, fmt.Errorf("count roster: %w", err)
	}
	return current+incoming <= capacity, nil
}

// CheckParticipant runs the ordered admission chain for one participant:
// sanction, room compatibility, then daily and weekly quotas. Quota checks
// are skipped for privileged participants. The first failing rule is
// returned wrapped with the participant's ci; all checks fail closed.
func (e *Engine) CheckParticipant(ctx context.Context, ci string, room *domain.Room, date time.Time) error {
	sanctioned, err := e.HasActiveSanction(ctx, ci, time.Now().UTC())
	if err != nil {
		return err
	}
	if sanctioned {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrSanctionActive)
	}

	memberships, err := e.Memberships(ctx, ci)
	if err != nil {
		return err
	}
	privileged := IsPrivileged(memberships)

	if !RoomAllows(room.Type, privileged) {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrRoomNotAllowed)
	}

	if privileged {
		return nil
	}

	daily, err := e.CountActiveOnDate(ctx, ci, date)
	if err != nil {
		return err
	}
	if daily >= MaxDailyReservations {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrDailyLimit)
	}

	weekly, err := e.CountActiveInWeek(ctx, ci, date)
	if err != nil {
		return err
	}
	if weekly >= MaxWeeklyReservations {
		return fmt.Errorf("participant %s: %w", ci, domain.ErrWeeklyLimit)
	}

	return nil
}
