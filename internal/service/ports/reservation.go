package ports

import (
	"context"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

type ReservationRepo interface {
	// Create inserts the reservation and its roster atomically, running the
	// full eligibility chain per participant under a room-row lock.
	Create(ctx context.Context, r *domain.Reservation, cis []string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Modify(ctx context.Context, id string, input domain.ModifyReservationInput) error
	AddParticipant(ctx context.Context, id, ci string) error
	RemoveParticipant(ctx context.Context, id, ci string) error
	// SetAttendance records one participant's attendance and, when the whole
	// roster is explicitly marked absent, applies no-show sanctions and flips
	// the reservation status in the same transaction. Returns the CIs
	// sanctioned by the cascade, if any.
	SetAttendance(ctx context.Context, id, ci string, attended bool) ([]string, error)
	GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error)
	List(ctx context.Context) ([]*domain.ReservationSummary, error)
	ListByParticipant(ctx context.Context, ci string) ([]*domain.Reservation, error)
	ListTimeSlots(ctx context.Context) ([]*domain.TimeSlot, error)
}

type SanctionRepo interface {
	// Create rejects intervals overlapping an existing sanction for the
	// same participant.
	Create(ctx context.Context, s *domain.Sanction) error
	List(ctx context.Context) ([]*domain.Sanction, error)
	ListByParticipant(ctx context.Context, ci string) ([]*domain.Sanction, error)
	Delete(ctx context.Context, id string) error
}

type ReportRepo interface {
	RoomUsage(ctx context.Context, from, to time.Time) ([]*domain.RoomUsageRow, error)
	TopParticipants(ctx context.Context, limit int) ([]*domain.ParticipantUsageRow, error)
}
