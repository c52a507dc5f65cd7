package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

// DeletableStatuses are the only statuses a reservation may be hard-deleted from.
var DeletableStatuses = []ReservationStatus{ReservationStatusCancelled, ReservationStatusNoShow}

type Reservation struct {
	ID        string            `json:"id"`
	RoomName  string            `json:"room_name"`
	Building  string            `json:"building"`
	Date      time.Time         `json:"date"`
	SlotID    int               `json:"slot_id"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RosterEntry is one participant on a reservation. Attended stays nil until
// attendance is explicitly recorded.
type RosterEntry struct {
	ReservationID string `json:"reservation_id"`
	CI            string `json:"ci"`
	Attended      *bool  `json:"attended"`
}

type ReservationDetails struct {
	Reservation Reservation   `json:"reservation"`
	Roster      []RosterEntry `json:"roster"`
}

type ReservationSummary struct {
	Reservation
	Participants int `json:"participants"`
}

type CreateReservationInput struct {
	RoomName       string
	Building       string
	Date           time.Time
	SlotID         int
	ParticipantCIs []string
}

type ModifyReservationInput struct {
	RoomName string
	Building string
	Date     time.Time
	SlotID   int
}
