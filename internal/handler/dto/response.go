package dto

import (
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID        string `json:"id"`
	RoomName  string `json:"room_name"`
	Building  string `json:"building"`
	Date      string `json:"date"`
	SlotID    int    `json:"slot_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ReservationSummaryResponse struct {
	ReservationResponse
	Participants int `json:"participants"`
}

type RosterEntryResponse struct {
	CI       string `json:"ci"`
	Attended *bool  `json:"attended"`
}

type ReservationDetailsResponse struct {
	Reservation ReservationResponse   `json:"reservation"`
	Roster      []RosterEntryResponse `json:"roster"`
}

type AttendanceResponse struct {
	Status     string   `json:"status"`
	NoShow     bool     `json:"no_show"`
	Sanctioned []string `json:"sanctioned,omitempty"`
}

type ParticipantResponse struct {
	CI             string               `json:"ci"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	TelegramChatID *int64               `json:"telegram_chat_id,omitempty"`
	Memberships    []MembershipResponse `json:"memberships"`
	CreatedAt      string               `json:"created_at"`
}

type MembershipResponse struct {
	Program string `json:"program"`
	Role    string `json:"role"`
	Tier    string `json:"tier"`
}

type RoomResponse struct {
	Name     string `json:"name"`
	Building string `json:"building"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type BuildingResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type TimeSlotResponse struct {
	ID        int    `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SanctionResponse struct {
	ID        string `json:"id"`
	CI        string `json:"ci"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Active    bool   `json:"active"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		RoomName:  r.RoomName,
		Building:  r.Building,
		Date:      r.Date.Format(dateLayout),
		SlotID:    r.SlotID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationSummaryResponse(s *domain.ReservationSummary) ReservationSummaryResponse {
	return ReservationSummaryResponse{
		ReservationResponse: ToReservationResponse(&s.Reservation),
		Participants:        s.Participants,
	}
}

func ToReservationDetailsResponse(d *domain.ReservationDetails) ReservationDetailsResponse {
	roster := make([]RosterEntryResponse, 0, len(d.Roster))
	for _, e := range d.Roster {
		roster = append(roster, RosterEntryResponse{CI: e.CI, Attended: e.Attended})
	}

	return ReservationDetailsResponse{
		Reservation: ToReservationResponse(&d.Reservation),
		Roster:      roster,
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	memberships := make([]MembershipResponse, 0, len(p.Memberships))
	for _, m := range p.Memberships {
		memberships = append(memberships, MembershipResponse{
			Program: m.Program,
			Role:    string(m.Role),
			Tier:    string(m.Tier),
		})
	}

	return ParticipantResponse{
		CI:             p.CI,
		Name:           p.Name,
		Email:          p.Email,
		TelegramChatID: p.TelegramChatID,
		Memberships:    memberships,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		Name:     r.Name,
		Building: r.Building,
		Capacity: r.Capacity,
		Type:     string(r.Type),
	}
}

func ToSanctionResponse(s *domain.Sanction) SanctionResponse {
	return SanctionResponse{
		ID:        s.ID,
		CI:        s.CI,
		StartDate: s.StartDate.Format(dateLayout),
		EndDate:   s.EndDate.Format(dateLayout),
		Active:    s.Active(time.Now().UTC()),
	}
}
