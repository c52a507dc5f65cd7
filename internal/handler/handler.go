package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Modify(ctx context.Context, id string, input domain.ModifyReservationInput) error
	AddParticipant(ctx context.Context, id, ci string) error
	RemoveParticipant(ctx context.Context, id, ci string) error
	SetAttendance(ctx context.Context, id, ci string, attended bool) ([]string, error)
	GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error)
	List(ctx context.Context) ([]*domain.ReservationSummary, error)
	ListByParticipant(ctx context.Context, ci string) ([]*domain.Reservation, error)
	ListTimeSlots(ctx context.Context) ([]*domain.TimeSlot, error)
}

type ParticipantSvc interface {
	Create(ctx context.Context, input domain.CreateParticipantInput) (*domain.Participant, error)
	GetByCI(ctx context.Context, ci string) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
	Update(ctx context.Context, ci string, input domain.UpdateParticipantInput) error
	Delete(ctx context.Context, ci string) error
}

type RoomSvc interface {
	CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	GetRoom(ctx context.Context, name, building string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	UpdateRoom(ctx context.Context, name, building string, input domain.UpdateRoomInput) error
	DeleteRoom(ctx context.Context, name, building string) error
	CreateBuilding(ctx context.Context, name, address string) (*domain.Building, error)
	ListBuildings(ctx context.Context) ([]*domain.Building, error)
}

type SanctionSvc interface {
	Create(ctx context.Context, ci string, days int) (*domain.Sanction, error)
	List(ctx context.Context) ([]*domain.Sanction, error)
	ListByParticipant(ctx context.Context, ci string) ([]*domain.Sanction, error)
	Delete(ctx context.Context, id string) error
}

type ReportSvc interface {
	RoomUsage(ctx context.Context, from, to time.Time) ([]*domain.RoomUsageRow, error)
	TopParticipants(ctx context.Context, limit int) ([]*domain.ParticipantUsageRow, error)
}

type Handler struct {
	reservationService ReservationSvc
	participantService ParticipantSvc
	roomService        RoomSvc
	sanctionService    SanctionSvc
	reportService      ReportSvc
}

func NewHandler(
	reservationService ReservationSvc,
	participantService ParticipantSvc,
	roomService RoomSvc,
	sanctionService SanctionSvc,
	reportService ReportSvc,
) *Handler {
	return &Handler{
		reservationService: reservationService,
		participantService: participantService,
		roomService:        roomService,
		sanctionService:    sanctionService,
		reportService:      reportService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateReservationInput{
		RoomName:       req.RoomName,
		Building:       req.Building,
		Date:           date,
		SlotID:         req.SlotID,
		ParticipantCIs: req.Participants,
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	details, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationDetailsResponse(details))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationSummaryResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationSummaryResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ModifyReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.ModifyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.ModifyReservationInput{
		RoomName: req.RoomName,
		Building: req.Building,
		Date:     date,
		SlotID:   req.SlotID,
	}

	if err := h.reservationService.Modify(c.Request.Context(), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "modified"})
}

func (h *Handler) AddReservationParticipant(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.AddParticipant(c.Request.Context(), id, req.CI); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "added"})
}

func (h *Handler) RemoveReservationParticipant(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}
	ci := c.Param("ci")

	if err := h.reservationService.RemoveParticipant(c.Request.Context(), id, ci); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

func (h *Handler) RecordAttendance(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sanctioned, err := h.reservationService.SetAttendance(c.Request.Context(), id, req.CI, *req.Attended)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttendanceResponse{
		Status:     "recorded",
		NoShow:     len(sanctioned) > 0,
		Sanctioned: sanctioned,
	})
}

func (h *Handler) ListTimeSlots(c *ginext.Context) {
	slots, err := h.reservationService.ListTimeSlots(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.TimeSlotResponse{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime})
	}

	c.JSON(http.StatusOK, resp)
}

// Participants

func (h *Handler) CreateParticipant(c *ginext.Context) {
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	memberships := make([]domain.Membership, 0, len(req.Memberships))
	for _, m := range req.Memberships {
		memberships = append(memberships, domain.Membership{
			Program: m.Program,
			Role:    domain.Role(m.Role),
		})
	}

	input := domain.CreateParticipantInput{
		CI:             req.CI,
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
		Memberships:    memberships,
	}

	participant, err := h.participantService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *Handler) GetParticipant(c *ginext.Context) {
	participant, err := h.participantService.GetByCI(c.Request.Context(), c.Param("ci"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	participants, err := h.participantService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		resp = append(resp, dto.ToParticipantResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateParticipant(c *ginext.Context) {
	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateParticipantInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}
	if err := h.participantService.Update(c.Request.Context(), c.Param("ci"), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeleteParticipant(c *ginext.Context) {
	if err := h.participantService.Delete(c.Request.Context(), c.Param("ci")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListParticipantSanctions(c *ginext.Context) {
	sanctions, err := h.sanctionService.ListByParticipant(c.Request.Context(), c.Param("ci"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SanctionResponse, 0, len(sanctions))
	for _, s := range sanctions {
		resp = append(resp, dto.ToSanctionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListParticipantReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByParticipant(c.Request.Context(), c.Param("ci"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRoomInput{
		Name:     req.Name,
		Building: req.Building,
		Capacity: req.Capacity,
		Type:     domain.RoomType(req.Type),
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) GetRoom(c *ginext.Context) {
	room, err := h.roomService.GetRoom(c.Request.Context(), c.Param("name"), c.Param("building"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateRoomInput{
		Capacity: req.Capacity,
		Type:     domain.RoomType(req.Type),
	}
	if err := h.roomService.UpdateRoom(c.Request.Context(), c.Param("name"), c.Param("building"), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	if err := h.roomService.DeleteRoom(c.Request.Context(), c.Param("name"), c.Param("building")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBuilding(c *ginext.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	building, err := h.roomService.CreateBuilding(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BuildingResponse{Name: building.Name, Address: building.Address})
}

func (h *Handler) ListBuildings(c *ginext.Context) {
	buildings, err := h.roomService.ListBuildings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		resp = append(resp, dto.BuildingResponse{Name: b.Name, Address: b.Address})
	}

	c.JSON(http.StatusOK, resp)
}

// Sanctions

func (h *Handler) CreateSanction(c *ginext.Context) {
	var req dto.CreateSanctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sanction, err := h.sanctionService.Create(c.Request.Context(), req.CI, req.Days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSanctionResponse(sanction))
}

func (h *Handler) ListSanctions(c *ginext.Context) {
	sanctions, err := h.sanctionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SanctionResponse, 0, len(sanctions))
	for _, s := range sanctions {
		resp = append(resp, dto.ToSanctionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteSanction(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sanction id"})
		return
	}

	if err := h.sanctionService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Reports

func (h *Handler) RoomUsageReport(c *ginext.Context) {
	from, err := time.Parse(dateLayout, c.DefaultQuery("from", time.Now().UTC().AddDate(0, -1, 0).Format(dateLayout)))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid 'from' date"})
		return
	}
	to, err := time.Parse(dateLayout, c.DefaultQuery("to", time.Now().UTC().Format(dateLayout)))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid 'to' date"})
		return
	}

	report, err := h.reportService.RoomUsage(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) TopParticipantsReport(c *ginext.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid 'limit'"})
		return
	}

	report, err := h.reportService.TopParticipants(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBuildingNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrTimeSlotNotFound),
		errors.Is(err, domain.ErrSanctionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrSanctionActive),
		errors.Is(err, domain.ErrRoomNotAllowed),
		errors.Is(err, domain.ErrDailyLimit),
		errors.Is(err, domain.ErrWeeklyLimit),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrReservationNotActive),
		errors.Is(err, domain.ErrReservationNotDeletable),
		errors.Is(err, domain.ErrLastParticipant),
		errors.Is(err, domain.ErrAlreadyOnReservation),
		errors.Is(err, domain.ErrNotOnReservation),
		errors.Is(err, domain.ErrSanctionOverlap),
		errors.Is(err, domain.ErrParticipantExists),
		errors.Is(err, domain.ErrRoomExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrParticipantInUse),
		errors.Is(err, domain.ErrRoomInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
