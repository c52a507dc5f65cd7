package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultMaxAttempts = 5

type ReservationService struct {
	repo            ports.ReservationRepo
	participantRepo ports.ParticipantRepo
	queue           ports.NotificationQueue
	logger          logger.Logger
}

func NewReservationService(
	repo ports.ReservationRepo,
	participantRepo ports.ParticipantRepo,
	queue ports.NotificationQueue,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:            repo,
		participantRepo: participantRepo,
		queue:           queue,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if len(input.ParticipantCIs) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(input.ParticipantCIs))
	cis := make([]string, 0, len(input.ParticipantCIs))
	for _, ci := range input.ParticipantCIs {
		if ci == "" {
			return nil, fmt.Errorf("%w: empty participant ci", domain.ErrValidation)
		}
		if _, ok := seen[ci]; ok {
			continue
		}
		seen[ci] = struct{}{}
		cis = append(cis, ci)
	}

	now := time.Now().UTC()
	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		RoomName:  input.RoomName,
		Building:  input.Building,
		Date:      input.Date,
		SlotID:    input.SlotID,
		Status:    domain.ReservationStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, reservation, cis); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("room", reservation.RoomName),
		logger.String("building", reservation.Building),
		logger.Int("participants", len(cis)),
	)

	subject := "Reservation confirmed"
	body := fmt.Sprintf(
		"Your reservation for room %s (%s) on %s, time slot %d, has been created.",
		reservation.RoomName, reservation.Building,
		reservation.Date.Format("2006-01-02"), reservation.SlotID,
	)
	go s.notifyRoster(context.WithoutCancel(ctx), cis, subject, body)

	return reservation, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) error {
	details, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if err = s.repo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
	)

	cis := make([]string, 0, len(details.Roster))
	for _, e := range details.Roster {
		cis = append(cis, e.CI)
	}
	subject := "Reservation cancelled"
	body := fmt.Sprintf(
		"Your reservation for room %s (%s) on %s has been cancelled.",
		details.Reservation.RoomName, details.Reservation.Building,
		details.Reservation.Date.Format("2006-01-02"),
	)
	go s.notifyRoster(context.WithoutCancel(ctx), cis, subject, body)

	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Info("reservation deleted",
		logger.String("reservation_id", id),
	)
	return nil
}

func (s *ReservationService) Modify(ctx context.Context, id string, input domain.ModifyReservationInput) error {
	if err := s.repo.Modify(ctx, id, input); err != nil {
		return fmt.Errorf("modify reservation: %w", err)
	}

	s.logger.Info("reservation modified",
		logger.String("reservation_id", id),
		logger.String("room", input.RoomName),
		logger.String("building", input.Building),
	)
	return nil
}

func (s *ReservationService) AddParticipant(ctx context.Context, id, ci string) error {
	if ci == "" {
		return fmt.Errorf("%w: empty participant ci", domain.ErrValidation)
	}
	if err := s.repo.AddParticipant(ctx, id, ci); err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

func (s *ReservationService) RemoveParticipant(ctx context.Context, id, ci string) error {
	if err := s.repo.RemoveParticipant(ctx, id, ci); err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	return nil
}

// SetAttendance records attendance; when the no-show cascade fires it also
// queues a sanction notice for every sanctioned participant.
func (s *ReservationService) SetAttendance(ctx context.Context, id, ci string, attended bool) ([]string, error) {
	sanctioned, err := s.repo.SetAttendance(ctx, id, ci, attended)
	if err != nil {
		return nil, fmt.Errorf("set attendance: %w", err)
	}

	if len(sanctioned) > 0 {
		s.logger.Info("no-show sanctions applied",
			logger.String("reservation_id", id),
			logger.Int("participants", len(sanctioned)),
		)

		subject := "Sanction applied"
		body := "Nobody attended your reservation. A 60-day sanction has been applied to your account."
		go s.notifyRoster(context.WithoutCancel(ctx), sanctioned, subject, body)
	}

	return sanctioned, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.ReservationSummary, error) {
	return s.repo.List(ctx)
}

func (s *ReservationService) ListByParticipant(ctx context.Context, ci string) ([]*domain.Reservation, error) {
	return s.repo.ListByParticipant(ctx, ci)
}

func (s *ReservationService) ListTimeSlots(ctx context.Context) ([]*domain.TimeSlot, error) {
	return s.repo.ListTimeSlots(ctx)
}

// notifyRoster enqueues one email per participant, plus a Telegram message
// for participants that registered a chat id. Enqueue failures are logged
// and dropped; notification delivery is never on the request path.
func (s *ReservationService) notifyRoster(ctx context.Context, cis []string, subject, body string) {
	for _, ci := range cis {
		p, err := s.participantRepo.GetByCI(ctx, ci)
		if err != nil {
			s.logger.Error("failed to load participant for notification",
				logger.String("ci", ci),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.enqueue(ctx, domain.ChannelEmail, p.Email, subject, body)
		if p.TelegramChatID != nil {
			s.enqueue(ctx, domain.ChannelTelegram, strconv.FormatInt(*p.TelegramChatID, 10), subject, body)
		}
	}
}

func (s *ReservationService) enqueue(ctx context.Context, channel domain.NotificationChannel, recipient, subject, body string) {
	n := &domain.Notification{
		ID:          uuid.New().String(),
		Channel:     channel,
		Recipient:   recipient,
		Subject:     subject,
		Body:        body,
		Status:      domain.NotificationStatusPending,
		MaxAttempts: defaultMaxAttempts,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Error("failed to enqueue notification",
			logger.String("channel", string(channel)),
			logger.String("recipient", recipient),
			logger.String("error", err.Error()),
		)
	}
}
