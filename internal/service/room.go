package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/sgimenez0/RoomBooker/internal/service/ports"
)

type RoomService struct {
	repo ports.RoomRepo
}

func NewRoomService(repo ports.RoomRepo) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) CreateRoom(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	if input.Name == "" || input.Building == "" {
		return nil, fmt.Errorf("%w: name and building are required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	switch input.Type {
	case domain.RoomTypeOpen, domain.RoomTypeGraduate, domain.RoomTypeFaculty:
	default:
		return nil, fmt.Errorf("%w: invalid room type %q", domain.ErrValidation, input.Type)
	}

	room := &domain.Room{
		Name:      input.Name,
		Building:  input.Building,
		Capacity:  input.Capacity,
		Type:      input.Type,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, name, building string) (*domain.Room, error) {
	return s.repo.GetRoom(ctx, name, building)
}

func (s *RoomService) UpdateRoom(ctx context.Context, name, building string, input domain.UpdateRoomInput) error {
	if name == "" || building == "" {
		return fmt.Errorf("%w: name and building are required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	switch input.Type {
	case domain.RoomTypeOpen, domain.RoomTypeGraduate, domain.RoomTypeFaculty:
	default:
		return fmt.Errorf("%w: invalid room type %q", domain.ErrValidation, input.Type)
	}

	if err := s.repo.UpdateRoom(ctx, name, building, input); err != nil {
		return fmt.Errorf("update room: %w", err)
	}

	return nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, name, building string) error {
	if name == "" || building == "" {
		return fmt.Errorf("%w: name and building are required", domain.ErrValidation)
	}
	return s.repo.DeleteRoom(ctx, name, building)
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *RoomService) CreateBuilding(ctx context.Context, name, address string) (*domain.Building, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	b := &domain.Building{Name: name, Address: address}
	if err := s.repo.CreateBuilding(ctx, b); err != nil {
		return nil, fmt.Errorf("create building: %w", err)
	}

	return b, nil
}

func (s *RoomService) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	return s.repo.ListBuildings(ctx)
}
