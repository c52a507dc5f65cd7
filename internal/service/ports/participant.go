package ports

import (
	"context"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByCI(ctx context.Context, ci string) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
	Update(ctx context.Context, ci string, input domain.UpdateParticipantInput) error
	Delete(ctx context.Context, ci string) error
}

type RoomRepo interface {
	CreateRoom(ctx context.Context, r *domain.Room) error
	GetRoom(ctx context.Context, name, building string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
	UpdateRoom(ctx context.Context, name, building string, input domain.UpdateRoomInput) error
	DeleteRoom(ctx context.Context, name, building string) error
	CreateBuilding(ctx context.Context, b *domain.Building) error
	ListBuildings(ctx context.Context) ([]*domain.Building, error)
}
