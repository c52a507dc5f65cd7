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

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name, building, capacity, type, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.Name, room.Building, room.Capacity, room.Type, room.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrRoomExists
			case "23503":
				return domain.ErrBuildingNotFound
			}
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetRoom(ctx context.Context, name, building string) (*domain.Room, error) {
	query := `SELECT name, building, capacity, type, created_at
			  FROM rooms WHERE name = $1 AND building = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, name, building)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(&room.Name, &room.Building, &room.Capacity, &room.Type, &room.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

func (r *RoomRepository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT name, building, capacity, type, created_at
			  FROM rooms ORDER BY building, name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(&room.Name, &room.Building, &room.Capacity, &room.Type, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, &room)
	}

	return res, rows.Err()
}

func (r *RoomRepository) UpdateRoom(ctx context.Context, name, building string, input domain.UpdateRoomInput) error {
	query := `UPDATE rooms SET capacity = $3, type = $4 WHERE name = $1 AND building = $2`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, name, building, input.Capacity, input.Type,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

// DeleteRoom removes a room. Rooms referenced by reservations are protected
// by the composite foreign key.
func (r *RoomRepository) DeleteRoom(ctx context.Context, name, building string) error {
	query := `DELETE FROM rooms WHERE name = $1 AND building = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, name, building)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("room %s: %w", name, domain.ErrRoomInUse)
		}
		return fmt.Errorf("delete room: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (r *RoomRepository) CreateBuilding(ctx context.Context, b *domain.Building) error {
	query := `INSERT INTO buildings (name, address) VALUES ($1, $2)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, b.Name, b.Address)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("building %s: %w", b.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert building: %w", err)
	}

	return nil
}

func (r *RoomRepository) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	query := `SELECT name, address FROM buildings ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Building
	for rows.Next() {
		var b domain.Building
		if err = rows.Scan(&b.Name, &b.Address); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
