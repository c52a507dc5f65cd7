package domain

import "time"

type RoomType string

const (
	RoomTypeOpen     RoomType = "open"
	RoomTypeGraduate RoomType = "graduate"
	RoomTypeFaculty  RoomType = "faculty"
)

// Room is identified by (name, building).
type Room struct {
	Name      string    `json:"name"`
	Building  string    `json:"building"`
	Capacity  int       `json:"capacity"`
	Type      RoomType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type Building struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CreateRoomInput struct {
	Name     string
	Building string
	Capacity int
	Type     RoomType
}

// UpdateRoomInput changes capacity and type; (name, building) is the
// identity and cannot move.
type UpdateRoomInput struct {
	Capacity int
	Type     RoomType
}

// TimeSlot is an institution-wide interval shared by every room.
type TimeSlot struct {
	ID        int    `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
