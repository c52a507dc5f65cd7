package dto

type CreateReservationRequest struct {
	RoomName     string   `json:"room_name" binding:"required"`
	Building     string   `json:"building" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	SlotID       int      `json:"slot_id" binding:"required,gt=0"`
	Participants []string `json:"participants" binding:"required,min=1"`
}

type ModifyReservationRequest struct {
	RoomName string `json:"room_name" binding:"required"`
	Building string `json:"building" binding:"required"`
	Date     string `json:"date" binding:"required"`
	SlotID   int    `json:"slot_id" binding:"required,gt=0"`
}

type AddParticipantRequest struct {
	CI string `json:"ci" binding:"required"`
}

type AttendanceRequest struct {
	CI       string `json:"ci" binding:"required"`
	Attended *bool  `json:"attended" binding:"required"`
}

type MembershipRequest struct {
	Program string `json:"program" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=student faculty"`
}

type CreateParticipantRequest struct {
	CI             string              `json:"ci" binding:"required"`
	Name           string              `json:"name" binding:"required"`
	Email          string              `json:"email" binding:"required,email"`
	TelegramChatID *int64              `json:"telegram_chat_id"`
	Memberships    []MembershipRequest `json:"memberships"`
}

type UpdateParticipantRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Building string `json:"building" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=open graduate faculty"`
}

type UpdateRoomRequest struct {
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=open graduate faculty"`
}

type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type CreateSanctionRequest struct {
	CI   string `json:"ci" binding:"required"`
	Days int    `json:"days" binding:"required,gt=0"`
}
