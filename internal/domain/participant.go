package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

type ProgramTier string

const (
	TierUndergraduate ProgramTier = "undergraduate"
	TierGraduate      ProgramTier = "graduate"
)

// Membership ties a participant to an academic program with a role in it.
type Membership struct {
	Program string      `json:"program"`
	Role    Role        `json:"role"`
	Tier    ProgramTier `json:"tier"`
}

type Participant struct {
	CI             string       `json:"ci"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	TelegramChatID *int64       `json:"telegram_chat_id,omitempty"`
	Memberships    []Membership `json:"memberships"`
	CreatedAt      time.Time    `json:"created_at"`
}

type CreateParticipantInput struct {
	CI             string
	Name           string
	Email          string
	TelegramChatID *int64
	Memberships    []Membership
}

// UpdateParticipantInput changes contact data only; ci and memberships are
// immutable through this path.
type UpdateParticipantInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}
