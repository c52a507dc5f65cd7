package domain

import "time"

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelTelegram NotificationChannel = "telegram"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusError   NotificationStatus = "error"
)

// Notification is a queued outbound message. Rows are written once by a
// producer and mutated only by the dispatcher; they are never deleted.
type Notification struct {
	ID            string              `json:"id"`
	Channel       NotificationChannel `json:"channel"`
	Recipient     string              `json:"recipient"`
	Subject       string              `json:"subject"`
	Body          string              `json:"body"`
	Status        NotificationStatus  `json:"status"`
	Attempts      int                 `json:"attempts"`
	MaxAttempts   int                 `json:"max_attempts"`
	LastError     *string             `json:"last_error,omitempty"`
	NextAttemptAt *time.Time          `json:"next_attempt_at,omitempty"`
	SentAt        *time.Time          `json:"sent_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}
