package ports

import (
	"context"

	"github.com/sgimenez0/RoomBooker/internal/domain"
)

// Sender delivers one notification over its channel.
type Sender interface {
	Send(ctx context.Context, n *domain.Notification) error
}
