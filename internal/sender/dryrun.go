package sender

import (
	"context"

	"github.com/sgimenez0/RoomBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// DryRunSender logs instead of sending; used for local runs without SMTP.
type DryRunSender struct {
	log logger.Logger
}

func NewDryRunSender(log logger.Logger) *DryRunSender {
	return &DryRunSender{log: log}
}

func (s *DryRunSender) Send(_ context.Context, n *domain.Notification) error {
	s.log.Info("dry-run notification",
		logger.String("channel", string(n.Channel)),
		logger.String("recipient", n.Recipient),
		logger.String("subject", n.Subject),
	)
	return nil
}
