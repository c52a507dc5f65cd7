package sender

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sgimenez0/RoomBooker/internal/domain"
)

// TelegramSender delivers notifications whose recipient is a chat id.
type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSender{bot: bot}, nil
}

func (s *TelegramSender) Send(ctx context.Context, n *domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID, err := strconv.ParseInt(n.Recipient, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", n.Recipient, err)
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("*%s*\n\n%s", n.Subject, n.Body))
	msg.ParseMode = "Markdown"

	if _, err = s.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
