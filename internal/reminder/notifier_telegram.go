package reminder

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"email-task-assistant/config"
	"email-task-assistant/pkg/telegram"
)

// TelegramSender is the part of the Bot API client the notifier uses.
type TelegramSender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

// TelegramNotifier posts reminders to a single operations chat.
type TelegramNotifier struct {
	bot    TelegramSender
	chatID int64
}

func NewTelegramNotifier(bot TelegramSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (n *TelegramNotifier) Channel() string { return config.ChannelTelegram }

func (n *TelegramNotifier) Notify(ctx context.Context, s Snapshot) error {
	if n.chatID == 0 {
		return newDeliveryError(n.Channel(), ReasonNoRecipient, errors.New("telegram chat id is not configured"))
	}

	if err := n.bot.SendMessageWithMode(ctx, n.chatID, formatTelegram(s), "HTML"); err != nil {
		reason := ReasonTransport
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			reason = ReasonRejected
		}
		return newDeliveryError(n.Channel(), reason, err)
	}
	return nil
}

func formatTelegram(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⏰ <b>%s</b>\n", html.EscapeString(s.Title))
	if s.OwnerEmail != "" {
		fmt.Fprintf(&b, "Owner: %s\n", html.EscapeString(s.OwnerEmail))
	}
	fmt.Fprintf(&b, "Priority: %s\n", s.Priority)
	if s.DueDate != nil {
		fmt.Fprintf(&b, "Due: %s\n", s.DueDate.UTC().Format(time.DateOnly))
	}
	if s.Description != "" {
		fmt.Fprintf(&b, "\n%s", html.EscapeString(s.Description))
	}
	return b.String()
}
