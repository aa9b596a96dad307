package reminder

import (
	"fmt"

	"email-task-assistant/config"
	"email-task-assistant/pkg/mailer"
)

// Deps are the delivery clients NewNotifier picks from.
type Deps struct {
	Renderer *Renderer
	Mailer   mailer.Mailer
	Gmail    GmailSender
	Owners   OwnerLookup
	FromName string
	Telegram TelegramSender
	ChatID   int64
}

// NewNotifier returns the notifier for channel.
func NewNotifier(channel string, d Deps) (Notifier, error) {
	switch channel {
	case config.ChannelSMTP:
		if d.Mailer == nil {
			return nil, fmt.Errorf("%w: smtp", ErrChannelNotConfigured)
		}
		return NewEmailNotifier(d.Mailer, d.Renderer), nil
	case config.ChannelGmail:
		if d.Gmail == nil || d.Owners == nil {
			return nil, fmt.Errorf("%w: gmail", ErrChannelNotConfigured)
		}
		return NewGmailNotifier(d.Gmail, d.Owners, d.Renderer, d.FromName), nil
	case config.ChannelTelegram:
		if d.Telegram == nil {
			return nil, fmt.Errorf("%w: telegram", ErrChannelNotConfigured)
		}
		return NewTelegramNotifier(d.Telegram, d.ChatID), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
}
