package reminder

import (
	"github.com/jmoiron/sqlx"

	"email-task-assistant/config"
	"email-task-assistant/internal/auth"
	taskRepo "email-task-assistant/internal/task/repository/sqldb"
	userRepo "email-task-assistant/internal/user/repository/sqldb"
	userUC "email-task-assistant/internal/user/usecase"
	"email-task-assistant/pkg/gmail"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/mailer"
	"email-task-assistant/pkg/telegram"
)

// NewFromConfig builds a Scheduler over the task table of db that delivers
// through the channel selected in cfg.Reminder.
func NewFromConfig(l log.Logger, cfg *config.Config, db *sqlx.DB) (*Scheduler, error) {
	d := Deps{
		Renderer: NewRenderer(cfg.Reminder.AppName, cfg.Reminder.BaseURL),
		FromName: cfg.SMTP.FromName,
		ChatID:   cfg.Telegram.ChatID,
	}

	switch cfg.Reminder.Channel {
	case config.ChannelSMTP:
		if cfg.SMTP.Host != "" {
			d.Mailer = mailer.New(mailer.Config{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				From:     cfg.SMTP.From,
				FromName: cfg.SMTP.FromName,
			})
		}
	case config.ChannelGmail:
		if cfg.GoogleOAuth.ClientID != "" {
			d.Gmail = gmail.NewUserSender(auth.NewOAuthConfig(cfg.GoogleOAuth))
			d.Owners = userUC.New(l, userRepo.New(db, l))
		}
	case config.ChannelTelegram:
		if cfg.Telegram.BotToken != "" {
			d.Telegram = telegram.NewBot(cfg.Telegram.BotToken)
		}
	}

	notifier, err := NewNotifier(cfg.Reminder.Channel, d)
	if err != nil {
		return nil, err
	}

	return New(l, taskRepo.New(db, l), notifier, Options{
		Interval:  cfg.Reminder.Interval,
		BatchSize: cfg.Reminder.BatchSize,
	}), nil
}
