package reminder

import (
	"context"
	"errors"
	"net/textproto"

	"email-task-assistant/config"
	"email-task-assistant/pkg/mailer"
)

// EmailNotifier delivers reminders over SMTP to the task owner.
type EmailNotifier struct {
	mailer   mailer.Mailer
	renderer *Renderer
}

func NewEmailNotifier(m mailer.Mailer, r *Renderer) *EmailNotifier {
	return &EmailNotifier{mailer: m, renderer: r}
}

func (n *EmailNotifier) Channel() string { return config.ChannelSMTP }

func (n *EmailNotifier) Notify(ctx context.Context, s Snapshot) error {
	if s.OwnerEmail == "" {
		return newDeliveryError(n.Channel(), ReasonNoRecipient, mailer.ErrNoRecipient)
	}
	msg, err := n.renderer.Render(s)
	if err != nil {
		return newDeliveryError(n.Channel(), ReasonRender, err)
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		return newDeliveryError(n.Channel(), smtpReason(err), err)
	}
	return nil
}

// smtpReason separates permanent 5xx replies from everything else.
func smtpReason(err error) Reason {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && tpErr.Code >= 500 {
		return ReasonRejected
	}
	return ReasonTransport
}
