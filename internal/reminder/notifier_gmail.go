package reminder

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"email-task-assistant/config"
	"email-task-assistant/internal/model"
	"email-task-assistant/pkg/mailer"
)

// GmailSender sends a raw RFC 822 message from the mailbox owning tok.
type GmailSender interface {
	SendRaw(ctx context.Context, tok *oauth2.Token, raw []byte) (string, error)
}

// OwnerLookup loads the owner of a task with its Google credentials.
type OwnerLookup interface {
	Detail(ctx context.Context, id string) (model.User, error)
}

var errNoGoogleToken = errors.New("owner has not granted Gmail access")

// GmailNotifier sends the reminder from the owner's own mailbox to itself.
type GmailNotifier struct {
	sender   GmailSender
	owners   OwnerLookup
	renderer *Renderer
	fromName string
}

func NewGmailNotifier(sender GmailSender, owners OwnerLookup, r *Renderer, fromName string) *GmailNotifier {
	return &GmailNotifier{sender: sender, owners: owners, renderer: r, fromName: fromName}
}

func (n *GmailNotifier) Channel() string { return config.ChannelGmail }

func (n *GmailNotifier) Notify(ctx context.Context, s Snapshot) error {
	if s.OwnerEmail == "" {
		return newDeliveryError(n.Channel(), ReasonNoRecipient, mailer.ErrNoRecipient)
	}

	owner, err := n.owners.Detail(ctx, s.OwnerID)
	if err != nil {
		return newDeliveryError(n.Channel(), ReasonTransport, err)
	}
	if !owner.HasGoogleToken() {
		return newDeliveryError(n.Channel(), ReasonNoRecipient, errNoGoogleToken)
	}

	msg, err := n.renderer.Render(s)
	if err != nil {
		return newDeliveryError(n.Channel(), ReasonRender, err)
	}
	raw := mailer.BuildMIME(s.OwnerEmail, n.fromName, msg)

	if _, err := n.sender.SendRaw(ctx, owner.GoogleToken(), raw); err != nil {
		return newDeliveryError(n.Channel(), googleReason(err), err)
	}
	return nil
}

func googleReason(err error) Reason {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		if gErr.Code == http.StatusTooManyRequests || gErr.Code >= 500 {
			return ReasonTransport
		}
		return ReasonRejected
	}
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		return ReasonRejected
	}
	return ReasonTransport
}
