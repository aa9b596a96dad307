package gmail

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// UserSender sends mail from the mailboxes of signed-in users.
type UserSender struct {
	oauth *oauth2.Config
	opts  []option.ClientOption
}

// NewUserSender builds a UserSender refreshing tokens through oauth.
func NewUserSender(oauth *oauth2.Config, opts ...option.ClientOption) *UserSender {
	return &UserSender{oauth: oauth, opts: opts}
}

// SendRaw sends raw from the mailbox that owns tok.
func (s *UserSender) SendRaw(ctx context.Context, tok *oauth2.Token, raw []byte) (string, error) {
	client, err := NewClientFromTokenSource(ctx, s.oauth.TokenSource(ctx, tok), s.opts...)
	if err != nil {
		return "", err
	}
	return client.SendRaw(ctx, raw)
}
