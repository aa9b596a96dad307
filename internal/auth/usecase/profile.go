package usecase

import (
	"context"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"email-task-assistant/internal/auth"
)

type googleProfile struct {
	opts []option.ClientOption
}

// NewGoogleProfile returns a ProfileFetcher backed by the Google userinfo endpoint.
func NewGoogleProfile(opts ...option.ClientOption) ProfileFetcher {
	return &googleProfile{opts: opts}
}

func (g *googleProfile) Fetch(ctx context.Context, tok *oauth2.Token) (auth.Profile, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(oauth2.StaticTokenSource(tok))}, g.opts...)
	srv, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return auth.Profile{}, err
	}

	info, err := srv.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return auth.Profile{}, err
	}
	return auth.Profile{
		Email:    info.Email,
		Name:     info.Name,
		Verified: info.VerifiedEmail == nil || *info.VerifiedEmail,
	}, nil
}
