package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"email-task-assistant/internal/auth"
	"email-task-assistant/internal/user"
	"email-task-assistant/pkg/log"
	"email-task-assistant/pkg/scope"
)

// ProfileFetcher reads the Google profile of the token owner.
type ProfileFetcher interface {
	Fetch(ctx context.Context, tok *oauth2.Token) (auth.Profile, error)
}

type implUseCase struct {
	l       log.Logger
	oauth   *oauth2.Config
	users   user.UseCase
	tokens  scope.Manager
	profile ProfileFetcher
}

// New creates the Google sign-in use case.
func New(l log.Logger, oauth *oauth2.Config, users user.UseCase, tokens scope.Manager, profile ProfileFetcher) *implUseCase {
	return &implUseCase{
		l:       l,
		oauth:   oauth,
		users:   users,
		tokens:  tokens,
		profile: profile,
	}
}
