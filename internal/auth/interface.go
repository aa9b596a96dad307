package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// AuthURL returns the Google consent page URL for state.
	AuthURL(state string) string
	// Login signs the user in with an authorization code or a Google access
	// token and returns an access token for this API.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
