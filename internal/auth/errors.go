package auth

import "errors"

var (
	ErrMissingCredential = errors.New("authorization code or access token is required")
	ErrExchangeFailed    = errors.New("failed to exchange authorization code")
	ErrProfileFailed     = errors.New("failed to fetch Google profile")
	ErrUnverifiedEmail   = errors.New("google account email is not verified")
)
