package auth

import (
	"time"

	"email-task-assistant/internal/model"
)

// LoginInput carries either an authorization Code from the redirect flow or
// an AccessToken the extension obtained itself.
type LoginInput struct {
	Code        string
	AccessToken string
}

type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        model.User
}

// Profile is the part of the Google account we keep.
type Profile struct {
	Email    string
	Name     string
	Verified bool
}
