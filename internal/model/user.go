package model

import (
	"time"

	"golang.org/x/oauth2"
)

// User is an account created on first Google sign-in.
type User struct {
	ID                 string     `db:"id"`
	Email              string     `db:"email"`
	Name               string     `db:"name"`
	GoogleAccessToken  string     `db:"google_access_token"`
	GoogleRefreshToken string     `db:"google_refresh_token"`
	GoogleTokenExpiry  *time.Time `db:"google_token_expiry"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// HasGoogleToken reports whether the user granted offline Google access.
func (u User) HasGoogleToken() bool {
	return u.GoogleAccessToken != "" || u.GoogleRefreshToken != ""
}

// GoogleToken returns the stored Google credentials as an oauth2 token.
func (u User) GoogleToken() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  u.GoogleAccessToken,
		RefreshToken: u.GoogleRefreshToken,
		TokenType:    "Bearer",
	}
	if u.GoogleTokenExpiry != nil {
		tok.Expiry = *u.GoogleTokenExpiry
	}
	return tok
}
