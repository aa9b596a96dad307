package auth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	oauth2api "google.golang.org/api/oauth2/v2"

	"email-task-assistant/config"
)

// Scopes requested at sign-in: identity, sending reminders and calendar events.
var Scopes = []string{
	oauth2api.UserinfoEmailScope,
	oauth2api.UserinfoProfileScope,
	gmail.GmailSendScope,
	calendar.CalendarEventsScope,
}

// NewOAuthConfig builds the Google OAuth client shared by login, Gmail and Calendar.
func NewOAuthConfig(cfg config.GoogleOAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}
}
