package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"email-task-assistant/internal/auth"
	"email-task-assistant/internal/user"
)

// AuthURL asks for offline access so a refresh token is issued for reminders.
func (uc *implUseCase) AuthURL(state string) string {
	return uc.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	tok, err := uc.googleToken(ctx, input)
	if err != nil {
		return auth.LoginOutput{}, err
	}

	p, err := uc.profile.Fetch(ctx, tok)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Login Fetch: %v", err)
		return auth.LoginOutput{}, auth.ErrProfileFailed
	}
	if strings.TrimSpace(p.Email) == "" {
		return auth.LoginOutput{}, auth.ErrProfileFailed
	}
	if !p.Verified {
		return auth.LoginOutput{}, auth.ErrUnverifiedEmail
	}

	var expiry *time.Time
	if !tok.Expiry.IsZero() {
		e := tok.Expiry
		expiry = &e
	}
	u, err := uc.users.Upsert(ctx, user.UpsertInput{
		Email:        p.Email,
		Name:         p.Name,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenExpiry:  expiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Upsert: %v", err)
		return auth.LoginOutput{}, err
	}

	access, exp, err := uc.tokens.Issue(u.ID, u.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Issue: %v", err)
		return auth.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Login: user %s signed in", u.ID)
	return auth.LoginOutput{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresAt:   exp,
		User:        u,
	}, nil
}

func (uc *implUseCase) googleToken(ctx context.Context, input auth.LoginInput) (*oauth2.Token, error) {
	switch {
	case input.Code != "":
		tok, err := uc.oauth.Exchange(ctx, input.Code)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Login Exchange: %v", err)
			return nil, auth.ErrExchangeFailed
		}
		return tok, nil
	case input.AccessToken != "":
		return &oauth2.Token{AccessToken: input.AccessToken, TokenType: "Bearer"}, nil
	default:
		return nil, auth.ErrMissingCredential
	}
}
