package http

import (
	"github.com/google/uuid"

	"email-task-assistant/internal/auth"
	"email-task-assistant/pkg/response"
)

// callbackReq accepts the redirect query (code, state) or a JSON body from the extension.
type callbackReq struct {
	Code        string `form:"code"  json:"code"`
	State       string `form:"state" json:"state"`
	AccessToken string `form:"-"     json:"access_token"`
}

func (r callbackReq) toInput() auth.LoginInput {
	return auth.LoginInput{Code: r.Code, AccessToken: r.AccessToken}
}

type urlReq struct {
	State string `form:"state"`
}

func (r urlReq) state() string {
	if r.State != "" {
		return r.State
	}
	return uuid.NewString()
}

type urlResp struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResp struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   response.DateTime `json:"expires_at"`
	User        userResp          `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresAt:   response.DateTime(out.ExpiresAt),
		User: userResp{
			ID:    out.User.ID,
			Email: out.User.Email,
			Name:  out.User.Name,
		},
	}
}
