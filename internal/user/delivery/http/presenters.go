package http

import (
	"email-task-assistant/internal/model"
	"email-task-assistant/pkg/response"
)

type meResp struct {
	ID              string            `json:"id"`
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	GoogleConnected bool              `json:"google_connected"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func (h *handler) newMeResp(u model.User) meResp {
	return meResp{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		GoogleConnected: u.HasGoogleToken(),
		CreatedAt:       response.DateTime(u.CreatedAt),
	}
}
