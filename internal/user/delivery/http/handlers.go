package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
	"email-task-assistant/pkg/scope"
)

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user's profile.
// @Tags        Users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	u, err := h.uc.Detail(ctx, scope.GetScopeFromContext(ctx).UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(u))
}
