package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
)

// URL godoc
// @Summary     Google consent URL
// @Description Returns the Google OAuth consent URL. A random state is generated when none is given.
// @Tags        Auth
// @Produce     json
// @Param       state query string false "Opaque state echoed back to the callback"
// @Success     200 {object} urlResp
// @Router      /api/oauth/url [GET]
func (h *handler) URL(c *gin.Context) {
	var req urlReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	state := req.state()
	response.OK(c, urlResp{URL: h.uc.AuthURL(state), State: state})
}

// Callback godoc
// @Summary     Complete Google sign-in
// @Description Exchanges an authorization code (redirect query or JSON) or accepts a Google access token from the extension, then returns an API access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body callbackReq false "code or access_token"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Unverified email"
// @Router      /api/oauth/callback [POST]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackReq
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}
