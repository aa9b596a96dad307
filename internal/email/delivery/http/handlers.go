package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
	"email-task-assistant/pkg/scope"
)

// Process godoc
// @Summary     Process the open email
// @Description Stores the email, extracts tasks with the language model, resolves their due dates and returns a summary and a suggested reply. A model failure yields zero tasks.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body processReq true "Email"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/emails/current/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Process(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Extract godoc
// @Summary     Extract tasks from an email (legacy)
// @Description Original extension endpoint. user_email must match the caller.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Email"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Process(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Reply godoc
// @Summary     Draft a reply
// @Description Generates a professional reply with its tone and the key points it addresses.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body replyReq true "Email and optional context"
// @Success     200  {object} replyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Model failure"
// @Failure     503  {object} response.Resp "No model configured"
// @Router      /api/emails/current/reply [POST]
func (h *handler) Reply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplyReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Reply(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReplyResp(output))
}
