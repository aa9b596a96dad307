package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/scope"
)

func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processExtractReq also checks that the caller extracts for their own mailbox.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	sc := scope.GetScopeFromContext(c.Request.Context())
	if !strings.EqualFold(strings.TrimSpace(req.UserEmail), sc.Email) {
		return req, errOtherUser
	}
	return req, nil
}

func (h *handler) processReplyReq(c *gin.Context) (replyReq, error) {
	var req replyReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func extractMessage(n int) string {
	return fmt.Sprintf("Successfully extracted %d tasks", n)
}
