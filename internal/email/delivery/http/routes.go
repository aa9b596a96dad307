package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/internal/middleware"
)

// RegisterRoutes maps the email endpoints. They call the language model, so
// they sit behind the per-user rate limit as well as auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	emails := rg.Group("/emails/current", mw.Auth(), mw.RateLimit())
	{
		emails.POST("/process", h.Process)
		emails.POST("/reply", h.Reply)
	}

	rg.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
}
