package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users", mw.Auth())
	{
		users.GET("/me", h.Me)
	}
}
