package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	teams := rg.Group("/teams", mw.Auth())
	{
		teams.POST("", h.Create)
		teams.GET("", h.List)
		teams.GET("/:id", h.Detail)
		teams.PUT("/:id", h.Update)
		teams.DELETE("/:id", h.Delete)
		teams.POST("/:id/members", h.AddMember)
		teams.GET("/:id/members", h.ListMembers)
		teams.GET("/:id/tasks", h.ListTasks)
	}
}
