package http

import (
	"github.com/gin-gonic/gin"

	"email-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All task routes require a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/reminders", h.ListReminders)
		tasks.GET("/upcoming", h.Upcoming)
		tasks.GET("/overdue", h.Overdue)
		tasks.GET("/analytics", h.Analytics)

		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id/status", h.UpdateStatus)
		tasks.POST("/:id/confirm", h.Confirm)
		tasks.POST("/:id/reject", h.Reject)
		tasks.GET("/:id/history", h.History)
		tasks.POST("/:id/reminder", h.SetReminder)
		tasks.DELETE("/:id/reminder", h.RemoveReminder)
	}
}
