package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"email-task-assistant/pkg/response"
	"email-task-assistant/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and stores its payload in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
