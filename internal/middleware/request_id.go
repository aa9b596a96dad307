package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"email-task-assistant/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the client's when present,
// so log lines of one request can be correlated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
