package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID attaches a unique ID to every request for log correlation,
// honoring an incoming X-Request-ID when a proxy already set one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}

// RequestIDFromContext returns the request ID set by RequestID, or "-"
// when the middleware did not run
func RequestIDFromContext(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return "-"
}
