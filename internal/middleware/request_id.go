package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation ID
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey stores the ID in the gin context
	RequestIDKey = "request_id"
)

// RequestID reuses an incoming X-Request-ID or generates a UUID,
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID, or "" when RequestID did not run
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
