package middleware

import (
	"time"

	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a request-scoped logger to the request context and
// writes one line per request once the handler chain has finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := logger.Get().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Logger()
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = reqLogger.Error()
		case status >= 400:
			event = reqLogger.Warn()
		default:
			event = reqLogger.Info()
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("size", c.Writer.Size()).
			Msg("API")
	}
}
