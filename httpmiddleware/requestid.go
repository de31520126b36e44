package httpmiddleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"campus-backend/log"
)

const requestIDKey = "request_id"

// RequestID tags each request with a correlation id, honoring one
// supplied by a proxy, and echoes it in the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger returns the process logger with the request's
// correlation id attached.
func RequestLogger(c *gin.Context) *zap.Logger {
	if id, ok := c.Get(requestIDKey); ok {
		return log.Logger.With(zap.String("requestID", id.(string)))
	}

	return log.Logger
}
