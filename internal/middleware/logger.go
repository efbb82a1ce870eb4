package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs each request with the fields the audit trail also cares about:
// client IP, user agent and, once the session resolver has run, the resolved
// actor id.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if id := CurrentIdentity(c); id != nil {
			fields = append(fields,
				zap.String("actor", id.ID),
				zap.String("role", string(id.Role)),
			)
		}
		log.Info("request", fields...)
	}
}
