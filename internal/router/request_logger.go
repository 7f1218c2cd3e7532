package router

import (
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every API request through zap, tagging it with the
// authenticated user when the session middleware resolved one. Study
// and progress traffic is chatty, so successful requests stay at Debug.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("client_ip", c.ClientIP()),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if value, ok := c.Get("user"); ok {
			if user, ok := value.(*models.User); ok {
				fields = append(fields, zap.String("user_id", user.ID.String()))
			}
		}

		switch {
		case status >= 500:
			log.Error("Request failed", fields...)
		case status >= 400:
			log.Warn("Request rejected", fields...)
		default:
			log.Debug("Request served", fields...)
		}
	}
}
