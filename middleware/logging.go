package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/utils"
)

// RequestLogger writes one structured line per request. The query string is
// left out since it carries search text.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		client, os, device := utils.ParseUserAgent(c.Request.UserAgent())
		fields := []zap.Field{
			zap.String("request_id", c.GetString(utils.RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("size", c.Writer.Size()),
			zap.String("client", client),
			zap.String("os", os),
			zap.String("device", device),
		}
		if tier := c.GetString(tierKey); tier != "" {
			fields = append(fields, zap.String("tier", tier))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
