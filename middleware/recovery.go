package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/utils"
)

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("panic", err),
					zap.String("request_id", c.GetString(utils.RequestIDKey)),
					zap.String("route", c.FullPath()),
					zap.Stack("stack"),
				)
				utils.TrackError("panic", "recovered")
				utils.InternalError(c, "Internal Server Error")
			}
		}()
		c.Next()
	}
}
