package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notesvc/utils"
)

// RequestTracingMiddleware tags every request with an id. A well-formed
// X-Request-ID from the caller is kept.
func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(utils.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
