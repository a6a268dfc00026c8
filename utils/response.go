package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notesvc/apperror"
)

type Response struct {
	Status       int    `json:"-"`                       // HTTP status code
	Error        string `json:"error,omitempty"`         // Error message
	RequiredTier string `json:"required_tier,omitempty"` // Tier a 403 asks for
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

// Forbidden names the tier the caller is missing.
func Forbidden(c *gin.Context, message, requiredTier string) {
	c.AbortWithStatusJSON(http.StatusForbidden, &Response{
		Status:       http.StatusForbidden,
		Error:        message,
		RequiredTier: requiredTier,
	})
}

// RespondError writes the response for err. Classified errors show their
// message; anything else is logged and answered with a generic 500 so query
// text and parameters never reach the client.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindDatabase {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(err),
		)
		InternalError(c, "Internal Server Error")
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		BadRequest(c, appErr.Message)
	case apperror.KindUnauthenticated:
		Unauthorized(c, appErr.Message)
	case apperror.KindForbidden:
		Forbidden(c, appErr.Message, appErr.RequiredTier)
	case apperror.KindNotFound:
		NotFound(c, appErr.Message)
	default:
		InternalError(c, "Internal Server Error")
	}
}

// RequestIDKey is the gin context key of the request id.
const RequestIDKey = "request_id"
