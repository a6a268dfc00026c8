package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"notesvc/utils"
)

const idKey = "id"

// ValidateIDParam rejects a :id path segment that is not a positive integer
// and stores the parsed value for the handler.
func ValidateIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			utils.BadRequest(c, "id must be a positive integer")
			return
		}
		c.Set(idKey, id)
		c.Next()
	}
}

// PathID returns the id stored by ValidateIDParam.
func PathID(c *gin.Context) int64 {
	return c.GetInt64(idKey)
}
