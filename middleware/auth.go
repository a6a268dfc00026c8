package middleware

import (
	"github.com/gin-gonic/gin"

	"notesvc/services"
	"notesvc/utils"
)

const tierKey = "tiers"

// RequireTier admits requests whose bearer token grants tier. A missing or
// unrecognized token is 401; a recognized token without the tier is 403
// naming the tier.
func RequireTier(keys *services.AccessKeys, tier services.Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := services.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.TrackAuthAttempt("unauthenticated", tier.String())
			utils.Unauthorized(c, "Missing or invalid token")
			return
		}

		granted := keys.Resolve(token)
		if granted.Empty() {
			utils.TrackAuthAttempt("unauthenticated", tier.String())
			utils.Unauthorized(c, "Invalid token")
			return
		}
		if !granted.Has(tier) {
			utils.TrackAuthAttempt("forbidden", tier.String())
			utils.Forbidden(c, "forbidden", tier.String())
			return
		}

		utils.TrackAuthAttempt("success", tier.String())
		c.Set(tierKey, tier.String())
		c.Next()
	}
}
