package middleware

import (
	"strconv"

	"github.com/ds3-project/ds3-backend/internal/constants"
	"github.com/gin-gonic/gin"
)

// Identity resolves the caller's user ID for the request from the X-User-ID
// header, falling back to the default identity. There is no authentication;
// swapping in a real auth scheme later only touches this middleware.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := constants.DefaultUserID
		if raw := c.GetHeader(constants.HeaderUserID); raw != "" {
			if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
				userID = parsed
			}
		}
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
