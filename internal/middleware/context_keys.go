package middleware

import (
	"github.com/flourmill/mill_ledger/internal/platform/authctx"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the Gin context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if user := authctx.FromContext(c.Request.Context()); user != nil {
			return user.ID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}
