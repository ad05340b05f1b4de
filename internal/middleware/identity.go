package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/hazuki/health-log-api/internal/constants"
)

// Identity resolves the acting user for every request. A session value set
// by an auth layer wins; without one, requests run as the configured
// default principal (there is no real multi-tenant auth yet, but handlers
// never hardcode a user id).
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := defaultUserID

		session := sessions.Default(c)
		if v, ok := session.Get(constants.SessionKeyUserID).(string); ok && v != "" {
			userID = v
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
