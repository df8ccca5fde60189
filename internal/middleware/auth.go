package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/auth"
	"github.com/hometrack/hometrack-api/internal/constants"
	apierrors "github.com/hometrack/hometrack-api/internal/errors"
)

// RequireAuth checks the bearer token and stores the caller's user id in the
// context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "Authorization token required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
		if tokenString == "" {
			apierrors.Unauthorized(c, "Authorization token required")
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
