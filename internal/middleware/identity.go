package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/auth"
)

// UserIDKey is the context key under which the resolved user ID is stored.
const UserIDKey = "user_id"

// TokenKey is the context key under which the verified raw token is stored.
const TokenKey = "auth_token"

func tokenFromHeader(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	for _, prefix := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, prefix) {
			return strings.TrimPrefix(header, prefix)
		}
	}
	return ""
}

// AuthRequired resolves the acting user from the Authorization header and
// aborts with 401 when no valid token is present.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromHeader(c)
		if tokenString == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

// AuthOptional resolves the acting user when a valid token is present and
// continues anonymously otherwise.
func AuthOptional(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromHeader(c); tokenString != "" {
			if userID, err := tokens.Verify(tokenString); err == nil {
				c.Set(UserIDKey, userID)
				c.Set(TokenKey, tokenString)
			}
		}
		c.Next()
	}
}

// GetUserID retrieves the resolved user ID from the gin context; empty when
// the request is anonymous.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
