package middleware

import (
	"net/http"
	"strings"

	"shuttlelink/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "auth_user_id"
	userRoleKey = "auth_user_role"
)

// bearerToken pulls the token from the Authorization header or, for
// WebSocket upgrades where browsers cannot set headers, from ?token=.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

// Auth rejects requests without a valid token.
func Auth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		userID, role, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// RequireRole gates a group to specific roles; admins pass everywhere.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]bool{"admin": true}
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role, _ := c.Get(userRoleKey)
		if s, ok := role.(string); !ok || !allowed[s] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// AuthUserID returns the authenticated user's id, zero when anonymous.
func AuthUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
