package middleware

import (
	"net/http"
	"strings"

	"barberpro/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const (
	// ContextSubjectKey holds the authenticated subject (user or provider ID).
	ContextSubjectKey = "authSubject"
	// ContextRoleKey holds the authenticated role ("client" or "provider").
	ContextRoleKey = "authRole"
)

// JWTAuth validates the bearer token and stores the subject and role on the
// request context. When optional is true, requests without a token pass
// through unauthenticated.
func JWTAuth(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := utils.ValidateToken(raw)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		if sub, ok := claims["sub"].(string); ok {
			c.Set(ContextSubjectKey, sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(ContextRoleKey, role)
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got := c.GetString(ContextRoleKey); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
