package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	scopeKey = "auth_scope"
	tokenKey = "auth_token"
)

// ResolveScope extracts the caller's scope from the Authorization header and
// stores it in the request context. Requests without a valid bearer token get
// an anonymous scope; the role gates decide whether that is acceptable.
func ResolveScope(service *Service, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(scopeKey, Anonymous())

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		token := parts[1]

		claims, err := service.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		if sessions != nil {
			if err := sessions.Validate(c.Request.Context(), token); err != nil {
				c.Next()
				return
			}
		}

		c.Set(scopeKey, Identified(claims.UserID, claims.Role))
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireRole rejects requests whose scope lacks one of the allowed roles.
// Rejection happens before any handler side effect.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := ScopeFrom(c)
		if !scope.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// ScopeFrom returns the scope resolved for the current request
func ScopeFrom(c *gin.Context) Scope {
	if v, ok := c.Get(scopeKey); ok {
		if scope, ok := v.(Scope); ok {
			return scope
		}
	}
	return Anonymous()
}

// TokenFrom returns the bearer token of the current request, if any
func TokenFrom(c *gin.Context) string {
	return c.GetString(tokenKey)
}
