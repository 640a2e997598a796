package auth

import (
	"context"
	"net/http"
	"strings"

	"caregiver-shifts-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the principal on the gin and request contexts
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		SetPrincipal(c, claims.Principal())
		c.Next()
	}
}

// RequireRole rejects principals whose role is not listed. It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
		c.Abort()
	}
}

// SetPrincipal stores p on the gin context and tags the request context for logging
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalContextKey, p)

	ctx := context.WithValue(c.Request.Context(), logger.PrincipalKey, p.Subject)
	ctx = context.WithValue(ctx, logger.RoleKey, string(p.Role))
	c.Request = c.Request.WithContext(ctx)
}

// GetPrincipal is a helper function to extract the authenticated principal from context
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}
