package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/cookie"
	"rental-marketplace/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxActorKey    = "actor"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
// Guest checkout depends on this.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			slog.Debug("ignoring invalid token on optional auth route", "error", err.Error())
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !role.AtLeast(minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// only access tokens authenticate requests; refresh tokens go to /auth/refresh
func (m *AuthMiddleware) validate(token string) (*jwt.Claims, error) {
	claims, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, jwt.ErrInvalidToken
	}
	return claims, nil
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	role := user.Role(claims.Role)
	c.Set(ctxUserIDKey, claims.UserID)
	c.Set(ctxUserRoleKey, role)
	c.Set(ctxActorKey, &auth.Actor{
		UserID:   claims.UserID,
		Role:     role,
		TenantID: claims.TenantID,
	})
}

// SetActor installs a caller identity directly; handler tests use it in place of token auth
func SetActor(c *gin.Context, actor *auth.Actor) {
	c.Set(ctxUserIDKey, actor.UserID)
	c.Set(ctxUserRoleKey, actor.Role)
	c.Set(ctxActorKey, actor)
}

// GetActor returns the caller, or an unauthenticated actor for guests
func GetActor(c *gin.Context) *auth.Actor {
	if v, exists := c.Get(ctxActorKey); exists {
		if actor, ok := v.(*auth.Actor); ok {
			return actor
		}
	}
	return &auth.Actor{}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
