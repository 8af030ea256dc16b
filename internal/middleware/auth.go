package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ContextUserKey is the gin context key holding the authenticated user.
	ContextUserKey = "current_user"
)

// AuthMiddleware resolves bearer tokens into users for route handlers.
type AuthMiddleware struct {
	tokens services.TokenService
	users  services.AuthService
}

func NewAuthMiddleware(tokens services.TokenService, users services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// RequireAuth rejects requests without a valid access token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.resolveUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized to access this route",
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRole allows only the listed roles past. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized to access this route",
			})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "User role " + string(user.Role) + " is not authorized to access this route",
		})
	}
}

// OptionalAuth attaches the user when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := m.resolveUser(c); err == nil {
			c.Set(ContextUserKey, user)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolveUser(c *gin.Context) (*models.User, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, services.ErrUnauthorized
	}
	token := strings.TrimPrefix(header, "Bearer ")

	userID, err := m.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := m.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentUserID is a convenience accessor for handlers that only need the ID.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
