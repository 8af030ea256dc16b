package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService serves GetProfile from an in-memory user map; the other
// operations are never reached by the middleware.
type stubAuthService struct {
	services.AuthService
	users map[uuid.UUID]*models.User
}

func (s *stubAuthService) GetProfile(_ context.Context, userID uuid.UUID) (*models.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, services.ErrAccountDisabled
	}
	return user, nil
}

func newTestRouter(t *testing.T, user *models.User) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService("test-secret", time.Hour, 24*time.Hour)
	auth := NewAuthMiddleware(tokens, &stubAuthService{users: map[uuid.UUID]*models.User{user.ID: user}})

	router := gin.New()
	router.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin-only", auth.RequireAuth(), auth.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/managed", auth.RequireAuth(), auth.RequireRole(models.RoleEducator, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/optional", auth.OptionalAuth(), func(c *gin.Context) {
		if user, ok := CurrentUser(c); ok {
			c.String(http.StatusOK, string(user.Role))
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	token, err := tokens.GenerateAccessToken(user.ID)
	require.NoError(t, err)
	return router, token
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: models.RoleUser, IsActive: true}
	router, token := newTestRouter(t, user)

	t.Run("valid token passes", func(t *testing.T) {
		rec := doRequest(router, "/protected", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec := doRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not authorized")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := doRequest(router, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for an unknown user is rejected", func(t *testing.T) {
		other := services.NewTokenService("test-secret", time.Hour, 24*time.Hour)
		stranger, err := other.GenerateAccessToken(uuid.New())
		require.NoError(t, err)

		rec := doRequest(router, "/protected", stranger)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("plain user is forbidden from admin routes", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Role: models.RoleUser, IsActive: true}
		router, token := newTestRouter(t, user)

		rec := doRequest(router, "/admin-only", token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "role user is not authorized")
	})

	t.Run("educator passes a multi-role gate", func(t *testing.T) {
		educator := &models.User{ID: uuid.New(), Role: models.RoleEducator, IsActive: true}
		router, token := newTestRouter(t, educator)

		rec := doRequest(router, "/managed", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin, IsActive: true}
		router, token := newTestRouter(t, admin)

		rec := doRequest(router, "/admin-only", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: models.RoleEducator, IsActive: true}
	router, token := newTestRouter(t, user)

	t.Run("valid token attaches the user", func(t *testing.T) {
		rec := doRequest(router, "/optional", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "educator", rec.Body.String())
	})

	t.Run("no token degrades to anonymous", func(t *testing.T) {
		rec := doRequest(router, "/optional", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("bad token degrades to anonymous", func(t *testing.T) {
		rec := doRequest(router, "/optional", "not-a-jwt")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

func TestDeactivatedUserIsRejected(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: models.RoleUser, IsActive: false}
	router, token := newTestRouter(t, user)

	rec := doRequest(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
