package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aithreya/learning-service/internal/middleware"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProgressService records the filters the handler builds from the query
// string; only List is reachable from these tests.
type stubProgressService struct {
	services.ProgressService
	gotFilters repositories.ProgressFilters
}

func (s *stubProgressService) List(_ context.Context, _ uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	s.gotFilters = filters
	return []*models.Progress{}, 0, nil
}

func listRequest(t *testing.T, query string) (*stubProgressService, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubProgressService{}
	handler := NewProgressHandler(stub, NewBaseHandler(utils.NewDevelopmentLogger()))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/progress/records"+query, nil)
	c.Set(middleware.ContextUserKey, &models.User{ID: uuid.New(), Role: models.RoleUser, IsActive: true})

	handler.List(c)
	return stub, rec
}

func TestProgressList_Filters(t *testing.T) {
	t.Run("bookmarked filter is forwarded", func(t *testing.T) {
		stub, rec := listRequest(t, "?bookmarked=true")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, stub.gotFilters.IsBookmarked)
		assert.True(t, *stub.gotFilters.IsBookmarked)
	})

	t.Run("bookmarked false is distinct from unset", func(t *testing.T) {
		stub, _ := listRequest(t, "?bookmarked=false")

		require.NotNil(t, stub.gotFilters.IsBookmarked)
		assert.False(t, *stub.gotFilters.IsBookmarked)
	})

	t.Run("status filter is forwarded", func(t *testing.T) {
		stub, _ := listRequest(t, "?status=in-progress")

		require.NotNil(t, stub.gotFilters.Status)
		assert.Equal(t, models.ProgressInProgress, *stub.gotFilters.Status)
	})

	t.Run("no filters leaves both unset", func(t *testing.T) {
		stub, _ := listRequest(t, "")

		assert.Nil(t, stub.gotFilters.IsBookmarked)
		assert.Nil(t, stub.gotFilters.Status)
	})
}
