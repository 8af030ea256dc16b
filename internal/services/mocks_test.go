package services

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, content *models.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) GetByArticleNumber(ctx context.Context, articleNumber string) (*models.Content, error) {
	args := m.Called(ctx, articleNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, content *models.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) List(ctx context.Context, filters repositories.ContentFilters) ([]*models.Content, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Content), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) ListByType(ctx context.Context, contentType models.ContentType) ([]*models.Content, error) {
	args := m.Called(ctx, contentType)
	return args.Get(0).([]*models.Content), args.Error(1)
}

func (m *MockContentRepository) GetPreamble(ctx context.Context) (*models.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) Search(ctx context.Context, query string, filters repositories.ContentFilters) ([]*models.Content, error) {
	args := m.Called(ctx, query, filters)
	return args.Get(0).([]*models.Content), args.Error(1)
}

func (m *MockContentRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCaseStudyRepository is a mock implementation of CaseStudyRepository
type MockCaseStudyRepository struct {
	mock.Mock
}

func (m *MockCaseStudyRepository) Create(ctx context.Context, caseStudy *models.CaseStudy) error {
	args := m.Called(ctx, caseStudy)
	return args.Error(0)
}

func (m *MockCaseStudyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) List(ctx context.Context, filters repositories.CaseStudyFilters) ([]*models.CaseStudy, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.CaseStudy), args.Get(1).(int64), args.Error(2)
}

func (m *MockCaseStudyRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetOrCreate(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	args := m.Called(ctx, userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) GetByUserAndContent(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	args := m.Called(ctx, userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, progress *models.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockProgressRepository) AddNote(ctx context.Context, note *models.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockProgressRepository) AddHighlight(ctx context.Context, highlight *models.Highlight) error {
	args := m.Called(ctx, highlight)
	return args.Error(0)
}

func (m *MockProgressRepository) List(ctx context.Context, userID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	args := m.Called(ctx, userID, filters)
	return args.Get(0).([]*models.Progress), args.Get(1).(int64), args.Error(2)
}

func (m *MockProgressRepository) GetBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Progress, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*models.Progress), args.Get(1).(int64), args.Error(2)
}

func (m *MockProgressRepository) GetOverall(ctx context.Context, userID uuid.UUID) (*repositories.OverallProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.OverallProgress), args.Error(1)
}

// mockRepository bundles the entity mocks behind the Repository manager
// interface. WithTransaction runs the callback against the same mocks.
type mockRepository struct {
	user      *MockUserRepository
	content   *MockContentRepository
	caseStudy *MockCaseStudyRepository
	progress  *MockProgressRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		user:      new(MockUserRepository),
		content:   new(MockContentRepository),
		caseStudy: new(MockCaseStudyRepository),
		progress:  new(MockProgressRepository),
	}
}

func (m *mockRepository) User() repositories.UserRepository           { return m.user }
func (m *mockRepository) Content() repositories.ContentRepository     { return m.content }
func (m *mockRepository) CaseStudy() repositories.CaseStudyRepository { return m.caseStudy }
func (m *mockRepository) Progress() repositories.ProgressRepository   { return m.progress }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

func (m *mockRepository) assertExpectations(t mock.TestingT) {
	m.user.AssertExpectations(t)
	m.content.AssertExpectations(t)
	m.caseStudy.AssertExpectations(t)
	m.progress.AssertExpectations(t)
}
