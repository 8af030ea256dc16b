package repositories

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/google/uuid"
)

// ContentRepository provides access to the multilingual content catalog.
type ContentRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error)
	GetBySlug(ctx context.Context, slug string) (*models.Content, error)
	GetByArticleNumber(ctx context.Context, articleNumber string) (*models.Content, error)
	Update(ctx context.Context, content *models.Content) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Query operations
	List(ctx context.Context, filters ContentFilters) ([]*models.Content, int64, error)
	ListByType(ctx context.Context, contentType models.ContentType) ([]*models.Content, error)
	GetPreamble(ctx context.Context) (*models.Content, error)

	// Search performs a relevance-ranked text search over title, English
	// body/explanation and keywords.
	Search(ctx context.Context, query string, filters ContentFilters) ([]*models.Content, error)

	// Analytics
	IncrementViews(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

// CaseStudyRepository provides access to landmark case summaries.
type CaseStudyRepository interface {
	Create(ctx context.Context, caseStudy *models.CaseStudy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error)
	List(ctx context.Context, filters CaseStudyFilters) ([]*models.CaseStudy, int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
