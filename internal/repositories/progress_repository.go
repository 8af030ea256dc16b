package repositories

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/google/uuid"
)

// ProgressRepository provides access to per-(user, content) progress records.
type ProgressRepository interface {
	// GetOrCreate returns the record for the pair, creating a fresh
	// not-started record when none exists. Creation is guarded against
	// concurrent first access: a racer losing the unique-index insert
	// re-reads the winner's row instead of failing.
	GetOrCreate(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error)

	// GetByUserAndContent is the direct lookup; missing records are an error.
	GetByUserAndContent(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error)

	Update(ctx context.Context, progress *models.Progress) error

	// Child collections
	AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error
	AddNote(ctx context.Context, note *models.Note) error
	AddHighlight(ctx context.Context, highlight *models.Highlight) error

	// Query operations
	List(ctx context.Context, userID uuid.UUID, filters ProgressFilters) ([]*models.Progress, int64, error)
	GetBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Progress, int64, error)

	// GetOverall aggregates counts, time and mean best score in one query.
	GetOverall(ctx context.Context, userID uuid.UUID) (*OverallProgress, error)
}
