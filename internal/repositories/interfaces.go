package repositories

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
)

// Repository aggregates all entity repositories and owns transaction scope.
type Repository interface {
	User() UserRepository
	Content() ContentRepository
	CaseStudy() CaseStudyRepository
	Progress() ProgressRepository

	// WithTransaction runs fn against a Repository bound to a single
	// database transaction, committing on nil and rolling back on error.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// ===== SHARED FILTER STRUCTS =====

type ContentFilters struct {
	Type       *models.ContentType     `json:"type"`
	Difficulty *models.DifficultyLevel `json:"difficulty"`
	PartNumber *string                 `json:"part_number"`
	Limit      int                     `json:"limit"`
	Offset     int                     `json:"offset"`
	SortBy     string                  `json:"sort_by"`    // "created_at", "title", "article_number", "views"
	SortOrder  string                  `json:"sort_order"` // "asc", "desc"
}

type CaseStudyFilters struct {
	Category   *models.CaseCategory    `json:"category"`
	Difficulty *models.DifficultyLevel `json:"difficulty"`
	Year       *int                    `json:"year"`
	Limit      int                     `json:"limit"`
	Offset     int                     `json:"offset"`
}

type ProgressFilters struct {
	Status       *models.ProgressStatus `json:"status"`
	IsBookmarked *bool                  `json:"is_bookmarked"`
	Limit        int                    `json:"limit"`
	Offset       int                    `json:"offset"`
	SortBy       string                 `json:"sort_by"`    // "last_accessed_at", "bookmarked_at", "completed_at"
	SortOrder    string                 `json:"sort_order"` // "asc", "desc"
}

// ===== SHARED STATISTICS STRUCTS =====

// OverallProgress aggregates one user's learning state across all records.
type OverallProgress struct {
	TotalContent      int     `json:"total_content"`
	CompletedContent  int     `json:"completed_content"`
	InProgressContent int     `json:"in_progress_content"`
	BookmarkedContent int     `json:"bookmarked_content"`
	TotalTimeSpent    int64   `json:"total_time_spent"`
	AverageScore      float64 `json:"average_score"`
}
