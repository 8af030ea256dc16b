package postgres

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

// GetOrCreate inserts a fresh not-started record for the pair. The insert
// uses ON CONFLICT DO NOTHING against the (user_id, content_id) unique index
// so a concurrent first access never fails; both callers then read the same
// surviving row.
func (p *ProgressPostgreSQL) GetOrCreate(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	record := &models.Progress{
		UserID:    userID,
		ContentID: contentID,
		Status:    models.ProgressNotStarted,
	}
	if err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
			DoNothing: true,
		}).
		Create(record).Error; err != nil {
		return nil, err
	}

	return p.GetByUserAndContent(ctx, userID, contentID)
}

func (p *ProgressPostgreSQL) GetByUserAndContent(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	var progress models.Progress
	if err := p.db.WithContext(ctx).
		Preload("QuizAttempts").
		Preload("Notes").
		Preload("Highlights").
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (p *ProgressPostgreSQL) Update(ctx context.Context, progress *models.Progress) error {
	// Child rows are persisted through their own Add methods.
	return p.db.WithContext(ctx).
		Omit("QuizAttempts", "Notes", "Highlights").
		Save(progress).Error
}

func (p *ProgressPostgreSQL) AddQuizAttempt(ctx context.Context, attempt *models.QuizAttempt) error {
	return p.db.WithContext(ctx).Create(attempt).Error
}

func (p *ProgressPostgreSQL) AddNote(ctx context.Context, note *models.Note) error {
	return p.db.WithContext(ctx).Create(note).Error
}

func (p *ProgressPostgreSQL) AddHighlight(ctx context.Context, highlight *models.Highlight) error {
	return p.db.WithContext(ctx).Create(highlight).Error
}

func (p *ProgressPostgreSQL) List(ctx context.Context, userID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	var records []*models.Progress
	var total int64

	query := p.db.WithContext(ctx).Model(&models.Progress{}).Where("user_id = ?", userID)
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.IsBookmarked != nil {
		query = query.Where("is_bookmarked = ?", *filters.IsBookmarked)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = p.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset,
		"last_accessed_at", "bookmarked_at", "completed_at", "created_at")

	if err := query.Preload("Content").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (p *ProgressPostgreSQL) GetBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Progress, int64, error) {
	bookmarked := true
	return p.List(ctx, userID, repositories.ProgressFilters{
		IsBookmarked: &bookmarked,
		Limit:        limit,
		Offset:       offset,
		SortBy:       "bookmarked_at",
		SortOrder:    "desc",
	})
}

func (p *ProgressPostgreSQL) GetOverall(ctx context.Context, userID uuid.UUID) (*repositories.OverallProgress, error) {
	var overall repositories.OverallProgress

	// Aggregate stats in single query
	err := p.db.WithContext(ctx).
		Model(&models.Progress{}).
		Where("user_id = ?", userID).
		Select(`COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_bookmarked = true THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(time_spent), 0),
			COALESCE(AVG(CASE WHEN EXISTS (
				SELECT 1 FROM quiz_attempts
				WHERE quiz_attempts.progress_id = progress_records.id
			) THEN best_score END), 0)`).
		Row().Scan(
		&overall.TotalContent,
		&overall.CompletedContent,
		&overall.InProgressContent,
		&overall.BookmarkedContent,
		&overall.TotalTimeSpent,
		&overall.AverageScore,
	)
	if err != nil {
		return nil, err
	}

	return &overall, nil
}
