package postgres

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseStudyPostgreSQL struct {
	db *gorm.DB
}

func NewCaseStudyPostgreSQL(db *gorm.DB) repositories.CaseStudyRepository {
	return &CaseStudyPostgreSQL{db: db}
}

func (c *CaseStudyPostgreSQL) Create(ctx context.Context, caseStudy *models.CaseStudy) error {
	return c.db.WithContext(ctx).Create(caseStudy).Error
}

func (c *CaseStudyPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	var caseStudy models.CaseStudy
	if err := c.db.WithContext(ctx).
		Preload("RelatedContent").
		First(&caseStudy, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &caseStudy, nil
}

func (c *CaseStudyPostgreSQL) List(ctx context.Context, filters repositories.CaseStudyFilters) ([]*models.CaseStudy, int64, error) {
	var caseStudies []*models.CaseStudy
	var total int64

	query := c.db.WithContext(ctx).Model(&models.CaseStudy{}).Where("is_active = true")
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}
	if filters.Year != nil {
		query = query.Where("year = ?", *filters.Year)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("year DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&caseStudies).Error; err != nil {
		return nil, 0, err
	}

	return caseStudies, total, nil
}

func (c *CaseStudyPostgreSQL) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).
		Model(&models.CaseStudy{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
