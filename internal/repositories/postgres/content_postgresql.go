package postgres

import (
	"context"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewContentPostgreSQL(db *gorm.DB) repositories.ContentRepository {
	return &ContentPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (c *ContentPostgreSQL) Create(ctx context.Context, content *models.Content) error {
	return c.db.WithContext(ctx).Create(content).Error
}

func (c *ContentPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := c.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *ContentPostgreSQL) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	var content models.Content
	if err := c.db.WithContext(ctx).
		Where("slug = ? AND is_active = true", slug).
		First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *ContentPostgreSQL) GetByArticleNumber(ctx context.Context, articleNumber string) (*models.Content, error) {
	var content models.Content
	if err := c.db.WithContext(ctx).
		Where("article_number = ? AND type = ? AND is_active = true", articleNumber, models.ContentArticle).
		First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (c *ContentPostgreSQL) Update(ctx context.Context, content *models.Content) error {
	return c.db.WithContext(ctx).Save(content).Error
}

func (c *ContentPostgreSQL) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (c *ContentPostgreSQL) List(ctx context.Context, filters repositories.ContentFilters) ([]*models.Content, int64, error) {
	var contents []*models.Content
	var total int64

	// apply filters first
	query := c.db.WithContext(ctx).Model(&models.Content{}).Where("is_active = true")
	query = c.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = c.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset,
		"article_number", "created_at", "title", "views")

	if err := query.Find(&contents).Error; err != nil {
		return nil, 0, err
	}

	return contents, total, nil
}

func (c *ContentPostgreSQL) ListByType(ctx context.Context, contentType models.ContentType) ([]*models.Content, error) {
	var contents []*models.Content
	if err := c.db.WithContext(ctx).
		Where("type = ? AND is_active = true", contentType).
		Order("article_number ASC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *ContentPostgreSQL) GetPreamble(ctx context.Context) (*models.Content, error) {
	var content models.Content
	if err := c.db.WithContext(ctx).
		Where("type = ? AND is_active = true", models.ContentPreamble).
		First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// Search matches the query against title, article number, keywords and the
// English body text, ranking title matches first.
func (c *ContentPostgreSQL) Search(ctx context.Context, query string, filters repositories.ContentFilters) ([]*models.Content, error) {
	var contents []*models.Content
	pattern := "%" + query + "%"

	q := c.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("is_active = true").
		Where(
			c.db.Where("title ILIKE ?", pattern).
				Or("article_number ILIKE ?", pattern).
				Or("keywords::text ILIKE ?", pattern).
				Or("body->>'en' ILIKE ?", pattern),
		)
	q = c.applyFilters(q, filters)

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	if err := q.
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN title ILIKE ? THEN 0 ELSE 1 END, views DESC",
			Vars:               []interface{}{pattern},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Offset(filters.Offset).
		Find(&contents).Error; err != nil {
		return nil, err
	}

	return contents, nil
}

func (c *ContentPostgreSQL) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return c.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (c *ContentPostgreSQL) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("is_active = true").
		Count(&count).Error
	return count, err
}

func (c *ContentPostgreSQL) applyFilters(query *gorm.DB, filters repositories.ContentFilters) *gorm.DB {
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}
	if filters.PartNumber != nil {
		query = query.Where("part_number = ?", *filters.PartNumber)
	}
	return query
}
