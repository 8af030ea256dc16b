package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aithreya/learning-service/internal/cache"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/aithreya/learning-service/internal/validator"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const contentCacheTTL = 10 * time.Minute

type contentService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	logger    utils.Logger
	validator *validator.Validator
}

func NewContentService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	logger utils.Logger,
	validator *validator.Validator,
) ContentService {
	return &contentService{
		repo:      repo,
		cache:     cacheService,
		logger:    logger,
		validator: validator,
	}
}

// ===== READ OPERATIONS =====

func (s *contentService) List(ctx context.Context, filters repositories.ContentFilters) ([]*models.Content, int64, error) {
	return s.repo.Content().List(ctx, filters)
}

func (s *contentService) GetBySlug(ctx context.Context, slug string) (*models.Content, error) {
	var cached models.Content
	cacheKey := "content:slug:" + slug
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		// View counting still happens on cache hits.
		if err := s.repo.Content().IncrementViews(ctx, cached.ID); err != nil {
			s.logger.WarnContext(ctx, "Failed to increment views", "content_id", cached.ID, "error", err)
		}
		return &cached, nil
	}

	content, err := s.repo.Content().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	if err := s.repo.Content().IncrementViews(ctx, content.ID); err != nil {
		s.logger.WarnContext(ctx, "Failed to increment views", "content_id", content.ID, "error", err)
	}

	if err := s.cache.Set(ctx, cacheKey, content, contentCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache content", "slug", slug, "error", err)
	}

	return content, nil
}

func (s *contentService) GetByArticleNumber(ctx context.Context, articleNumber string) (*models.Content, error) {
	content, err := s.repo.Content().GetByArticleNumber(ctx, articleNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if err := s.repo.Content().IncrementViews(ctx, content.ID); err != nil {
		s.logger.WarnContext(ctx, "Failed to increment views", "content_id", content.ID, "error", err)
	}
	return content, nil
}

func (s *contentService) GetLocalized(ctx context.Context, slug, language string) (*models.LocalizedContent, error) {
	if language == "" {
		language = models.DefaultLanguage
	}
	if !isSupportedLanguage(language) {
		return nil, ErrUnsupportedLang
	}

	content, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	localized := content.Localize(language)
	return &localized, nil
}

func (s *contentService) ListByType(ctx context.Context, contentType models.ContentType) ([]*models.Content, error) {
	var cached []*models.Content
	cacheKey := "content:type:" + string(contentType)
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	contents, err := s.repo.Content().ListByType(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, contents, contentCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Failed to cache content listing", "type", contentType, "error", err)
	}
	return contents, nil
}

func (s *contentService) GetPreamble(ctx context.Context) (*models.Content, error) {
	content, err := s.repo.Content().GetPreamble(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get preamble: %w", err)
	}
	return content, nil
}

func (s *contentService) Search(ctx context.Context, query string, filters repositories.ContentFilters) ([]*models.Content, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrBadRequest)
	}

	results, err := s.repo.Content().Search(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return results, nil
}

// ===== CASE STUDIES =====

func (s *contentService) ListCaseStudies(ctx context.Context, filters repositories.CaseStudyFilters) ([]*models.CaseStudy, int64, error) {
	return s.repo.CaseStudy().List(ctx, filters)
}

func (s *contentService) GetCaseStudy(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error) {
	caseStudy, err := s.repo.CaseStudy().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseStudyNotFound
		}
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}

	if err := s.repo.CaseStudy().IncrementViews(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "Failed to increment case study views", "case_study_id", id, "error", err)
	}
	return caseStudy, nil
}

// ===== ADMIN OPERATIONS =====

func (s *contentService) Create(ctx context.Context, req *CreateContentRequest) (*models.Content, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Body[models.DefaultLanguage] == "" {
		return nil, fmt.Errorf("%w: body must include an English entry", ErrValidationFailed)
	}

	if _, err := s.repo.Content().GetBySlug(ctx, req.Slug); err == nil {
		return nil, ErrDuplicateSlug
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	readTime := req.EstimatedReadTime
	if readTime == 0 {
		readTime = 5
	}

	now := time.Now()
	content := &models.Content{
		Slug:              req.Slug,
		Type:              req.Type,
		Title:             req.Title,
		ShortTitle:        req.ShortTitle,
		ArticleNumber:     req.ArticleNumber,
		Body:              datatypes.NewJSONType(req.Body),
		Explanation:       datatypes.NewJSONType(req.Explanation),
		KeyPoints:         datatypes.NewJSONSlice(req.KeyPoints),
		Keywords:          datatypes.NewJSONSlice(req.Keywords),
		PartNumber:        req.PartNumber,
		PartTitle:         req.PartTitle,
		ChapterTitle:      req.ChapterTitle,
		Difficulty:        difficulty,
		EstimatedReadTime: readTime,
		AudioURL:          req.AudioURL,
		VideoURL:          req.VideoURL,
		ImageURL:          req.ImageURL,
		IsActive:          true,
		PublishedAt:       &now,
	}

	if err := s.repo.Content().Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	s.logger.InfoContext(ctx, "Content created", "content_id", content.ID, "slug", content.Slug)
	s.invalidateContentCache(ctx)
	return content, nil
}

func (s *contentService) Update(ctx context.Context, id uuid.UUID, req *UpdateContentRequest) (*models.Content, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	content, err := s.repo.Content().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.ShortTitle != nil {
		content.ShortTitle = req.ShortTitle
	}
	if req.Body != nil {
		if req.Body[models.DefaultLanguage] == "" {
			return nil, fmt.Errorf("%w: body must include an English entry", ErrValidationFailed)
		}
		content.Body = datatypes.NewJSONType(req.Body)
	}
	if req.Explanation != nil {
		content.Explanation = datatypes.NewJSONType(req.Explanation)
	}
	if req.KeyPoints != nil {
		content.KeyPoints = datatypes.NewJSONSlice(req.KeyPoints)
	}
	if req.Keywords != nil {
		content.Keywords = datatypes.NewJSONSlice(req.Keywords)
	}
	if req.Difficulty != nil {
		content.Difficulty = *req.Difficulty
	}
	if req.EstimatedReadTime != nil {
		content.EstimatedReadTime = *req.EstimatedReadTime
	}
	if req.AudioURL != nil {
		content.AudioURL = req.AudioURL
	}
	if req.VideoURL != nil {
		content.VideoURL = req.VideoURL
	}
	if req.ImageURL != nil {
		content.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		content.IsActive = *req.IsActive
	}

	if err := s.repo.Content().Update(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	s.logger.InfoContext(ctx, "Content updated", "content_id", content.ID)
	s.invalidateContentCache(ctx)
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Content().GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("failed to get content: %w", err)
	}

	if err := s.repo.Content().SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}

	s.logger.InfoContext(ctx, "Content deactivated", "content_id", id)
	s.invalidateContentCache(ctx)
	return nil
}

// ===== HELPERS =====

func (s *contentService) invalidateContentCache(ctx context.Context) {
	if err := s.cache.DeleteByPattern(ctx, "content:*"); err != nil {
		s.logger.WarnContext(ctx, "Failed to invalidate content cache", "error", err)
	}
}

func isSupportedLanguage(code string) bool {
	for _, lang := range models.SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}
