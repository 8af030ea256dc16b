package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/aithreya/learning-service/internal/validator"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Spreadsheet layout for catalog import and export. Translation columns use
// the pattern body_<lang> and explanation_<lang>.
var exportBaseColumns = []string{
	"slug", "type", "title", "article_number", "part_number",
	"difficulty", "estimated_read_time", "keywords", "key_points",
}

type importExportService struct {
	repo      repositories.Repository
	logger    utils.Logger
	validator *validator.Validator
}

func NewImportExportService(repo repositories.Repository, logger utils.Logger, validator *validator.Validator) ImportExportService {
	return &importExportService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// ===== IMPORT =====

func (s *importExportService) ImportContent(ctx context.Context, data []byte) (*ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImportSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyImportSheet
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, col := range []string{"slug", "type", "title", "body_en"} {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrValidationFailed, col)
		}
	}

	result := &ImportResult{}
	for rowIndex, row := range rows[1:] {
		if err := s.importRow(ctx, row, headerMap, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowIndex+2, err))
		}
	}

	s.logger.InfoContext(ctx, "Content import finished",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)

	return result, nil
}

func (s *importExportService) importRow(ctx context.Context, row []string, headerMap map[string]int, result *ImportResult) error {
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	slug := cell("slug")
	if slug == "" {
		return errors.New("slug is empty")
	}
	title := cell("title")
	if title == "" {
		return errors.New("title is empty")
	}

	req := &CreateContentRequest{
		Slug:        slug,
		Type:        models.ContentType(cell("type")),
		Title:       title,
		Body:        models.Translations{},
		Explanation: models.Translations{},
	}
	for _, lang := range models.SupportedLanguages {
		if body := cell("body_" + lang); body != "" {
			req.Body[lang] = body
		}
		if expl := cell("explanation_" + lang); expl != "" {
			req.Explanation[lang] = expl
		}
	}
	if req.Body[models.DefaultLanguage] == "" {
		return errors.New("body_en is empty")
	}

	if v := cell("article_number"); v != "" {
		req.ArticleNumber = &v
	}
	if v := cell("part_number"); v != "" {
		req.PartNumber = &v
	}
	if v := cell("difficulty"); v != "" {
		req.Difficulty = models.DifficultyLevel(v)
	}
	if v := cell("estimated_read_time"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return fmt.Errorf("invalid estimated_read_time %q", v)
		}
		req.EstimatedReadTime = minutes
	}
	req.Keywords = splitList(cell("keywords"))
	req.KeyPoints = splitList(cell("key_points"))

	if err := s.validator.ValidateStruct(req); err != nil {
		return err
	}

	existing, err := s.repo.Content().GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if existing != nil && err == nil {
		existing.Title = req.Title
		existing.Type = req.Type
		existing.ArticleNumber = req.ArticleNumber
		existing.PartNumber = req.PartNumber
		existing.Body = datatypes.NewJSONType(req.Body)
		existing.Explanation = datatypes.NewJSONType(req.Explanation)
		existing.Keywords = datatypes.NewJSONSlice(req.Keywords)
		existing.KeyPoints = datatypes.NewJSONSlice(req.KeyPoints)
		if req.Difficulty != "" {
			existing.Difficulty = req.Difficulty
		}
		if req.EstimatedReadTime > 0 {
			existing.EstimatedReadTime = req.EstimatedReadTime
		}
		if err := s.repo.Content().Update(ctx, existing); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}
		result.Updated++
		return nil
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}
	readTime := req.EstimatedReadTime
	if readTime == 0 {
		readTime = 5
	}

	content := &models.Content{
		Slug:              req.Slug,
		Type:              req.Type,
		Title:             req.Title,
		ArticleNumber:     req.ArticleNumber,
		PartNumber:        req.PartNumber,
		Body:              datatypes.NewJSONType(req.Body),
		Explanation:       datatypes.NewJSONType(req.Explanation),
		Keywords:          datatypes.NewJSONSlice(req.Keywords),
		KeyPoints:         datatypes.NewJSONSlice(req.KeyPoints),
		Difficulty:        difficulty,
		EstimatedReadTime: readTime,
		IsActive:          true,
	}
	if err := s.repo.Content().Create(ctx, content); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}
	result.Created++
	return nil
}

// ===== EXPORT =====

func (s *importExportService) ExportContent(ctx context.Context, filters repositories.ContentFilters) ([]byte, error) {
	// Export everything matching the filters in one pass.
	filters.Limit = 0
	filters.Offset = 0
	contents, _, err := s.repo.Content().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Content"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := append([]string{}, exportBaseColumns...)
	for _, lang := range models.SupportedLanguages {
		headers = append(headers, "body_"+lang, "explanation_"+lang)
	}
	for i, header := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cellName, header)
	}

	for rowIdx, content := range contents {
		body := content.Body.Data()
		explanation := content.Explanation.Data()

		values := []interface{}{
			content.Slug,
			string(content.Type),
			content.Title,
			deref(content.ArticleNumber),
			deref(content.PartNumber),
			string(content.Difficulty),
			content.EstimatedReadTime,
			strings.Join(content.Keywords, ","),
			strings.Join(content.KeyPoints, ";"),
		}
		for _, lang := range models.SupportedLanguages {
			values = append(values, body[lang], explanation[lang])
		}

		for colIdx, value := range values {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cellName, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Content exported", "rows", len(contents))
	return buf.Bytes(), nil
}

// ===== HELPERS =====

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	sep := ","
	if strings.Contains(value, ";") {
		sep = ";"
	}
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
