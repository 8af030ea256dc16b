package handlers

import (
	"io"
	"net/http"

	"github.com/aithreya/learning-service/internal/middleware"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImportSize = 10 << 20 // 10 MiB

type ContentHandler struct {
	BaseHandler
	content      services.ContentService
	importExport services.ImportExportService
}

func NewContentHandler(content services.ContentService, importExport services.ImportExportService, base BaseHandler) *ContentHandler {
	return &ContentHandler{
		BaseHandler:  base,
		content:      content,
		importExport: importExport,
	}
}

// List handles GET /api/v1/content
func (h *ContentHandler) List(c *gin.Context) {
	p := h.ParsePagination(c)
	filters := repositories.ContentFilters{
		Limit:     p.Limit,
		Offset:    p.Offset,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if v := c.Query("type"); v != "" {
		t := models.ContentType(v)
		filters.Type = &t
	}
	if v := c.Query("difficulty"); v != "" {
		d := models.DifficultyLevel(v)
		filters.Difficulty = &d
	}
	if v := c.Query("part"); v != "" {
		filters.PartNumber = &v
	}

	contents, total, err := h.content.List(c.Request.Context(), filters)
	if err != nil {
		h.RespondWithError(c, err, "Failed to list content")
		return
	}

	h.RespondWithPage(c, len(contents), total, p, contents)
}

// Search handles GET /api/v1/content/search
func (h *ContentHandler) Search(c *gin.Context) {
	p := h.ParsePagination(c)
	filters := repositories.ContentFilters{Limit: p.Limit, Offset: p.Offset}
	if v := c.Query("type"); v != "" {
		t := models.ContentType(v)
		filters.Type = &t
	}

	results, err := h.content.Search(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, results)
}

// GetBySlug handles GET /api/v1/content/:slug
func (h *ContentHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	lang := c.Query("lang")
	if lang == "" {
		// Signed-in readers with a non-default language preference get
		// a localized view without passing ?lang on every request.
		if user, ok := middleware.CurrentUser(c); ok && user.PreferredLanguage != models.DefaultLanguage {
			lang = user.PreferredLanguage
		}
	}

	if lang != "" {
		localized, err := h.content.GetLocalized(c.Request.Context(), slug, lang)
		if err != nil {
			h.RespondWithError(c, err, "")
			return
		}
		h.RespondWithSuccess(c, http.StatusOK, localized)
		return
	}

	content, err := h.content.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, content)
}

// GetArticle handles GET /api/v1/content/articles/:number
func (h *ContentHandler) GetArticle(c *gin.Context) {
	content, err := h.content.GetByArticleNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, content)
}

// ListByType builds a handler for a fixed content type listing route
func (h *ContentHandler) ListByType(contentType models.ContentType) gin.HandlerFunc {
	return func(c *gin.Context) {
		contents, err := h.content.ListByType(c.Request.Context(), contentType)
		if err != nil {
			h.RespondWithError(c, err, "Failed to list content")
			return
		}
		h.RespondWithSuccess(c, http.StatusOK, contents)
	}
}

// GetPreamble handles GET /api/v1/content/preamble
func (h *ContentHandler) GetPreamble(c *gin.Context) {
	content, err := h.content.GetPreamble(c.Request.Context())
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, content)
}

// ListCaseStudies handles GET /api/v1/content/case-studies
func (h *ContentHandler) ListCaseStudies(c *gin.Context) {
	p := h.ParsePagination(c)
	filters := repositories.CaseStudyFilters{Limit: p.Limit, Offset: p.Offset}
	if v := c.Query("category"); v != "" {
		cat := models.CaseCategory(v)
		filters.Category = &cat
	}

	caseStudies, total, err := h.content.ListCaseStudies(c.Request.Context(), filters)
	if err != nil {
		h.RespondWithError(c, err, "Failed to list case studies")
		return
	}

	h.RespondWithPage(c, len(caseStudies), total, p, caseStudies)
}

// GetCaseStudy handles GET /api/v1/content/case-studies/:id
func (h *ContentHandler) GetCaseStudy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.RespondWithBadRequest(c, "Invalid case study id")
		return
	}

	caseStudy, err := h.content.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, caseStudy)
}

// ===== ADMIN OPERATIONS =====

// Create handles POST /api/v1/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req services.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	content, err := h.content.Create(c.Request.Context(), &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, content)
}

// Update handles PUT /api/v1/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.RespondWithBadRequest(c, "Invalid content id")
		return
	}

	var req services.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	content, err := h.content.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, content)
}

// Delete handles DELETE /api/v1/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.RespondWithBadRequest(c, "Invalid content id")
		return
	}

	if err := h.content.Delete(c.Request.Context(), id); err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Content deleted"})
}

// Import handles POST /api/v1/content/import (multipart xlsx upload)
func (h *ContentHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		h.RespondWithBadRequest(c, "File upload is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
	if err != nil {
		h.RespondWithBadRequest(c, "Failed to read upload")
		return
	}

	result, err := h.importExport.ImportContent(c.Request.Context(), data)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, result)
}

// Export handles GET /api/v1/content/export
func (h *ContentHandler) Export(c *gin.Context) {
	filters := repositories.ContentFilters{}
	if v := c.Query("type"); v != "" {
		t := models.ContentType(v)
		filters.Type = &t
	}

	data, err := h.importExport.ExportContent(c.Request.Context(), filters)
	if err != nil {
		h.RespondWithError(c, err, "Failed to export content")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="content.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
