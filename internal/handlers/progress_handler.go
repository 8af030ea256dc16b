package handlers

import (
	"net/http"
	"strconv"

	"github.com/aithreya/learning-service/internal/middleware"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProgressHandler struct {
	BaseHandler
	progress services.ProgressService
}

func NewProgressHandler(progress services.ProgressService, base BaseHandler) *ProgressHandler {
	return &ProgressHandler{BaseHandler: base, progress: progress}
}

// Overview handles GET /api/v1/progress
func (h *ProgressHandler) Overview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	overview, err := h.progress.GetOverview(c.Request.Context(), userID)
	if err != nil {
		h.RespondWithError(c, err, "Failed to load progress overview")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, overview)
}

// List handles GET /api/v1/progress/records
func (h *ProgressHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	p := h.ParsePagination(c)
	filters := repositories.ProgressFilters{
		Limit:     p.Limit,
		Offset:    p.Offset,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if v := c.Query("status"); v != "" {
		status := models.ProgressStatus(v)
		filters.Status = &status
	}
	if v := c.Query("bookmarked"); v != "" {
		if bookmarked, err := strconv.ParseBool(v); err == nil {
			filters.IsBookmarked = &bookmarked
		}
	}

	records, total, err := h.progress.List(c.Request.Context(), userID, filters)
	if err != nil {
		h.RespondWithError(c, err, "Failed to list progress")
		return
	}
	h.RespondWithPage(c, len(records), total, p, records)
}

// Bookmarks handles GET /api/v1/progress/bookmarks
func (h *ProgressHandler) Bookmarks(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	p := h.ParsePagination(c)
	records, total, err := h.progress.GetBookmarks(c.Request.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		h.RespondWithError(c, err, "Failed to list bookmarks")
		return
	}
	h.RespondWithPage(c, len(records), total, p, records)
}

// GetForContent handles GET /api/v1/progress/:contentId
func (h *ProgressHandler) GetForContent(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	progress, err := h.progress.GetContentProgress(c.Request.Context(), userID, contentID)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, progress)
}

// Start handles POST /api/v1/progress/:contentId/start
func (h *ProgressHandler) Start(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	progress, err := h.progress.Start(c.Request.Context(), userID, contentID)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, progress)
}

// Update handles PUT /api/v1/progress/:contentId
func (h *ProgressHandler) Update(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	var req services.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	progress, err := h.progress.UpdateProgress(c.Request.Context(), userID, contentID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, progress)
}

// Complete handles POST /api/v1/progress/:contentId/complete
func (h *ProgressHandler) Complete(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	reward, err := h.progress.Complete(c.Request.Context(), userID, contentID)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, reward)
}

// QuizAttempt handles POST /api/v1/progress/:contentId/quiz
func (h *ProgressHandler) QuizAttempt(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	var req services.QuizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	reward, err := h.progress.RecordQuizAttempt(c.Request.Context(), userID, contentID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, reward)
}

// ToggleBookmark handles POST /api/v1/progress/:contentId/bookmark
func (h *ProgressHandler) ToggleBookmark(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	progress, err := h.progress.ToggleBookmark(c.Request.Context(), userID, contentID)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, progress)
}

// AddNote handles POST /api/v1/progress/:contentId/notes
func (h *ProgressHandler) AddNote(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	var req services.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	progress, err := h.progress.AddNote(c.Request.Context(), userID, contentID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, progress)
}

// AddHighlight handles POST /api/v1/progress/:contentId/highlights
func (h *ProgressHandler) AddHighlight(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	var req services.HighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	progress, err := h.progress.AddHighlight(c.Request.Context(), userID, contentID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, progress)
}

// Rate handles POST /api/v1/progress/:contentId/rating
func (h *ProgressHandler) Rate(c *gin.Context) {
	userID, contentID, ok := h.subject(c)
	if !ok {
		return
	}

	var req services.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	progress, err := h.progress.Rate(c.Request.Context(), userID, contentID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, progress)
}

// subject resolves the authenticated user and the contentId path parameter.
func (h *ProgressHandler) subject(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return uuid.Nil, uuid.Nil, false
	}

	contentID, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		h.RespondWithBadRequest(c, "Invalid content id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, contentID, true
}
