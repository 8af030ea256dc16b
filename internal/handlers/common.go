package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/aithreya/learning-service/internal/errors"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ===== COMMON RESPONSE STRUCTURES =====

// SuccessResponse is the envelope for all successful responses
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for all failed responses
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// PaginatedResponse wraps list payloads with paging metadata
type PaginatedResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Data    interface{} `json:"data"`
}

// Pagination carries the parsed page/limit query parameters
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ===== BASE HANDLER =====

// BaseHandler provides shared response and logging helpers for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// RespondWithSuccess sends the standard success envelope
func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{Success: true, Data: data})
}

// RespondWithPage sends a list payload with paging metadata
func (h *BaseHandler) RespondWithPage(c *gin.Context, count int, total int64, p Pagination, data interface{}) {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	c.JSON(http.StatusOK, PaginatedResponse{
		Success: true,
		Count:   count,
		Total:   total,
		Page:    p.Page,
		Pages:   pages,
		Data:    data,
	})
}

// RespondWithError maps a service error onto the failure envelope
func (h *BaseHandler) RespondWithError(c *gin.Context, err error, message string) {
	statusCode := http.StatusInternalServerError
	var details interface{}

	switch {
	case services.IsValidation(err):
		statusCode = http.StatusBadRequest
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			details = apperrors.ToValidationErrors(fieldErrors)
		}
	case services.IsNotFound(err):
		statusCode = http.StatusNotFound
	case services.IsUnauthorized(err):
		statusCode = http.StatusUnauthorized
	case services.IsForbidden(err):
		statusCode = http.StatusForbidden
	case services.IsConflict(err):
		statusCode = http.StatusConflict
	}

	if message == "" {
		message = err.Error()
	}

	if statusCode >= 500 {
		h.logger.LogError(err, message,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", statusCode)
		// Internal details stay out of the response body.
		message = "Server error"
	} else {
		h.logger.Warn(message,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", statusCode)
	}

	c.JSON(statusCode, ErrorResponse{Success: false, Message: message, Details: details})
}

// RespondWithBadRequest reports a malformed request body or parameter
func (h *BaseHandler) RespondWithBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Success: false, Message: message})
}

// ParsePagination reads page/limit query params with sane bounds
func (h *BaseHandler) ParsePagination(c *gin.Context) Pagination {
	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value := c.Query(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
