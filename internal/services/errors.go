package services

import (
	"errors"

	apperrors "github.com/aithreya/learning-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Auth specific errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrWrongTokenKind     = errors.New("wrong token kind for this operation")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// Content specific errors
	ErrContentNotFound  = errors.New("content not found")
	ErrDuplicateSlug    = errors.New("content slug already exists")
	ErrUnsupportedLang  = errors.New("unsupported language code")
	ErrEmptyImportSheet = errors.New("import sheet contains no rows")

	// Case study specific errors
	ErrCaseStudyNotFound = errors.New("case study not found")

	// Progress specific errors
	ErrProgressNotFound = errors.New("progress record not found")
	ErrInvalidScore     = errors.New("quiz score must be between 0 and 100")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrNegativeTime     = errors.New("time spent cannot be negative")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid user role")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrContentNotFound) ||
		errors.Is(err, ErrCaseStudyNotFound) ||
		errors.Is(err, ErrProgressNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAccountDisabled) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenInvalid) ||
		errors.Is(err, ErrWrongTokenKind) ||
		errors.Is(err, ErrWrongPassword)
}

// IsForbidden checks if error represents a "forbidden" condition
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrInvalidScore) ||
		errors.Is(err, ErrInvalidRating) ||
		errors.Is(err, ErrNegativeTime) ||
		errors.Is(err, ErrUnsupportedLang) ||
		errors.Is(err, ErrEmptyImportSheet) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrDuplicateSlug)
}
