package services

import (
	"context"
	"time"

	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/google/uuid"
)

// ===== SERVICE INTERFACES =====

// TokenService issues and validates the signed tokens used by the API.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// Validation returns the subject user ID. A token of the wrong kind
	// fails with ErrWrongTokenKind even when the signature is valid.
	ValidateAccessToken(token string) (uuid.UUID, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
}

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, req *UpdatePreferencesRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *ChangePasswordRequest) error
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

type ContentService interface {
	List(ctx context.Context, filters repositories.ContentFilters) ([]*models.Content, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Content, error)
	GetByArticleNumber(ctx context.Context, articleNumber string) (*models.Content, error)
	GetLocalized(ctx context.Context, slug, language string) (*models.LocalizedContent, error)
	ListByType(ctx context.Context, contentType models.ContentType) ([]*models.Content, error)
	GetPreamble(ctx context.Context) (*models.Content, error)
	Search(ctx context.Context, query string, filters repositories.ContentFilters) ([]*models.Content, error)

	// Case studies
	ListCaseStudies(ctx context.Context, filters repositories.CaseStudyFilters) ([]*models.CaseStudy, int64, error)
	GetCaseStudy(ctx context.Context, id uuid.UUID) (*models.CaseStudy, error)

	// Admin catalog management
	Create(ctx context.Context, req *CreateContentRequest) (*models.Content, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateContentRequest) (*models.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProgressService interface {
	Start(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error)
	UpdateProgress(ctx context.Context, userID, contentID uuid.UUID, req *UpdateProgressRequest) (*models.Progress, error)
	Complete(ctx context.Context, userID, contentID uuid.UUID) (*ProgressReward, error)
	RecordQuizAttempt(ctx context.Context, userID, contentID uuid.UUID, req *QuizAttemptRequest) (*ProgressReward, error)

	ToggleBookmark(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error)
	AddNote(ctx context.Context, userID, contentID uuid.UUID, req *NoteRequest) (*models.Progress, error)
	AddHighlight(ctx context.Context, userID, contentID uuid.UUID, req *HighlightRequest) (*models.Progress, error)
	Rate(ctx context.Context, userID, contentID uuid.UUID, req *RatingRequest) (*models.Progress, error)

	GetContentProgress(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error)
	List(ctx context.Context, userID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error)
	GetBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Progress, int64, error)
	GetOverview(ctx context.Context, userID uuid.UUID) (*ProgressOverview, error)
}

type ImportExportService interface {
	ImportContent(ctx context.Context, data []byte) (*ImportResult, error)
	ExportContent(ctx context.Context, filters repositories.ContentFilters) ([]byte, error)
}

// ===== AUTH DTOS =====

type RegisterRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8,max=72"`
	PreferredLanguage string `json:"preferred_language" validate:"omitempty,language_code"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string    `json:"phone_number" validate:"omitempty,max=20"`
	AvatarURL   *string    `json:"avatar_url" validate:"omitempty,url"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

type UpdatePreferencesRequest struct {
	PreferredLanguage    *string                `json:"preferred_language" validate:"omitempty,language_code"`
	DarkMode             *bool                  `json:"dark_mode"`
	NotificationsEnabled *bool                  `json:"notifications_enabled"`
	EducationLevel       *models.EducationLevel `json:"education_level" validate:"omitempty,education_level"`
	Interests            []string               `json:"interests" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// ===== CONTENT DTOS =====

type CreateContentRequest struct {
	Slug          string             `json:"slug" validate:"required,min=2,max=100"`
	Type          models.ContentType `json:"type" validate:"required,content_type"`
	Title         string             `json:"title" validate:"required,max=255"`
	ShortTitle    *string            `json:"short_title" validate:"omitempty,max=100"`
	ArticleNumber *string            `json:"article_number" validate:"omitempty,max=20"`

	Body        models.Translations `json:"body" validate:"required"`
	Explanation models.Translations `json:"explanation"`

	KeyPoints []string `json:"key_points"`
	Keywords  []string `json:"keywords"`

	PartNumber   *string `json:"part_number" validate:"omitempty,max=10"`
	PartTitle    *string `json:"part_title" validate:"omitempty,max=255"`
	ChapterTitle *string `json:"chapter_title" validate:"omitempty,max=255"`

	Difficulty        models.DifficultyLevel `json:"difficulty" validate:"omitempty,difficulty_level"`
	EstimatedReadTime int                    `json:"estimated_read_time" validate:"omitempty,gte=1,lte=180"`

	AudioURL *string `json:"audio_url" validate:"omitempty,url"`
	VideoURL *string `json:"video_url" validate:"omitempty,url"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

type UpdateContentRequest struct {
	Title         *string             `json:"title" validate:"omitempty,max=255"`
	ShortTitle    *string             `json:"short_title" validate:"omitempty,max=100"`
	Body          models.Translations `json:"body"`
	Explanation   models.Translations `json:"explanation"`
	KeyPoints     []string            `json:"key_points"`
	Keywords      []string            `json:"keywords"`
	Difficulty    *models.DifficultyLevel `json:"difficulty" validate:"omitempty,difficulty_level"`
	EstimatedReadTime *int            `json:"estimated_read_time" validate:"omitempty,gte=1,lte=180"`
	AudioURL      *string             `json:"audio_url" validate:"omitempty,url"`
	VideoURL      *string             `json:"video_url" validate:"omitempty,url"`
	ImageURL      *string             `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool               `json:"is_active"`
}

// ImportResult summarizes a spreadsheet import run.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ===== PROGRESS DTOS =====

type UpdateProgressRequest struct {
	Status               *models.ProgressStatus `json:"status" validate:"omitempty,oneof=not-started in-progress completed"`
	CompletionPercentage *float64               `json:"completion_percentage" validate:"omitempty,gte=0,lte=100"`
	TimeSpent            *int64                 `json:"time_spent" validate:"omitempty,gte=0"` // seconds
}

type QuizAttemptRequest struct {
	Score          float64 `json:"score" validate:"gte=0,lte=100"`
	TotalQuestions int     `json:"total_questions" validate:"required,gte=1"`
	CorrectAnswers int     `json:"correct_answers" validate:"gte=0"`
	TimeTaken      int     `json:"time_taken" validate:"omitempty,gte=0"` // seconds
}

type NoteRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

type HighlightRequest struct {
	Text          string `json:"text" validate:"required,min=1"`
	Color         string `json:"color" validate:"omitempty,max=20"`
	PositionStart int    `json:"position_start" validate:"gte=0"`
	PositionEnd   int    `json:"position_end" validate:"gte=0"`
}

type RatingRequest struct {
	Rating   int     `json:"rating" validate:"required,gte=1,lte=5"`
	Feedback *string `json:"feedback" validate:"omitempty,max=500"`
}

// ProgressReward is the outcome of an action that may award experience.
type ProgressReward struct {
	Progress  *models.Progress `json:"progress"`
	XPAwarded int              `json:"xp_awarded"`
	LeveledUp bool             `json:"leveled_up"`
	NewLevel  int              `json:"new_level"`
}

// ProgressOverview combines aggregate progress with the user's
// gamification state.
type ProgressOverview struct {
	Overall *repositories.OverallProgress `json:"overall"`

	ExperiencePoints int `json:"experience_points"`
	Level            int `json:"level"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
}
