package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aithreya/learning-service/internal/events"
	"github.com/aithreya/learning-service/internal/models"
	"github.com/aithreya/learning-service/internal/repositories"
	"github.com/aithreya/learning-service/internal/utils"
	"github.com/aithreya/learning-service/internal/validator"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionXP is awarded when a user explicitly completes a content item.
const CompletionXP = 10

type progressService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    utils.Logger
	validator *validator.Validator
}

func NewProgressService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *validator.Validator,
) ProgressService {
	return &progressService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== TRACKING OPERATIONS =====

func (s *progressService) Start(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	if err := s.ensureContentExists(ctx, contentID); err != nil {
		return nil, err
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	progress.MarkAsStarted(time.Now())
	if err := s.repo.Progress().Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, nil
}

func (s *progressService) UpdateProgress(ctx context.Context, userID, contentID uuid.UUID, req *UpdateProgressRequest) (*models.Progress, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.TimeSpent != nil && *req.TimeSpent < 0 {
		return nil, ErrNegativeTime
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	now := time.Now()
	progress.Touch(now)

	if req.Status != nil {
		if *req.Status == models.ProgressCompleted {
			if progress.Status != models.ProgressCompleted {
				progress.MarkAsCompleted(now)
			}
		} else {
			progress.Status = *req.Status
		}
	}
	if req.TimeSpent != nil {
		progress.AddTimeSpent(*req.TimeSpent, now)
	}
	if req.CompletionPercentage != nil {
		progress.CompletionPercentage = *req.CompletionPercentage
		// Reaching 100% completes the record regardless of an explicit
		// status, without awarding the explicit-completion XP.
		if *req.CompletionPercentage >= 100 && progress.Status != models.ProgressCompleted {
			progress.MarkAsCompleted(now)
		}
	}

	if err := s.repo.Progress().Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, nil
}

func (s *progressService) Complete(ctx context.Context, userID, contentID uuid.UUID) (*ProgressReward, error) {
	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	reward := &ProgressReward{}
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		progress, err := tx.Progress().GetOrCreate(ctx, userID, contentID)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}

		alreadyCompleted := progress.Status == models.ProgressCompleted
		progress.MarkAsCompleted(time.Now())
		if err := tx.Progress().Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}

		reward.Progress = progress
		if alreadyCompleted {
			return nil
		}

		awarded, err := s.awardExperience(ctx, tx, userID, CompletionXP, reward)
		if err != nil {
			return err
		}
		reward.XPAwarded = awarded
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reward.XPAwarded > 0 {
		s.publishEvent(ctx, events.NewContentCompletedEvent(userID, contentID, content.Title, reward.XPAwarded))
	}
	s.publishLevelUp(ctx, userID, reward)

	s.logger.InfoContext(ctx, "Content completed",
		"user_id", userID,
		"content_id", contentID,
		"xp_awarded", reward.XPAwarded)

	return reward, nil
}

func (s *progressService) RecordQuizAttempt(ctx context.Context, userID, contentID uuid.UUID, req *QuizAttemptRequest) (*ProgressReward, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Score < 0 || req.Score > 100 {
		return nil, ErrInvalidScore
	}

	content, err := s.getContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	reward := &ProgressReward{}
	var autoCompleted bool

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		progress, err := tx.Progress().GetOrCreate(ctx, userID, contentID)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}

		wasCompleted := progress.Status == models.ProgressCompleted

		now := time.Now()
		progress.MarkAsStarted(now)

		attempt := models.QuizAttempt{
			ProgressID:     progress.ID,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			CorrectAnswers: req.CorrectAnswers,
			TimeTaken:      req.TimeTaken,
			AttemptedAt:    now,
		}
		progress.AddQuizAttempt(attempt, now)
		autoCompleted = !wasCompleted && progress.Status == models.ProgressCompleted

		if err := tx.Progress().AddQuizAttempt(ctx, &attempt); err != nil {
			return fmt.Errorf("failed to record attempt: %w", err)
		}
		if err := tx.Progress().Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}

		reward.Progress = progress

		// A passing quiz completes the content, but XP comes from the
		// score alone. No separate completion award stacks on top.
		xp := int(req.Score) / 10
		awarded, err := s.awardExperience(ctx, tx, userID, xp, reward)
		if err != nil {
			return err
		}
		reward.XPAwarded = awarded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewQuizAttemptedEvent(userID, contentID, req.Score, req.TotalQuestions, req.CorrectAnswers, autoCompleted))
	if autoCompleted {
		s.publishEvent(ctx, events.NewContentCompletedEvent(userID, contentID, content.Title, reward.XPAwarded))
	}
	s.publishLevelUp(ctx, userID, reward)

	s.logger.InfoContext(ctx, "Quiz attempt recorded",
		"user_id", userID,
		"content_id", contentID,
		"score", req.Score,
		"auto_completed", autoCompleted)

	return reward, nil
}

// ===== ANNOTATIONS AND BOOKMARKS =====

func (s *progressService) ToggleBookmark(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	if err := s.ensureContentExists(ctx, contentID); err != nil {
		return nil, err
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	progress.ToggleBookmark(time.Now())
	if err := s.repo.Progress().Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}
	return progress, nil
}

func (s *progressService) AddNote(ctx context.Context, userID, contentID uuid.UUID, req *NoteRequest) (*models.Progress, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	note := models.Note{
		ProgressID: progress.ID,
		Text:       req.Text,
	}
	if err := s.repo.Progress().AddNote(ctx, &note); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	progress.Notes = append(progress.Notes, note)
	return progress, nil
}

func (s *progressService) AddHighlight(ctx context.Context, userID, contentID uuid.UUID, req *HighlightRequest) (*models.Progress, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	color := req.Color
	if color == "" {
		color = "yellow"
	}
	highlight := models.Highlight{
		ProgressID:    progress.ID,
		Text:          req.Text,
		Color:         color,
		PositionStart: req.PositionStart,
		PositionEnd:   req.PositionEnd,
	}
	if err := s.repo.Progress().AddHighlight(ctx, &highlight); err != nil {
		return nil, fmt.Errorf("failed to add highlight: %w", err)
	}

	progress.Highlights = append(progress.Highlights, highlight)
	return progress, nil
}

func (s *progressService) Rate(ctx context.Context, userID, contentID uuid.UUID, req *RatingRequest) (*models.Progress, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	progress, err := s.repo.Progress().GetOrCreate(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	now := time.Now()
	progress.Rating = &req.Rating
	progress.Feedback = req.Feedback
	progress.RatedAt = &now
	if err := s.repo.Progress().Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}
	return progress, nil
}

// ===== QUERIES =====

func (s *progressService) GetContentProgress(ctx context.Context, userID, contentID uuid.UUID) (*models.Progress, error) {
	progress, err := s.repo.Progress().GetByUserAndContent(ctx, userID, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

func (s *progressService) List(ctx context.Context, userID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	return s.repo.Progress().List(ctx, userID, filters)
}

func (s *progressService) GetBookmarks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Progress, int64, error) {
	return s.repo.Progress().GetBookmarks(ctx, userID, limit, offset)
}

func (s *progressService) GetOverview(ctx context.Context, userID uuid.UUID) (*ProgressOverview, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	overall, err := s.repo.Progress().GetOverall(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate progress: %w", err)
	}

	return &ProgressOverview{
		Overall:          overall,
		ExperiencePoints: user.ExperiencePoints,
		Level:            user.Level,
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
	}, nil
}

// ===== HELPERS =====

// awardExperience credits XP to the user inside the surrounding transaction
// and advances the daily streak. Level-up details land in reward.
func (s *progressService) awardExperience(ctx context.Context, tx repositories.Repository, userID uuid.UUID, points int, reward *ProgressReward) (int, error) {
	user, err := tx.User().GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	leveledUp, newLevel := user.AddExperience(points)
	user.UpdateStreak(time.Now())
	if err := tx.User().Update(ctx, user); err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	reward.LeveledUp = leveledUp
	reward.NewLevel = newLevel
	if points < 0 {
		points = 0
	}
	return points, nil
}

func (s *progressService) publishLevelUp(ctx context.Context, userID uuid.UUID, reward *ProgressReward) {
	if !reward.LeveledUp {
		return
	}
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load user for level-up event", "user_id", userID, "error", err)
		return
	}
	s.publishEvent(ctx, events.NewUserLeveledUpEvent(userID, reward.NewLevel, user.ExperiencePoints))
}

func (s *progressService) publishEvent(ctx context.Context, event *events.LearningEvent) {
	if err := s.publisher.PublishLearningEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish learning event", "event_type", event.Type, "error", err)
	}
}

func (s *progressService) ensureContentExists(ctx context.Context, contentID uuid.UUID) error {
	_, err := s.getContent(ctx, contentID)
	return err
}

func (s *progressService) getContent(ctx context.Context, contentID uuid.UUID) (*models.Content, error) {
	content, err := s.repo.Content().GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}
