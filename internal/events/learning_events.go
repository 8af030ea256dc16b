package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of learning events
type EventType string

const (
	// User events
	EventUserRegistered EventType = "user.registered"
	EventUserLeveledUp  EventType = "user.leveled_up"

	// Content events
	EventContentCompleted EventType = "content.completed"
	EventQuizAttempted    EventType = "quiz.attempted"
)

// LearningEvent is the base event structure for all learning events
type LearningEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// User event payloads

type UserRegisteredEvent struct {
	UserID            uuid.UUID `json:"user_id"`
	Email             string    `json:"email"`
	PreferredLanguage string    `json:"preferred_language"`
	RegisteredAt      time.Time `json:"registered_at"`
}

type UserLeveledUpEvent struct {
	UserID           uuid.UUID `json:"user_id"`
	NewLevel         int       `json:"new_level"`
	ExperiencePoints int       `json:"experience_points"`
	LeveledUpAt      time.Time `json:"leveled_up_at"`
}

// Content event payloads

type ContentCompletedEvent struct {
	UserID       uuid.UUID `json:"user_id"`
	ContentID    uuid.UUID `json:"content_id"`
	ContentTitle string    `json:"content_title"`
	CompletedAt  time.Time `json:"completed_at"`
	XPAwarded    int       `json:"xp_awarded"`
}

type QuizAttemptedEvent struct {
	UserID         uuid.UUID `json:"user_id"`
	ContentID      uuid.UUID `json:"content_id"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	AttemptedAt    time.Time `json:"attempted_at"`
	AutoCompleted  bool      `json:"auto_completed"`
}

// Event factory functions

func NewUserRegisteredEvent(userID uuid.UUID, email, preferredLanguage string) *LearningEvent {
	now := time.Now()
	return &LearningEvent{
		ID:        generateEventID(),
		Type:      EventUserRegistered,
		Timestamp: now,
		Source:    "learning-service",
		Version:   "1.0",
		Data: UserRegisteredEvent{
			UserID:            userID,
			Email:             email,
			PreferredLanguage: preferredLanguage,
			RegisteredAt:      now,
		},
	}
}

func NewUserLeveledUpEvent(userID uuid.UUID, newLevel, experiencePoints int) *LearningEvent {
	now := time.Now()
	return &LearningEvent{
		ID:        generateEventID(),
		Type:      EventUserLeveledUp,
		Timestamp: now,
		Source:    "learning-service",
		Version:   "1.0",
		Data: UserLeveledUpEvent{
			UserID:           userID,
			NewLevel:         newLevel,
			ExperiencePoints: experiencePoints,
			LeveledUpAt:      now,
		},
	}
}

func NewContentCompletedEvent(userID, contentID uuid.UUID, title string, xpAwarded int) *LearningEvent {
	now := time.Now()
	return &LearningEvent{
		ID:        generateEventID(),
		Type:      EventContentCompleted,
		Timestamp: now,
		Source:    "learning-service",
		Version:   "1.0",
		Data: ContentCompletedEvent{
			UserID:       userID,
			ContentID:    contentID,
			ContentTitle: title,
			CompletedAt:  now,
			XPAwarded:    xpAwarded,
		},
	}
}

func NewQuizAttemptedEvent(userID, contentID uuid.UUID, score float64, totalQuestions, correctAnswers int, autoCompleted bool) *LearningEvent {
	now := time.Now()
	return &LearningEvent{
		ID:        generateEventID(),
		Type:      EventQuizAttempted,
		Timestamp: now,
		Source:    "learning-service",
		Version:   "1.0",
		Data: QuizAttemptedEvent{
			UserID:         userID,
			ContentID:      contentID,
			Score:          score,
			TotalQuestions: totalQuestions,
			CorrectAnswers: correctAnswers,
			AttemptedAt:    now,
			AutoCompleted:  autoCompleted,
		},
	}
}

func generateEventID() string {
	return uuid.NewString()
}
