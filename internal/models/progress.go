package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not-started"
	ProgressInProgress ProgressStatus = "in-progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// QuizCompletionScore is the score at or above which a quiz attempt
// auto-completes the content.
const QuizCompletionScore = 80

// Progress tracks one user's state for one content item. A (user, content)
// pair has at most one record, enforced by a composite unique index.
type Progress struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_content;index:idx_user_status"`
	ContentID uuid.UUID `json:"content_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_content"`

	User    *User    `json:"-" gorm:"foreignKey:UserID"`
	Content *Content `json:"content,omitempty" gorm:"foreignKey:ContentID"`

	Status               ProgressStatus `json:"status" gorm:"default:not-started;size:20;index:idx_user_status"`
	CompletionPercentage float64        `json:"completion_percentage" gorm:"default:0"`

	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	LastAccessedAt time.Time  `json:"last_accessed_at"`

	TimeSpent int64 `json:"time_spent" gorm:"default:0"` // seconds
	ViewCount int   `json:"view_count" gorm:"default:0"`

	IsBookmarked bool       `json:"is_bookmarked" gorm:"default:false"`
	BookmarkedAt *time.Time `json:"bookmarked_at"`

	QuizAttempts []QuizAttempt `json:"quiz_attempts,omitempty" gorm:"foreignKey:ProgressID;constraint:OnDelete:CASCADE"`
	BestScore    float64       `json:"best_score" gorm:"default:0"`

	Notes      []Note      `json:"notes,omitempty" gorm:"foreignKey:ProgressID;constraint:OnDelete:CASCADE"`
	Highlights []Highlight `json:"highlights,omitempty" gorm:"foreignKey:ProgressID;constraint:OnDelete:CASCADE"`

	Rating   *int       `json:"rating"`
	Feedback *string    `json:"feedback" gorm:"size:500"`
	RatedAt  *time.Time `json:"rated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress_records"
}

func (p *Progress) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type QuizAttempt struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProgressID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`

	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	TimeTaken      int       `json:"time_taken"` // seconds
	AttemptedAt    time.Time `json:"attempted_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (q *QuizAttempt) BeforeCreate(_ *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

type Note struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProgressID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`

	Text      string    `json:"text" gorm:"not null;size:1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "progress_notes"
}

func (n *Note) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type Highlight struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProgressID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`

	Text          string    `json:"text" gorm:"not null"`
	Color         string    `json:"color" gorm:"default:yellow;size:20"`
	PositionStart int       `json:"position_start"`
	PositionEnd   int       `json:"position_end"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Highlight) TableName() string {
	return "progress_highlights"
}

func (h *Highlight) BeforeCreate(_ *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Touch refreshes access state without counting a view: sets startedAt once
// and promotes not-started to in-progress without ever regressing a
// completed record.
func (p *Progress) Touch(now time.Time) {
	if p.StartedAt == nil {
		started := now
		p.StartedAt = &started
	}
	if p.Status == ProgressNotStarted {
		p.Status = ProgressInProgress
	}
	p.LastAccessedAt = now
}

// MarkAsStarted records a view on top of Touch. Only explicit opens count
// toward the view counter; plain progress updates do not.
func (p *Progress) MarkAsStarted(now time.Time) {
	p.Touch(now)
	p.ViewCount++
}

// MarkAsCompleted forces the record into the terminal completed state.
func (p *Progress) MarkAsCompleted(now time.Time) {
	p.Status = ProgressCompleted
	p.CompletionPercentage = 100
	completed := now
	p.CompletedAt = &completed
	p.LastAccessedAt = now
}

// AddTimeSpent accumulates reading time. Callers validate non-negativity.
func (p *Progress) AddTimeSpent(seconds int64, now time.Time) {
	p.TimeSpent += seconds
	p.LastAccessedAt = now
}

// AddQuizAttempt appends an attempt, tracks the best score, and
// auto-completes the record when the score clears the completion threshold.
func (p *Progress) AddQuizAttempt(attempt QuizAttempt, now time.Time) {
	p.QuizAttempts = append(p.QuizAttempts, attempt)
	if attempt.Score > p.BestScore {
		p.BestScore = attempt.Score
	}
	p.LastAccessedAt = now

	if attempt.Score >= QuizCompletionScore {
		p.MarkAsCompleted(now)
	}
}

// ToggleBookmark flips the bookmark flag, stamping or clearing bookmarkedAt.
func (p *Progress) ToggleBookmark(now time.Time) {
	p.IsBookmarked = !p.IsBookmarked
	if p.IsBookmarked {
		bookmarked := now
		p.BookmarkedAt = &bookmarked
	} else {
		p.BookmarkedAt = nil
	}
}
