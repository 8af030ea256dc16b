package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleEducator UserRole = "educator"
	RoleAdmin    UserRole = "admin"
)

type EducationLevel string

const (
	EducationSchool        EducationLevel = "school"
	EducationUndergraduate EducationLevel = "undergraduate"
	EducationPostgraduate  EducationLevel = "postgraduate"
	EducationProfessional  EducationLevel = "professional"
	EducationGeneral       EducationLevel = "general"
)

// XPPerLevel is the flat amount of experience points needed per level.
const XPPerLevel = 100

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name" gorm:"not null;size:100"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string    `json:"-" gorm:"not null;size:255"`
	Role     UserRole  `json:"role" gorm:"default:user;size:20"`

	// Profile info
	PhoneNumber *string    `json:"phone_number" gorm:"size:20"`
	AvatarURL   *string    `json:"avatar_url" gorm:"size:500"`
	DateOfBirth *time.Time `json:"date_of_birth"`

	// Preferences
	PreferredLanguage    string                      `json:"preferred_language" gorm:"default:en;size:10"`
	DarkMode             bool                        `json:"dark_mode" gorm:"default:false"`
	NotificationsEnabled bool                        `json:"notifications_enabled" gorm:"default:true"`
	EducationLevel       EducationLevel              `json:"education_level" gorm:"default:general;size:20"`
	Interests            datatypes.JSONSlice[string] `json:"interests"`

	// Gamification
	ExperiencePoints int        `json:"experience_points" gorm:"default:0"`
	Level            int        `json:"level" gorm:"default:1"`
	CurrentStreak    int        `json:"current_streak" gorm:"default:0"`
	LongestStreak    int        `json:"longest_streak" gorm:"default:0"`
	LastActiveDate   *time.Time `json:"last_active_date"`

	// Status
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	IsEmailVerified bool       `json:"is_email_verified" gorm:"default:false"`
	LastLoginAt     *time.Time `json:"last_login_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// AddExperience increases the XP counter and recomputes the level using the
// flat 100-XP-per-level rule. Negative amounts are ignored so XP stays
// monotonic. Returns whether the user leveled up and the new level.
func (u *User) AddExperience(points int) (leveledUp bool, newLevel int) {
	if points <= 0 {
		return false, u.Level
	}

	u.ExperiencePoints += points

	computed := u.ExperiencePoints/XPPerLevel + 1
	if computed > u.Level {
		u.Level = computed
		return true, computed
	}
	return false, u.Level
}

// UpdateStreak advances the activity streak for the calendar day of now.
// Same-day activity is a no-op, a consecutive day extends the streak, and
// any gap resets it to 1.
func (u *User) UpdateStreak(now time.Time) {
	today := truncateToDay(now)

	if u.LastActiveDate != nil {
		last := truncateToDay(*u.LastActiveDate)
		diffDays := int(math.Round(today.Sub(last).Hours() / 24))

		switch {
		case diffDays == 0:
			return
		case diffDays == 1:
			u.CurrentStreak++
		default:
			u.CurrentStreak = 1
		}
	} else {
		u.CurrentStreak = 1
	}

	if u.CurrentStreak > u.LongestStreak {
		u.LongestStreak = u.CurrentStreak
	}
	u.LastActiveDate = &today
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
