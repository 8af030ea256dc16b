package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentType string

const (
	ContentArticle            ContentType = "article"
	ContentFundamentalRight   ContentType = "fundamental-right"
	ContentDirectivePrinciple ContentType = "directive-principle"
	ContentFundamentalDuty    ContentType = "fundamental-duty"
	ContentPreamble           ContentType = "preamble"
	ContentAmendment          ContentType = "amendment"
	ContentSchedule           ContentType = "schedule"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// DefaultLanguage is the fallback locale when a translation is missing.
const DefaultLanguage = "en"

// SupportedLanguages lists the locales content may be translated into.
var SupportedLanguages = []string{"en", "hi", "ta", "te", "kn", "ml", "mr", "gu", "bn", "pa", "or"}

// Translations maps a language code to translated text. The English entry is
// mandatory; every other locale falls back to it.
type Translations map[string]string

type Content struct {
	ID   uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Slug string      `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Type ContentType `json:"type" gorm:"not null;size:30;index"`

	Title         string  `json:"title" gorm:"not null;size:255"`
	ShortTitle    *string `json:"short_title" gorm:"size:100"`
	ArticleNumber *string `json:"article_number" gorm:"size:20;index"`

	// Multilingual payloads keyed by language code
	Body        datatypes.JSONType[Translations] `json:"body"`
	Explanation datatypes.JSONType[Translations] `json:"explanation"`

	KeyPoints datatypes.JSONSlice[string] `json:"key_points"`
	Keywords  datatypes.JSONSlice[string] `json:"keywords"`

	PartNumber   *string `json:"part_number" gorm:"size:10"`
	PartTitle    *string `json:"part_title" gorm:"size:255"`
	ChapterTitle *string `json:"chapter_title" gorm:"size:255"`

	Difficulty        DifficultyLevel `json:"difficulty" gorm:"default:beginner;size:20;index"`
	EstimatedReadTime int             `json:"estimated_read_time" gorm:"default:5"` // minutes

	AudioURL *string `json:"audio_url" gorm:"size:500"`
	VideoURL *string `json:"video_url" gorm:"size:500"`
	ImageURL *string `json:"image_url" gorm:"size:500"`

	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	PublishedAt *time.Time `json:"published_at"`
	Views       int64      `json:"views" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Content) TableName() string {
	return "contents"
}

func (c *Content) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// LocalizedContent is the language-resolved projection of a catalog entry.
type LocalizedContent struct {
	Title         string      `json:"title"`
	Body          string      `json:"body"`
	Explanation   string      `json:"explanation"`
	Type          ContentType `json:"type"`
	ArticleNumber *string     `json:"article_number,omitempty"`
	Language      string      `json:"language"`
}

// Localize resolves the content to the requested language, falling back to
// English when the translation is absent.
func (c *Content) Localize(language string) LocalizedContent {
	body := c.Body.Data()
	explanation := c.Explanation.Data()

	resolved := language
	text, ok := body[language]
	if !ok || text == "" {
		resolved = DefaultLanguage
		text = body[DefaultLanguage]
	}

	explText, ok := explanation[language]
	if !ok || explText == "" {
		explText = explanation[DefaultLanguage]
	}

	return LocalizedContent{
		Title:         c.Title,
		Body:          text,
		Explanation:   explText,
		Type:          c.Type,
		ArticleNumber: c.ArticleNumber,
		Language:      resolved,
	}
}
