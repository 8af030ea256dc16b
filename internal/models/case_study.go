package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CaseCategory string

const (
	CaseLandmark  CaseCategory = "landmark"
	CaseImportant CaseCategory = "important"
	CaseReference CaseCategory = "reference"
)

// CaseStudy is a court judgment tied to constitutional content.
type CaseStudy struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Slug     string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	CaseName string    `json:"case_name" gorm:"not null;size:255"`
	Citation string    `json:"citation" gorm:"not null;size:255"`

	Court  string                      `json:"court" gorm:"not null;size:50"`
	Year   int                         `json:"year" gorm:"not null;index"`
	Judges datatypes.JSONSlice[string] `json:"judges"`

	Summary      datatypes.JSONType[Translations] `json:"summary"`
	Facts        datatypes.JSONType[Translations] `json:"facts"`
	Judgment     datatypes.JSONType[Translations] `json:"judgment"`
	Significance datatypes.JSONType[Translations] `json:"significance"`
	Issues       datatypes.JSONSlice[string]      `json:"issues"`
	Keywords     datatypes.JSONSlice[string]      `json:"keywords"`

	RelatedContent []Content `json:"related_content,omitempty" gorm:"many2many:case_study_contents"`

	SourceURL *string `json:"source_url" gorm:"size:500"`
	PDFURL    *string `json:"pdf_url" gorm:"size:500"`

	Category   CaseCategory    `json:"category" gorm:"default:reference;size:20;index"`
	Difficulty DifficultyLevel `json:"difficulty" gorm:"default:intermediate;size:20"`

	IsActive bool  `json:"is_active" gorm:"default:true;index"`
	Views    int64 `json:"views" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

func (cs *CaseStudy) BeforeCreate(_ *gorm.DB) error {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return nil
}
