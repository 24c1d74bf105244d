package models

import (
	"strings"

	"sheet-music-backend/internal/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultAuthor is stored when a piece is saved without an author
const DefaultAuthor = "Anonymous"

// FlatSheetMusic is a score hosted externally, referenced by a navigable and an embeddable URL
type FlatSheetMusic struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"uniqueIndex;not null;size:100"`
	Subtitle *string   `json:"subtitle" gorm:"size:250"`
	URL      string    `json:"url" gorm:"column:url;not null;size:200"`
	EmbedURL string    `json:"embed_url" gorm:"column:embed_url;not null;size:200"`
	Author   string    `json:"author" gorm:"not null;size:100;default:Anonymous"`
	Arranger *string   `json:"arranger" gorm:"size:100"`
	Slug     *string   `json:"slug" gorm:"uniqueIndex;size:100"`
	GroupID  uint      `json:"group_id" gorm:"not null;index"`
	Timestamps

	// Relationships
	Group *Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for FlatSheetMusic
func (FlatSheetMusic) TableName() string {
	return "sheet_music"
}

func (m *FlatSheetMusic) String() string {
	return m.Title
}

// EnsureSlug derives the slug from the title when none is set
func (m *FlatSheetMusic) EnsureSlug() {
	if m.Slug == nil || *m.Slug == "" {
		m.Slug = slug.Ptr(m.Title)
	}
}

// ApplyDefaults fills the author placeholder for blank authors
func (m *FlatSheetMusic) ApplyDefaults() {
	if strings.TrimSpace(m.Author) == "" {
		m.Author = DefaultAuthor
	}
}

// BeforeCreate assigns the UUID if not already set
func (m *FlatSheetMusic) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeSave fills derived columns on every create and update
func (m *FlatSheetMusic) BeforeSave(tx *gorm.DB) error {
	m.EnsureSlug()
	m.ApplyDefaults()
	return nil
}
