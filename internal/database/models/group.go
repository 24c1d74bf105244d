package models

import (
	"sheet-music-backend/internal/slug"

	"gorm.io/gorm"
)

// Group represents a musical ensemble that owns sheet music
type Group struct {
	ID   uint    `json:"id" gorm:"primaryKey"`
	Name string  `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Slug *string `json:"slug" gorm:"uniqueIndex;size:100"`
	Timestamps
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}

func (g *Group) String() string {
	return g.Name
}

// EnsureSlug derives the slug from the name when none is set.
// An existing slug is never regenerated.
func (g *Group) EnsureSlug() {
	if g.Slug == nil || *g.Slug == "" {
		g.Slug = slug.Ptr(g.Name)
	}
}

// BeforeSave fills the slug on every create and update
func (g *Group) BeforeSave(tx *gorm.DB) error {
	g.EnsureSlug()
	return nil
}
