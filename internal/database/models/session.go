package models

import (
	"time"

	"github.com/google/uuid"
)

// Session binds an issued token (by its jti) to an authenticated user
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserEmail string    `json:"user_email" gorm:"not null;index;size:254"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	UserAgent string    `json:"user_agent" gorm:"size:255"`
	ClientIP  string    `json:"client_ip" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given time
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
