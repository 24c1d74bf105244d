package models

import (
	"time"
)

// User is an account that can log in with email and password
type User struct {
	Email       string     `json:"email" gorm:"primaryKey;size:254" validate:"required,email,max=254"`
	Password    string     `json:"-" gorm:"not null;size:128"`
	Name        string     `json:"name" gorm:"size:255" validate:"max=255"`
	IsStaff     bool       `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser bool       `json:"is_superuser" gorm:"not null;default:false"`
	IsActive    bool       `json:"is_active" gorm:"not null"`
	DateJoined  time.Time  `json:"date_joined" gorm:"autoCreateTime"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Sessions []Session `json:"-" gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// CanAccessAdmin reports whether the account carries either privileged flag
func (u *User) CanAccessAdmin() bool {
	return u.IsActive && (u.IsStaff || u.IsSuperuser)
}
