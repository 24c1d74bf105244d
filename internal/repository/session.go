package repository

import (
	"time"

	"sheet-music-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for login sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.ExpiresAt = session.ExpiresAt.UTC()
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete deletes a session. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteByUserEmail ends every session of a user
func (r *SessionRepository) DeleteByUserEmail(email string) error {
	return r.db.Where("user_email = ?", email).Delete(&models.Session{}).Error
}

// DeleteExpired prunes sessions that expired at or before now
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now.UTC()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
