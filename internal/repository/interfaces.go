package repository

import (
	"time"

	"sheet-music-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uint) (*models.Group, error)
	GetBySlug(slug string) (*models.Group, error)
	GetByName(name string) (*models.Group, error)
	List() ([]models.Group, error)
	Update(group *models.Group) error
	Delete(id uint) error
}

// SheetMusicRepositoryInterface defines the interface for sheet music repository operations
type SheetMusicRepositoryInterface interface {
	Create(music *models.FlatSheetMusic) error
	GetByID(id uuid.UUID) (*models.FlatSheetMusic, error)
	GetBySlug(slug string) (*models.FlatSheetMusic, error)
	GetByTitle(title string) (*models.FlatSheetMusic, error)
	List(filter SheetMusicFilter) ([]models.FlatSheetMusic, error)
	Update(music *models.FlatSheetMusic) error
	Delete(id uuid.UUID) error
	CountByGroupID(groupID uint) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(email string, at time.Time) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID) error
	DeleteByUserEmail(email string) error
	DeleteExpired(now time.Time) (int64, error)
}

// TransactionManagerInterface runs a unit of work against repositories bound to one transaction
type TransactionManagerInterface interface {
	WithinTransaction(fn func(repos *Repositories) error) error
}
