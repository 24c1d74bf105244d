package auth

import (
	"sheet-music-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/auth_mocks.go -package=mocks

// SessionValidator resolves a session handle to its claims and checks staff access
type SessionValidator interface {
	ValidateSession(token string) (*AuthClaims, error)
	AuthorizeStaff(email string) error
}

// Authenticator is the login surface used by the HTTP layer
type Authenticator interface {
	SessionValidator
	Login(email, password string, meta LoginMeta) (*LoginResult, error)
	Logout(token string) error
	CurrentUser(email string) (*models.User, error)
	SetUserActive(email string, active bool) (*models.User, error)
}
