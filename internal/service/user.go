package service

import (
	"errors"
	"fmt"
	"time"

	"sheet-music-backend/internal/auth"
	"sheet-music-backend/internal/database/models"
	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService is the account manager: it creates regular and privileged users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user.
// Nil flags take the defaults of the creation path in use.
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password"`
	Name        string `json:"name" validate:"max=255"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser *bool  `json:"is_superuser"`
	IsActive    *bool  `json:"is_active"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	IsActive    bool       `json:"is_active"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// NormalizeEmail lowercases the domain part of an address
func (s *UserService) NormalizeEmail(email string) string {
	return auth.NormalizeEmail(email)
}

// CreateUser creates a regular account. Flags default to false, and is_active to true.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	return s.create(req, false)
}

// CreateSuperuser creates a privileged account. Both flags default to true and
// an explicit false for either is rejected.
func (s *UserService) CreateSuperuser(req *CreateUserRequest) (*UserResponse, error) {
	if req.IsStaff != nil && !*req.IsStaff {
		return nil, apperrors.ErrSuperuserNotStaff
	}
	if req.IsSuperuser != nil && !*req.IsSuperuser {
		return nil, apperrors.ErrSuperuserNotFlagged
	}
	return s.create(req, true)
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(s.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *UserService) create(req *CreateUserRequest, privileged bool) (*UserResponse, error) {
	req.Email = s.NormalizeEmail(req.Email)
	req.Name = trim(req.Name)
	if req.Email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       req.Email,
		Password:    hash,
		Name:        req.Name,
		IsStaff:     flag(req.IsStaff, privileged),
		IsSuperuser: flag(req.IsSuperuser, privileged),
		IsActive:    flag(req.IsActive, true),
		DateJoined:  time.Now().UTC(),
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"email":        user.Email,
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
	}).Info("user created")
	return toUserResponse(user), nil
}

func flag(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		Email:       user.Email,
		Name:        user.Name,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		IsActive:    user.IsActive,
		DateJoined:  user.DateJoined,
		LastLogin:   user.LastLogin,
	}
}
