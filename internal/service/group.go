package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sheet-music-backend/internal/database/models"
	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GroupService handles business logic for groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	tx        repository.TransactionManagerInterface
	validator *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, tx repository.TransactionManagerInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:      repo,
		tx:        tx,
		validator: validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name string `json:"name" form:"name" validate:"required,max=100" example:"Coro Norte"`
	// Slug overrides the derived slug
	Slug *string `json:"slug,omitempty" form:"slug" validate:"omitempty,slug" example:"coro-norte"`
}

// UpdateGroupRequest represents the request to update a group
type UpdateGroupRequest struct {
	Name string  `json:"name" form:"name" validate:"required,max=100" example:"Coro del Norte"`
	Slug *string `json:"slug,omitempty" form:"slug" validate:"omitempty,slug"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID              uint      `json:"id" example:"1"`
	Name            string    `json:"name" example:"Coro Norte"`
	Slug            *string   `json:"slug" example:"coro-norte"`
	SheetMusicCount *int64    `json:"sheet_music_count,omitempty" example:"3"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Create creates a new group
func (s *GroupService) Create(req *CreateGroupRequest) (*GroupResponse, error) {
	req.Name = trim(req.Name)
	req.Slug = optional(req.Slug)

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group := &models.Group{Name: req.Name, Slug: req.Slug}
	group.EnsureSlug()

	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		if err := checkGroupUnique(repos.Groups, group, 0); err != nil {
			return err
		}
		if err := repos.Groups.Create(group); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.NewAlreadyExistsError("group", "", "")
			}
			return fmt.Errorf("failed to create group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{"group_id": group.ID, "slug": deref(group.Slug)}).Info("group created")
	return s.toResponse(group), nil
}

// List returns all groups ordered by name
func (s *GroupService) List() ([]GroupResponse, error) {
	groups, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *s.toResponse(&groups[i])
	}
	return responses, nil
}

// Get retrieves a group by numeric id or slug
func (s *GroupService) Get(key string) (*GroupResponse, error) {
	group, err := findGroup(s.repo, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return s.toResponse(group), nil
}

// Update renames a group. The slug only changes when a new one is given explicitly.
func (s *GroupService) Update(key string, req *UpdateGroupRequest) (*GroupResponse, error) {
	req.Name = trim(req.Name)
	req.Slug = optional(req.Slug)

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var group *models.Group
	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		existing, err := findGroup(repos.Groups, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return fmt.Errorf("failed to get group: %w", err)
		}

		existing.Name = req.Name
		if req.Slug != nil {
			existing.Slug = req.Slug
		}
		existing.EnsureSlug()

		if err := checkGroupUnique(repos.Groups, existing, existing.ID); err != nil {
			return err
		}
		if err := repos.Groups.Update(existing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.NewAlreadyExistsError("group", "", "")
			}
			return fmt.Errorf("failed to update group: %w", err)
		}
		group = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(group), nil
}

// Delete removes a group and, in the same transaction, all of its sheet music
func (s *GroupService) Delete(key string) (*GroupResponse, error) {
	var (
		group   *models.Group
		removed int64
	)
	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		existing, err := findGroup(repos.Groups, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return fmt.Errorf("failed to get group: %w", err)
		}

		removed, err = repos.SheetMusic.CountByGroupID(existing.ID)
		if err != nil {
			return fmt.Errorf("failed to count sheet music: %w", err)
		}
		if err := repos.Groups.Delete(existing.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return fmt.Errorf("failed to delete group: %w", err)
		}
		group = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{"group_id": group.ID, "sheet_music_deleted": removed}).Info("group deleted")
	resp := s.toResponse(group)
	resp.SheetMusicCount = &removed
	return resp, nil
}

// checkGroupUnique reports a name or slug already held by a group other than selfID
func checkGroupUnique(repo repository.GroupRepositoryInterface, group *models.Group, selfID uint) error {
	existing, err := repo.GetByName(group.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.ErrGroupNameExists
	}

	if group.Slug == nil {
		return nil
	}
	existing, err = repo.GetBySlug(*group.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing group: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.ErrGroupSlugExists
	}
	return nil
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Slug:      group.Slug,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
