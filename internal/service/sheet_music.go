package service

import (
	"errors"
	"fmt"
	"time"

	"sheet-music-backend/internal/database/models"
	apperrors "sheet-music-backend/internal/errors"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// invalidGroupChoice is reported when group_id names no existing group
const invalidGroupChoice = "Select a valid choice. That choice is not one of the available choices."

// SheetMusicService handles business logic for sheet music
type SheetMusicService struct {
	repo      repository.SheetMusicRepositoryInterface
	groupRepo repository.GroupRepositoryInterface
	tx        repository.TransactionManagerInterface
	validator *validator.Validate
}

// NewSheetMusicService creates a new sheet music service
func NewSheetMusicService(repo repository.SheetMusicRepositoryInterface, groupRepo repository.GroupRepositoryInterface, tx repository.TransactionManagerInterface, validator *validator.Validate) *SheetMusicService {
	return &SheetMusicService{
		repo:      repo,
		groupRepo: groupRepo,
		tx:        tx,
		validator: validator,
	}
}

// CreateSheetMusicRequest represents the request to create sheet music
type CreateSheetMusicRequest struct {
	Title    string  `json:"title" form:"title" validate:"required,max=100" example:"Ave Maria"`
	Subtitle *string `json:"subtitle,omitempty" form:"subtitle" validate:"omitempty,max=250"`
	URL      string  `json:"url" form:"url" validate:"required,http_url,max=200" example:"https://flat.io/score/abc"`
	EmbedURL string  `json:"embed_url" form:"embed_url" validate:"required,http_url,max=200" example:"https://flat.io/embed/abc"`
	// Author defaults to "Anonymous" when blank
	Author   string  `json:"author,omitempty" form:"author" validate:"max=100" example:"Franz Schubert"`
	Arranger *string `json:"arranger,omitempty" form:"arranger" validate:"omitempty,max=100"`
	Slug     *string `json:"slug,omitempty" form:"slug" validate:"omitempty,slug"`
	GroupID  uint    `json:"group_id" form:"group_id" validate:"required" example:"1"`
}

// UpdateSheetMusicRequest replaces every editable field of a sheet music entry
type UpdateSheetMusicRequest CreateSheetMusicRequest

// SheetMusicListParams narrows a sheet music listing
type SheetMusicListParams struct {
	// Group is a group id or slug
	Group   string `form:"group"`
	Query   string `form:"q"`
	OrderBy string `form:"ordering"`
}

// GroupSummary is the group embedded in sheet music responses
type GroupSummary struct {
	ID   uint    `json:"id" example:"1"`
	Name string  `json:"name" example:"Coro Norte"`
	Slug *string `json:"slug" example:"coro-norte"`
}

// SheetMusicResponse represents the response for sheet music operations
type SheetMusicResponse struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title" example:"Ave Maria"`
	Subtitle  *string       `json:"subtitle"`
	URL       string        `json:"url" example:"https://flat.io/score/abc"`
	EmbedURL  string        `json:"embed_url" example:"https://flat.io/embed/abc"`
	Author    string        `json:"author" example:"Anonymous"`
	Arranger  *string       `json:"arranger"`
	Slug      *string       `json:"slug" example:"ave-maria"`
	GroupID   uint          `json:"group_id" example:"1"`
	Group     *GroupSummary `json:"group,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Create creates a new sheet music entry
func (s *SheetMusicService) Create(req *CreateSheetMusicRequest) (*SheetMusicResponse, error) {
	normalizeSheetMusicRequest(req)

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	music := &models.FlatSheetMusic{}
	applySheetMusicRequest(music, req)
	music.EnsureSlug()
	music.ApplyDefaults()

	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		group, err := requireGroup(repos.Groups, req.GroupID)
		if err != nil {
			return err
		}
		if err := checkSheetMusicUnique(repos.SheetMusic, music, uuid.Nil); err != nil {
			return err
		}
		if err := repos.SheetMusic.Create(music); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.NewAlreadyExistsError("sheet music", "", "")
			}
			return fmt.Errorf("failed to create sheet music: %w", err)
		}
		music.Group = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithFields(map[string]interface{}{"sheet_music_id": music.ID, "group_id": music.GroupID}).Info("sheet music created")
	return s.toResponse(music), nil
}

// List returns sheet music ordered by title ascending unless params ask otherwise
func (s *SheetMusicService) List(params *SheetMusicListParams) ([]SheetMusicResponse, error) {
	if params == nil {
		params = &SheetMusicListParams{}
	}

	filter := repository.SheetMusicFilter{Query: params.Query, OrderBy: params.OrderBy}
	if key := trim(params.Group); key != "" {
		group, err := findGroup(s.groupRepo, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to get group: %w", err)
		}
		filter.GroupID = &group.ID
	}

	music, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet music: %w", err)
	}

	responses := make([]SheetMusicResponse, len(music))
	for i := range music {
		responses[i] = *s.toResponse(&music[i])
	}
	return responses, nil
}

// Get retrieves sheet music by UUID or slug
func (s *SheetMusicService) Get(key string) (*SheetMusicResponse, error) {
	music, err := findSheetMusic(s.repo, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSheetMusicNotFound
		}
		return nil, fmt.Errorf("failed to get sheet music: %w", err)
	}
	return s.toResponse(music), nil
}

// Update replaces the editable fields of a sheet music entry. The id never changes and
// the slug only changes when a new one is given explicitly.
func (s *SheetMusicService) Update(key string, req *UpdateSheetMusicRequest) (*SheetMusicResponse, error) {
	create := (*CreateSheetMusicRequest)(req)
	normalizeSheetMusicRequest(create)

	// Validate request
	if err := s.validator.Struct(create); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var music *models.FlatSheetMusic
	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		existing, err := findSheetMusic(repos.SheetMusic, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSheetMusicNotFound
			}
			return fmt.Errorf("failed to get sheet music: %w", err)
		}

		group, err := requireGroup(repos.Groups, create.GroupID)
		if err != nil {
			return err
		}

		slug := existing.Slug
		applySheetMusicRequest(existing, create)
		if create.Slug == nil {
			existing.Slug = slug
		}
		existing.EnsureSlug()
		existing.ApplyDefaults()

		if err := checkSheetMusicUnique(repos.SheetMusic, existing, existing.ID); err != nil {
			return err
		}
		existing.Group = nil
		if err := repos.SheetMusic.Update(existing); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.NewAlreadyExistsError("sheet music", "", "")
			}
			return fmt.Errorf("failed to update sheet music: %w", err)
		}
		existing.Group = group
		music = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(music), nil
}

// Delete removes a sheet music entry
func (s *SheetMusicService) Delete(key string) (*SheetMusicResponse, error) {
	var music *models.FlatSheetMusic
	err := s.tx.WithinTransaction(func(repos *repository.Repositories) error {
		existing, err := findSheetMusic(repos.SheetMusic, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSheetMusicNotFound
			}
			return fmt.Errorf("failed to get sheet music: %w", err)
		}
		if err := repos.SheetMusic.Delete(existing.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSheetMusicNotFound
			}
			return fmt.Errorf("failed to delete sheet music: %w", err)
		}
		music = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.New().WithField("sheet_music_id", music.ID).Info("sheet music deleted")
	return s.toResponse(music), nil
}

// requireGroup loads the owning group, reporting a missing one as a field error
func requireGroup(repo repository.GroupRepositoryInterface, id uint) (*models.Group, error) {
	group, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("group_id", invalidGroupChoice)
		}
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}
	return group, nil
}

// checkSheetMusicUnique reports a title or slug already held by an entry other than selfID
func checkSheetMusicUnique(repo repository.SheetMusicRepositoryInterface, music *models.FlatSheetMusic, selfID uuid.UUID) error {
	existing, err := repo.GetByTitle(music.Title)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing sheet music: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.ErrSheetMusicTitleExists
	}

	if music.Slug == nil {
		return nil
	}
	existing, err = repo.GetBySlug(*music.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing sheet music: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return apperrors.ErrSheetMusicSlugExists
	}
	return nil
}

func normalizeSheetMusicRequest(req *CreateSheetMusicRequest) {
	req.Title = trim(req.Title)
	req.URL = trim(req.URL)
	req.EmbedURL = trim(req.EmbedURL)
	req.Author = trim(req.Author)
	req.Subtitle = optional(req.Subtitle)
	req.Arranger = optional(req.Arranger)
	req.Slug = optional(req.Slug)
}

func applySheetMusicRequest(music *models.FlatSheetMusic, req *CreateSheetMusicRequest) {
	music.Title = req.Title
	music.Subtitle = req.Subtitle
	music.URL = req.URL
	music.EmbedURL = req.EmbedURL
	music.Author = req.Author
	music.Arranger = req.Arranger
	music.Slug = req.Slug
	music.GroupID = req.GroupID
}

func (s *SheetMusicService) toResponse(music *models.FlatSheetMusic) *SheetMusicResponse {
	resp := &SheetMusicResponse{
		ID:        music.ID,
		Title:     music.Title,
		Subtitle:  music.Subtitle,
		URL:       music.URL,
		EmbedURL:  music.EmbedURL,
		Author:    music.Author,
		Arranger:  music.Arranger,
		Slug:      music.Slug,
		GroupID:   music.GroupID,
		CreatedAt: music.CreatedAt,
		UpdatedAt: music.UpdatedAt,
	}
	if music.Group != nil {
		resp.Group = &GroupSummary{ID: music.Group.ID, Name: music.Group.Name, Slug: music.Group.Slug}
	}
	return resp
}
