package service

import (
	"errors"
	"strconv"

	"sheet-music-backend/internal/database/models"
	"sheet-music-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// findGroup resolves a numeric id or a slug. A numeric key that matches no id is retried as a slug,
// since a group named "1812" has the slug "1812".
func findGroup(repo repository.GroupRepositoryInterface, key string) (*models.Group, error) {
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		group, err := repo.GetByID(uint(id))
		if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
			return group, err
		}
	}
	return repo.GetBySlug(key)
}

// findSheetMusic resolves a UUID or a slug
func findSheetMusic(repo repository.SheetMusicRepositoryInterface, key string) (*models.FlatSheetMusic, error) {
	if id, err := uuid.Parse(key); err == nil {
		music, err := repo.GetByID(id)
		if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
			return music, err
		}
	}
	return repo.GetBySlug(key)
}

// optional trims s and maps blank values to nil
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := trim(*s)
	if v == "" {
		return nil
	}
	return &v
}
