package repository

import (
	"strings"

	"sheet-music-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SheetMusicFilter narrows and orders a sheet music listing
type SheetMusicFilter struct {
	GroupID *uint
	// Query matches title, subtitle or author, case-insensitively
	Query string
	// OrderBy is a column name, optionally prefixed with "-" for descending order
	OrderBy string
}

// sortable columns accepted in SheetMusicFilter.OrderBy
var sheetMusicOrderColumns = map[string]string{
	"title":      "title",
	"author":     "author",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// SheetMusicRepository handles database operations for sheet music
type SheetMusicRepository struct {
	db *gorm.DB
}

// NewSheetMusicRepository creates a new sheet music repository
func NewSheetMusicRepository(db *gorm.DB) *SheetMusicRepository {
	return &SheetMusicRepository{db: db}
}

// Create creates a new sheet music entry
func (r *SheetMusicRepository) Create(music *models.FlatSheetMusic) error {
	return r.db.Omit(clause.Associations).Create(music).Error
}

// GetByID retrieves sheet music by ID with its group
func (r *SheetMusicRepository) GetByID(id uuid.UUID) (*models.FlatSheetMusic, error) {
	var music models.FlatSheetMusic
	err := r.db.Preload("Group").First(&music, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &music, nil
}

// GetBySlug retrieves sheet music by slug with its group
func (r *SheetMusicRepository) GetBySlug(slug string) (*models.FlatSheetMusic, error) {
	var music models.FlatSheetMusic
	err := r.db.Preload("Group").First(&music, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &music, nil
}

// GetByTitle retrieves sheet music by its exact title
func (r *SheetMusicRepository) GetByTitle(title string) (*models.FlatSheetMusic, error) {
	var music models.FlatSheetMusic
	err := r.db.First(&music, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &music, nil
}

// List returns sheet music matching the filter, ordered by title unless the filter says otherwise
func (r *SheetMusicRepository) List(filter SheetMusicFilter) ([]models.FlatSheetMusic, error) {
	var music []models.FlatSheetMusic

	query := r.db.Model(&models.FlatSheetMusic{}).Preload("Group")
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(COALESCE(subtitle, '')) LIKE ? OR LOWER(author) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	column, desc := sheetMusicOrder(filter.OrderBy)
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	if column != "title" {
		query = query.Order("title ASC")
	}

	if err := query.Find(&music).Error; err != nil {
		return nil, err
	}
	return music, nil
}

// Update saves every column of the sheet music entry
func (r *SheetMusicRepository) Update(music *models.FlatSheetMusic) error {
	return r.db.Omit(clause.Associations).Save(music).Error
}

// Delete deletes a sheet music entry
func (r *SheetMusicRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.FlatSheetMusic{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByGroupID counts the sheet music owned by a group
func (r *SheetMusicRepository) CountByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FlatSheetMusic{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// sheetMusicOrder resolves an OrderBy value against the whitelist; unknown values sort by title
func sheetMusicOrder(orderBy string) (string, bool) {
	desc := strings.HasPrefix(orderBy, "-")
	column, ok := sheetMusicOrderColumns[strings.TrimPrefix(orderBy, "-")]
	if !ok {
		return "title", false
	}
	return column, desc
}
