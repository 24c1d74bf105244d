package repository

import (
	"sheet-music-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Omit(clause.Associations).Create(group).Error
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetBySlug retrieves a group by slug
func (r *GroupRepository) GetBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByName retrieves a group by its exact name
func (r *GroupRepository) GetByName(name string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns all groups ordered by name
func (r *GroupRepository) List() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Order("name ASC").Order("id ASC").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Update saves every column of the group
func (r *GroupRepository) Update(group *models.Group) error {
	return r.db.Omit(clause.Associations).Save(group).Error
}

// Delete removes the group together with all of its sheet music.
// Both deletes share one transaction, so either both apply or neither does.
func (r *GroupRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.First(&group, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.FlatSheetMusic{}).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
