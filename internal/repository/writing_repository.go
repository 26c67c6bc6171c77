package repository

import (
	"github.com/monjournal/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormWritingRepository is a GORM implementation of WritingRepository
type GormWritingRepository struct {
	db *gorm.DB
}

// NewWritingRepository creates a new WritingRepository
func NewWritingRepository(db *gorm.DB) WritingRepository {
	return &GormWritingRepository{db: db}
}

// Create creates a new writing
func (r *GormWritingRepository) Create(writing *models.Writing) error {
	return r.db.Create(writing).Error
}

// ListByUser returns a user's writings newest first
func (r *GormWritingRepository) ListByUser(userID string) ([]models.Writing, error) {
	var writings []models.Writing
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&writings).Error; err != nil {
		return nil, err
	}
	return writings, nil
}
