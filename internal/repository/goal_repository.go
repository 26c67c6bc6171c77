package repository

import (
	"github.com/monjournal/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormGoalRepository is a GORM implementation of GoalRepository
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &GormGoalRepository{db: db}
}

// Create creates a new goal
func (r *GormGoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// ListByUser returns a user's goals ordered by deadline ascending
func (r *GormGoalRepository) ListByUser(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).Order("deadline asc").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByID finds a user's goal by ID
func (r *GormGoalRepository) FindByID(userID, id string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("user_id = ?", userID).First(&goal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Save persists changes to an existing goal
func (r *GormGoalRepository) Save(goal *models.Goal) error {
	return r.db.Save(goal).Error
}
