package repository

import (
	"github.com/monjournal/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Display order: active work first, finished projects last.
const statusRankExpr = `CASE projects.status
	WHEN 'ACTIVE_DEV' THEN 0
	WHEN 'STARTED' THEN 1
	WHEN 'RESEARCH' THEN 2
	WHEN 'IDEA' THEN 3
	WHEN 'DONE' THEN 4
	ELSE 5 END`

// ListByUser returns a user's projects with links, ordered by status rank
// then most recently updated
func (r *GormProjectRepository) ListByUser(userID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Preload("Links").
		Where("user_id = ?", userID).
		Order(statusRankExpr + ", projects.updated_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a user's project by ID with links loaded
func (r *GormProjectRepository) FindByID(userID, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Preload("Links").
		Where("user_id = ?", userID).
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create creates a project together with its links
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update saves project fields and replaces the entire link collection in
// one transaction. Links not in the submitted set are gone afterwards;
// this is a destructive replace, not a merge.
func (r *GormProjectRepository) Update(project *models.Project, links []models.ProjectLink) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).
			Delete(&models.ProjectLink{}).Error; err != nil {
			return err
		}

		if err := tx.Omit("Links").Save(project).Error; err != nil {
			return err
		}

		for i := range links {
			links[i].ID = ""
			links[i].ProjectID = project.ID
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		project.Links = links
		return nil
	})
}

// UpdateStatus changes only the status of a user's project
func (r *GormProjectRepository) UpdateStatus(userID, id string, status models.ProjectStatus) error {
	result := r.db.Model(&models.Project{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user's project and its links
func (r *GormProjectRepository) Delete(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Where("user_id = ?", userID).First(&project, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", project.ID).
			Delete(&models.ProjectLink{}).Error; err != nil {
			return err
		}

		return tx.Delete(&project).Error
	})
}
