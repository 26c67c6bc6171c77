package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// ProjectService handles project tracker business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectLinkInput represents one external link in a submitted link list
type ProjectLinkInput struct {
	Title string
	URL   string
}

// ProjectInput represents input for creating or updating a project
type ProjectInput struct {
	Title       string
	Description string
	Status      models.ProjectStatus
	Links       []ProjectLinkInput
}

// ListProjects returns the user's projects ordered by status rank then
// most recently updated
func (s *ProjectService) ListProjects(user *models.User) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a project with its links
func (s *ProjectService) CreateProject(user *models.User, input ProjectInput) (*models.Project, error) {
	if !input.Status.IsValid() {
		return nil, ErrInvalidProjectStatus
	}

	project := &models.Project{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Links:       toLinkModels(input.Links),
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject overwrites a project's fields and replaces its whole
// link collection with the submitted set. Links omitted from the input
// are permanently dropped.
func (s *ProjectService) UpdateProject(user *models.User, id string, input ProjectInput) (*models.Project, error) {
	if !input.Status.IsValid() {
		return nil, ErrInvalidProjectStatus
	}

	project, err := s.findProject(user, id)
	if err != nil {
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Status = input.Status

	if err := s.projectRepo.Update(project, toLinkModels(input.Links)); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// UpdateStatus changes only the status, leaving other fields untouched
func (s *ProjectService) UpdateStatus(user *models.User, id string, status models.ProjectStatus) error {
	if !status.IsValid() {
		return ErrInvalidProjectStatus
	}

	if err := s.projectRepo.UpdateStatus(user.ID, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// DeleteProject removes a project and its links
func (s *ProjectService) DeleteProject(user *models.User, id string) error {
	if err := s.projectRepo.Delete(user.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) findProject(user *models.User, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

func toLinkModels(links []ProjectLinkInput) []models.ProjectLink {
	out := make([]models.ProjectLink, len(links))
	for i, l := range links {
		out[i] = models.ProjectLink{Title: l.Title, URL: l.URL}
	}
	return out
}
