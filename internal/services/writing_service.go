package services

import (
	"fmt"

	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

// WritingService handles the append-only writing log. There is
// intentionally no update, delete or search.
type WritingService struct {
	writingRepo repository.WritingRepository
}

// NewWritingService creates a new WritingService
func NewWritingService(writingRepo repository.WritingRepository) *WritingService {
	return &WritingService{writingRepo: writingRepo}
}

// CreateWriting appends a new writing
func (s *WritingService) CreateWriting(user *models.User, title, content string) (*models.Writing, error) {
	writing := &models.Writing{
		UserID:  user.ID,
		Title:   title,
		Content: content,
	}

	if err := s.writingRepo.Create(writing); err != nil {
		return nil, fmt.Errorf("failed to create writing: %w", err)
	}

	return writing, nil
}

// ListWritings returns the user's writings newest first
func (s *WritingService) ListWritings(user *models.User) ([]models.Writing, error) {
	writings, err := s.writingRepo.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list writings: %w", err)
	}
	return writings, nil
}
