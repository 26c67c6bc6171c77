package services

import (
	"fmt"

	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

// defaultTags are seeded for every user the first time tags are listed.
// Seeding is idempotent on [userID, name]; colors of existing tags are
// left alone.
var defaultTags = []struct {
	Name  string
	Color string
}{
	{"normal", "#6366f1"},
	{"medical", "#ef4444"},
	{"dream", "#8b5cf6"},
}

// TagService handles tag business logic
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// ListTags ensures the default tags exist, then returns all of the
// user's tags ordered by name.
func (s *TagService) ListTags(user *models.User) ([]models.Tag, error) {
	for _, t := range defaultTags {
		if err := s.tagRepo.Upsert(user.ID, t.Name, t.Color); err != nil {
			return nil, fmt.Errorf("failed to seed default tag %q: %w", t.Name, err)
		}
	}

	tags, err := s.tagRepo.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, nil
}

// CreateTag creates a user tag. There is no uniqueness pre-check; a
// duplicate name surfaces the database constraint violation.
func (s *TagService) CreateTag(user *models.User, name, color string) (*models.Tag, error) {
	tag := &models.Tag{
		UserID: user.ID,
		Name:   name,
		Color:  color,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}
