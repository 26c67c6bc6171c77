package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/constants"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

// UserService resolves the single implicit user of the application.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Resolve returns the first user row, creating it with default
// preferences if none exists yet. Two concurrent first calls can each
// insert a user; the single-process, single-user deployment accepts
// that race rather than guarding it.
func (s *UserService) Resolve() (*models.User, error) {
	user, err := s.userRepo.FindFirst()
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Email:        constants.DefaultUserEmail,
		PasswordHash: constants.DefaultUserPassword,
		BlurLevel:    constants.DefaultBlurLevel,
		ItemsPerPage: constants.DefaultItemsPerPage,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID
func (s *UserService) FindByID(id string) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
