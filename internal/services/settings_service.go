package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/monjournal/journal-api/internal/constants"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

var (
	ErrBlurLevelOutOfRange    = errors.New("blur level must be between 0 and 20")
	ErrItemsPerPageOutOfRange = errors.New("items per page must be between 5 and 100")
	ErrFailedToHashPin        = errors.New("failed to hash PIN")
)

// SettingsService handles per-user preferences and the manual counter.
type SettingsService struct {
	userRepo repository.UserRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(userRepo repository.UserRepository) *SettingsService {
	return &SettingsService{userRepo: userRepo}
}

// UpdateSettingsInput represents a partial settings update; nil fields
// are left untouched.
type UpdateSettingsInput struct {
	BlurLevel    *int
	ItemsPerPage *int
	PinCode      *string
}

// UpdateSettings applies a partial preference update. The PIN is stored
// as a bcrypt hash; an empty PIN clears it. Note: the UI caps the PIN at
// 4 characters but the server deliberately does not.
func (s *SettingsService) UpdateSettings(user *models.User, input UpdateSettingsInput) error {
	if input.BlurLevel != nil {
		if *input.BlurLevel < constants.MinBlurLevel || *input.BlurLevel > constants.MaxBlurLevel {
			return ErrBlurLevelOutOfRange
		}
		user.BlurLevel = *input.BlurLevel
	}

	if input.ItemsPerPage != nil {
		if *input.ItemsPerPage < constants.MinItemsPerPage || *input.ItemsPerPage > constants.MaxItemsPerPage {
			return ErrItemsPerPageOutOfRange
		}
		user.ItemsPerPage = *input.ItemsPerPage
	}

	if input.PinCode != nil {
		if *input.PinCode == "" {
			user.PinHash = ""
		} else {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.PinCode), bcrypt.DefaultCost)
			if err != nil {
				return ErrFailedToHashPin
			}
			user.PinHash = string(hashed)
		}
	}

	if err := s.userRepo.Save(user); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetCounter returns the stored counter value
func (s *SettingsService) GetCounter(user *models.User) int {
	return user.Counter
}

// UpdateCounter adds delta to the counter and returns the new value.
// No bounds.
func (s *SettingsService) UpdateCounter(user *models.User, delta int) (int, error) {
	user.Counter += delta
	if err := s.userRepo.Save(user); err != nil {
		return 0, fmt.Errorf("failed to save counter: %w", err)
	}
	return user.Counter, nil
}
