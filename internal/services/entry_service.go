package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/constants"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
)

var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrLockRequiresPin = errors.New("a PIN must be set in settings before locking entries")
	ErrNoPinConfigured = errors.New("no PIN set")
	ErrInvalidPin      = errors.New("invalid PIN")
)

// EntryService handles journal entry business logic, including the
// listing/search/pagination pipeline and the PIN lock rules.
type EntryService struct {
	entryRepo repository.EntryRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(entryRepo repository.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// ListEntriesInput represents the entry list query surface
type ListEntriesInput struct {
	Page         int
	Search       string
	IncludeEmpty bool
}

// EntryInput represents input for creating or updating an entry
type EntryInput struct {
	Content    string
	Date       time.Time
	WakeTime   *time.Time
	SleepTime  *time.Time
	DidSport   bool
	Asmr       bool
	ScreenTime *int
	IsLocked   bool
	TagIDs     []string
}

// ListEntries returns one page of a user's entries plus the unpaginated
// total for the same filter. Page is 1-indexed; page size comes from the
// user's items-per-page preference.
func (s *EntryService) ListEntries(user *models.User, input ListEntriesInput) ([]models.Entry, int64, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := user.ItemsPerPage
	if pageSize <= 0 {
		pageSize = constants.DefaultItemsPerPage
	}

	entries, total, err := s.entryRepo.List(repository.EntryFilter{
		UserID:       user.ID,
		Search:       input.Search,
		IncludeEmpty: input.IncludeEmpty,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, total, nil
}

// CreateEntry creates a new entry. Locking requires a configured PIN.
func (s *EntryService) CreateEntry(user *models.User, input EntryInput) error {
	if input.IsLocked && !user.HasPin() {
		return ErrLockRequiresPin
	}

	entry := &models.Entry{
		UserID:     user.ID,
		Content:    input.Content,
		Date:       input.Date,
		WakeTime:   input.WakeTime,
		SleepTime:  input.SleepTime,
		DidSport:   input.DidSport,
		Asmr:       input.Asmr,
		ScreenTime: input.ScreenTime,
		IsLocked:   input.IsLocked,
	}

	if err := s.entryRepo.Create(entry, input.TagIDs); err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	return nil
}

// UpdateEntry overwrites an entry's fields and replaces its tag set with
// the submitted id list. The lock invariant applies on update too.
func (s *EntryService) UpdateEntry(user *models.User, id string, input EntryInput) error {
	if input.IsLocked && !user.HasPin() {
		return ErrLockRequiresPin
	}

	entry, err := s.entryRepo.FindByID(user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to find entry: %w", err)
	}

	entry.Content = input.Content
	entry.Date = input.Date
	entry.WakeTime = input.WakeTime
	entry.SleepTime = input.SleepTime
	entry.DidSport = input.DidSport
	entry.Asmr = input.Asmr
	entry.ScreenTime = input.ScreenTime
	entry.IsLocked = input.IsLocked

	if err := s.entryRepo.Update(entry, input.TagIDs); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	return nil
}

// DeleteEntry removes a user's entry
func (s *EntryService) DeleteEntry(user *models.User, id string) error {
	if err := s.entryRepo.Delete(user.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// UnlockEntry verifies the supplied PIN and, on success, returns the
// entry unredacted. The unlock is per-request; the next list call serves
// the entry redacted again.
func (s *EntryService) UnlockEntry(user *models.User, id, pin string) (*models.Entry, error) {
	if !user.HasPin() {
		return nil, ErrNoPinConfigured
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)) != nil {
		return nil, ErrInvalidPin
	}

	entry, err := s.entryRepo.FindByID(user.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	return entry, nil
}
