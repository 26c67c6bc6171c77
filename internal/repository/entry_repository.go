package repository

import (
	"strings"

	"github.com/monjournal/journal-api/internal/models"
	"gorm.io/gorm"
)

// GormEntryRepository is a GORM implementation of EntryRepository
type GormEntryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &GormEntryRepository{db: db}
}

// applyFilter builds the WHERE clause shared by the count and the page
// query. Search wins over the include-empty flag: a search always scans
// all content, empty or not.
func applyFilter(db *gorm.DB, filter EntryFilter) *gorm.DB {
	query := db.Where("entries.user_id = ?", filter.UserID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(entries.content) LIKE ?", pattern)
	} else if !filter.IncludeEmpty {
		query = query.Where("entries.content <> ''")
	}

	return query
}

// List retrieves entries with filtering and pagination
func (r *GormEntryRepository) List(filter EntryFilter) ([]models.Entry, int64, error) {
	query := applyFilter(r.db.Model(&models.Entry{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("entries.date DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	var entries []models.Entry
	if err := listQuery.Preload("Tags").Preload("Images").Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// FindByID finds a user's entry by ID with tags and images loaded
func (r *GormEntryRepository) FindByID(userID, id string) (*models.Entry, error) {
	var entry models.Entry
	if err := r.db.
		Preload("Tags").
		Preload("Images").
		Where("user_id = ?", userID).
		First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create creates an entry and attaches the given tag ids
func (r *GormEntryRepository) Create(entry *models.Entry, tagIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(entry).Error; err != nil {
			return err
		}
		return replaceTags(tx, entry, tagIDs)
	})
}

// Update saves entry fields and replaces its tag set with tagIDs. Tag
// association is a full replace: omitted tags are detached, not deleted.
func (r *GormEntryRepository) Update(entry *models.Entry, tagIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Images").Save(entry).Error; err != nil {
			return err
		}
		return replaceTags(tx, entry, tagIDs)
	})
}

func replaceTags(tx *gorm.DB, entry *models.Entry, tagIDs []string) error {
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := tx.Where("user_id = ? AND id IN ?", entry.UserID, tagIDs).
			Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(entry).Association("Tags").Replace(&tags)
}

// Delete removes a user's entry along with its join rows and images
func (r *GormEntryRepository) Delete(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entry models.Entry
		if err := tx.Where("user_id = ?", userID).First(&entry, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&entry).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", entry.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}

		return tx.Delete(&entry).Error
	})
}

// ListStatsRows returns all of a user's entries ordered by date ascending
func (r *GormEntryRepository) ListStatsRows(userID string) ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.
		Select("id", "date", "wake_time", "sleep_time", "screen_time").
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListDatesWithContent returns dates of entries with non-empty content
func (r *GormEntryRepository) ListDatesWithContent(userID string) ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.
		Select("id", "date").
		Where("user_id = ? AND content <> ''", userID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
