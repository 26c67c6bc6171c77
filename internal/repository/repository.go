package repository

import (
	"github.com/monjournal/journal-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindFirst returns the first user row, if any
	FindFirst() (*models.User, error)

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// Create creates a new user
	Create(user *models.User) error

	// Save persists changes to an existing user
	Save(user *models.User) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// Upsert creates the tag unless one with the same [userID, name]
	// already exists; an existing tag is left untouched
	Upsert(userID, name, color string) error

	// ListByUser returns all tags for a user ordered by name ascending
	ListByUser(userID string) ([]models.Tag, error)

	// Create creates a new tag; duplicate names surface the unique
	// constraint violation
	Create(tag *models.Tag) error

	// FindByIDs returns the user's tags matching the given ids
	FindByIDs(userID string, ids []string) ([]models.Tag, error)
}

// EntryFilter holds filtering options for listing entries
type EntryFilter struct {
	UserID       string
	Search       string
	IncludeEmpty bool
	Page         int
	PageSize     int
}

// EntryRepository defines the interface for entry data access
type EntryRepository interface {
	// List retrieves entries with filtering and pagination, plus the
	// unpaginated total for the same filter
	List(filter EntryFilter) ([]models.Entry, int64, error)

	// FindByID finds a user's entry by ID with tags and images loaded
	FindByID(userID, id string) (*models.Entry, error)

	// Create creates an entry and attaches the given tag ids
	Create(entry *models.Entry, tagIDs []string) error

	// Update saves entry fields and replaces its tag set with tagIDs
	Update(entry *models.Entry, tagIDs []string) error

	// Delete removes a user's entry
	Delete(userID, id string) error

	// ListStatsRows returns all of a user's entries ordered by date
	// ascending (stats projection)
	ListStatsRows(userID string) ([]models.Entry, error)

	// ListDatesWithContent returns dates of entries with non-empty content
	ListDatesWithContent(userID string) ([]models.Entry, error)
}

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	// Create creates a new goal
	Create(goal *models.Goal) error

	// ListByUser returns a user's goals ordered by deadline ascending
	ListByUser(userID string) ([]models.Goal, error)

	// FindByID finds a user's goal by ID
	FindByID(userID, id string) (*models.Goal, error)

	// Save persists changes to an existing goal
	Save(goal *models.Goal) error
}

// WritingRepository defines the interface for writing data access
type WritingRepository interface {
	// Create creates a new writing
	Create(writing *models.Writing) error

	// ListByUser returns a user's writings newest first
	ListByUser(userID string) ([]models.Writing, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// ListByUser returns a user's projects with links, ordered by status
	// rank then most recently updated
	ListByUser(userID string) ([]models.Project, error)

	// FindByID finds a user's project by ID with links loaded
	FindByID(userID, id string) (*models.Project, error)

	// Create creates a project together with its links
	Create(project *models.Project) error

	// Update saves project fields and replaces the entire link
	// collection with links, atomically
	Update(project *models.Project, links []models.ProjectLink) error

	// UpdateStatus changes only the status of a user's project
	UpdateStatus(userID, id string, status models.ProjectStatus) error

	// Delete removes a user's project and its links
	Delete(userID, id string) error
}
