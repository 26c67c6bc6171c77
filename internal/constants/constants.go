package constants

// Context keys
const (
	ContextKeyUser   = "current_user"
	SessionKeyUserID = "user_id"
)

// Pagination
const (
	DefaultItemsPerPage = 20
	MinItemsPerPage     = 5
	MaxItemsPerPage     = 100
)

// Settings bounds
const (
	MinBlurLevel     = 0
	MaxBlurLevel     = 20
	DefaultBlurLevel = 10
)

// Placeholder identity for the single implicit user. Email is never used
// beyond satisfying the unique column.
const (
	DefaultUserEmail    = "me@journal.local"
	DefaultUserPassword = "unused"
)
