package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// EntryListParams holds the entry list query surface: 1-indexed page,
// free-text search and the include-empty-content flag.
type EntryListParams struct {
	Page         int
	Search       string
	IncludeEmpty bool
}

// GetEntryListParams extracts the entry list parameters from the request
func GetEntryListParams(c *gin.Context) EntryListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	includeEmpty, _ := strconv.ParseBool(c.DefaultQuery("include_empty", "false"))

	return EntryListParams{
		Page:         page,
		Search:       c.Query("q"),
		IncludeEmpty: includeEmpty,
	}
}
