package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monjournal/journal-api/internal/dto"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/services"
	"github.com/monjournal/journal-api/internal/utils"
)

// EntryHandler coordinates journal entry HTTP handlers.
type EntryHandler struct {
	entryService *services.EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService *services.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest is the write payload shared by create and update.
type EntryRequest struct {
	Content    string     `json:"content"`
	Date       time.Time  `json:"date" binding:"required"`
	WakeTime   *time.Time `json:"wake_time"`
	SleepTime  *time.Time `json:"sleep_time"`
	DidSport   bool       `json:"did_sport"`
	Asmr       bool       `json:"asmr"`
	ScreenTime *int       `json:"screen_time"`
	IsLocked   bool       `json:"is_locked"`
	TagIDs     []string   `json:"tag_ids"`
}

func (r EntryRequest) toInput() services.EntryInput {
	return services.EntryInput{
		Content:    r.Content,
		Date:       r.Date,
		WakeTime:   r.WakeTime,
		SleepTime:  r.SleepTime,
		DidSport:   r.DidSport,
		Asmr:       r.Asmr,
		ScreenTime: r.ScreenTime,
		IsLocked:   r.IsLocked,
		TagIDs:     r.TagIDs,
	}
}

// ListEntries returns one page of entries. Locked entries are served
// redacted: content null, images empty.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	params := utils.GetEntryListParams(c)

	entries, total, err := h.entryService.ListEntries(user, services.ListEntriesInput{
		Page:         params.Page,
		Search:       params.Search,
		IncludeEmpty: params.IncludeEmpty,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to list entries")
		return
	}

	data := make([]dto.EntryDTO, len(entries))
	for i, e := range entries {
		data[i] = dto.ToEntryDTO(e, true)
	}

	c.JSON(http.StatusOK, dto.EntryListResponse{Data: data, Total: total})
}

// CreateEntry creates a new entry.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.entryService.CreateEntry(user, req.toInput()); err != nil {
		if errors.Is(err, services.ErrLockRequiresPin) {
			apierrors.InvalidOperation(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// UpdateEntry overwrites an entry and replaces its tag set.
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.entryService.UpdateEntry(user, c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLockRequiresPin):
			apierrors.InvalidOperation(c, err.Error())
		case errors.Is(err, services.ErrEntryNotFound):
			apierrors.NotFound(c, "Entry not found")
		default:
			apierrors.InternalError(c, "Failed to update entry")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteEntry removes an entry.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	if err := h.entryService.DeleteEntry(user, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			apierrors.NotFound(c, "Entry not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}

// UnlockEntry verifies the PIN and returns the entry unredacted. The
// unlock does not persist; the next list call redacts again. A wrong PIN
// is a returned failure, not an error, and never leaks content.
func (h *EntryHandler) UnlockEntry(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type UnlockRequest struct {
		Pin string `json:"pin" binding:"required"`
	}

	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.entryService.UnlockEntry(user, c.Param("id"), req.Pin)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoPinConfigured):
			apierrors.InvalidOperation(c, "No PIN set")
		case errors.Is(err, services.ErrInvalidPin):
			c.JSON(http.StatusOK, gin.H{"success": false, "error": "Invalid PIN"})
		case errors.Is(err, services.ErrEntryNotFound):
			apierrors.NotFound(c, "Entry not found")
		default:
			apierrors.InternalError(c, "Failed to unlock entry")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dto.ToEntryDTO(*entry, false),
	})
}
