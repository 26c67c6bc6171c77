package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monjournal/journal-api/internal/dto"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/services"
)

// SettingsHandler coordinates preference and counter handlers.
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns stored preferences. Only the presence of a PIN is
// exposed, never the hash.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*user))
}

// UpdateSettings applies a partial preference update.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type UpdateSettingsRequest struct {
		BlurLevel    *int    `json:"blur_level"`
		ItemsPerPage *int    `json:"items_per_page"`
		PinCode      *string `json:"pin_code"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.settingsService.UpdateSettings(user, services.UpdateSettingsInput{
		BlurLevel:    req.BlurLevel,
		ItemsPerPage: req.ItemsPerPage,
		PinCode:      req.PinCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlurLevelOutOfRange),
			errors.Is(err, services.ErrItemsPerPageOutOfRange):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update settings")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(*user))
}

// GetCounter returns the stored counter value.
func (h *SettingsHandler) GetCounter(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": h.settingsService.GetCounter(user)})
}

// UpdateCounter adds a delta to the counter and returns the new value.
func (h *SettingsHandler) UpdateCounter(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type CounterRequest struct {
		Delta *int `json:"delta" binding:"required"`
	}

	var req CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	value, err := h.settingsService.UpdateCounter(user, *req.Delta)
	if err != nil {
		apierrors.InternalError(c, "Failed to update counter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": value})
}
