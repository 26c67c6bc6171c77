package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monjournal/journal-api/internal/dto"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/services"
)

// WritingHandler coordinates the append-only writing log.
type WritingHandler struct {
	writingService *services.WritingService
}

// NewWritingHandler creates a new WritingHandler.
func NewWritingHandler(writingService *services.WritingService) *WritingHandler {
	return &WritingHandler{writingService: writingService}
}

// ListWritings returns the user's writings newest first.
func (h *WritingHandler) ListWritings(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	writings, err := h.writingService.ListWritings(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to list writings")
		return
	}

	data := make([]dto.WritingDTO, len(writings))
	for i, w := range writings {
		data[i] = dto.ToWritingDTO(w)
	}

	c.JSON(http.StatusOK, data)
}

// CreateWriting appends a new writing.
func (h *WritingHandler) CreateWriting(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type CreateWritingRequest struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}

	var req CreateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	writing, err := h.writingService.CreateWriting(user, req.Title, req.Content)
	if err != nil {
		apierrors.InternalError(c, "Failed to create writing")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWritingDTO(*writing))
}
