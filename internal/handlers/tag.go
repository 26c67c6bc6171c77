package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/dto"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/services"
)

// TagHandler coordinates tag HTTP handlers.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags seeds the default tags idempotently and lists all of the
// user's tags by name.
func (h *TagHandler) ListTags(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	tags, err := h.tagService.ListTags(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to list tags")
		return
	}

	data := make([]dto.TagDTO, len(tags))
	for i, t := range tags {
		data[i] = dto.ToTagDTO(t)
	}

	c.JSON(http.StatusOK, data)
}

// CreateTag creates a tag. A duplicate name surfaces the unique
// constraint as a conflict.
func (h *TagHandler) CreateTag(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type CreateTagRequest struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color" binding:"required"`
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tagService.CreateTag(user, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "A tag with this name already exists")
			return
		}
		apierrors.InternalError(c, "Failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagDTO(*tag))
}
