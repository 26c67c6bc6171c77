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
)

// GoalHandler coordinates goal HTTP handlers.
type GoalHandler struct {
	goalService *services.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// ListGoals returns the user's goals ordered by deadline.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	goals, err := h.goalService.ListGoals(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to list goals")
		return
	}

	data := make([]dto.GoalDTO, len(goals))
	for i, g := range goals {
		data[i] = dto.ToGoalDTO(g)
	}

	c.JSON(http.StatusOK, data)
}

// CreateGoal creates a new goal.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type CreateGoalRequest struct {
		Title       string    `json:"title" binding:"required"`
		Description *string   `json:"description"`
		Deadline    time.Time `json:"deadline" binding:"required"`
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	goal, err := h.goalService.CreateGoal(user, services.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalDTO(*goal))
}

// ToggleCompletion flips a goal's completion state.
func (h *GoalHandler) ToggleCompletion(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	goal, err := h.goalService.ToggleCompletion(user, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			apierrors.NotFound(c, "Goal not found")
			return
		}
		apierrors.InternalError(c, "Failed to toggle goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalDTO(*goal))
}

// SetRemark stores a freeform remark; blank remarks become null.
func (h *GoalHandler) SetRemark(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type RemarkRequest struct {
		Remark *string `json:"remark"`
	}

	var req RemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	goal, err := h.goalService.SetRemark(user, c.Param("id"), req.Remark)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			apierrors.NotFound(c, "Goal not found")
			return
		}
		apierrors.InternalError(c, "Failed to update remark")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalDTO(*goal))
}
