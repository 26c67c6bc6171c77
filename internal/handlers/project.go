package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monjournal/journal-api/internal/dto"
	apierrors "github.com/monjournal/journal-api/internal/errors"
	"github.com/monjournal/journal-api/internal/middleware"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/services"
)

// ProjectHandler coordinates project tracker HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest is the write payload shared by create and update. The
// link list is the complete desired set; on update it replaces whatever
// links the project had.
type ProjectRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status" binding:"required"`
	Links       []ProjectLinkRequest `json:"links"`
}

type ProjectLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

func (r ProjectRequest) toInput() services.ProjectInput {
	links := make([]services.ProjectLinkInput, len(r.Links))
	for i, l := range r.Links {
		links[i] = services.ProjectLinkInput{Title: l.Title, URL: l.URL}
	}
	return services.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Links:       links,
	}
}

// ListProjects returns projects ordered by status rank then most
// recently updated.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	projects, err := h.projectService.ListProjects(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to list projects")
		return
	}

	data := make([]dto.ProjectDTO, len(projects))
	for i, p := range projects {
		data[i] = dto.ToProjectDTO(p)
	}

	c.JSON(http.StatusOK, data)
}

// CreateProject creates a project with its links.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(user, req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectStatus) {
			apierrors.BadRequest(c, "Invalid project status")
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject overwrites a project and replaces its entire link list.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(user, c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProjectStatus):
			apierrors.BadRequest(c, "Invalid project status")
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		default:
			apierrors.InternalError(c, "Failed to update project")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// UpdateStatus changes only the project status.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	type StatusRequest struct {
		Status models.ProjectStatus `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.projectService.UpdateStatus(user, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProjectStatus):
			apierrors.BadRequest(c, "Invalid project status")
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		default:
			apierrors.InternalError(c, "Failed to update status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteProject removes a project and its links.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		apierrors.InternalError(c, "User not resolved")
		return
	}

	if err := h.projectService.DeleteProject(user, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
