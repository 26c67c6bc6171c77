package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/monjournal/journal-api/internal/dto"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
	"github.com/monjournal/journal-api/internal/services"
)

type ProjectHandlerTestSuite struct {
	handlerSuite
}

func (s *ProjectHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()

	h := NewProjectHandler(services.NewProjectService(repository.NewProjectRepository(s.db)))
	s.router.GET("/api/projects", h.ListProjects)
	s.router.POST("/api/projects", h.CreateProject)
	s.router.PUT("/api/projects/:id", h.UpdateProject)
	s.router.PATCH("/api/projects/:id/status", h.UpdateStatus)
	s.router.DELETE("/api/projects/:id", h.DeleteProject)
}

func (s *ProjectHandlerTestSuite) createProject(title string, status models.ProjectStatus) *models.Project {
	project := &models.Project{UserID: s.user.ID, Title: title, Status: status}
	s.Require().NoError(s.db.Create(project).Error)
	return project
}

func (s *ProjectHandlerTestSuite) TestCreateProject_WithLinks() {
	w := s.request(http.MethodPost, "/api/projects", map[string]any{
		"title":       "home server",
		"description": "self hosting",
		"status":      "STARTED",
		"links": []map[string]any{
			{"title": "repo", "url": "https://example.com/repo"},
			{"title": "docs", "url": "https://example.com/docs"},
		},
	})
	s.requireStatus(w, http.StatusCreated)

	var project dto.ProjectDTO
	s.decode(w, &project)
	s.Equal("home server", project.Title)
	s.Equal(models.ProjectStatusStarted, project.Status)
	s.Require().Len(project.Links, 2)
	s.Equal("repo", project.Links[0].Title)
}

func (s *ProjectHandlerTestSuite) TestCreateProject_InvalidStatus() {
	w := s.request(http.MethodPost, "/api/projects", map[string]any{
		"title":  "bad",
		"status": "SHIPPED",
	})
	s.requireStatus(w, http.StatusBadRequest)
}

func (s *ProjectHandlerTestSuite) TestListProjects_OrderedByStatusRank() {
	s.createProject("done", models.ProjectStatusDone)
	s.createProject("idea", models.ProjectStatusIdea)
	s.createProject("active", models.ProjectStatusActiveDev)
	s.createProject("research", models.ProjectStatusResearch)
	s.createProject("started", models.ProjectStatusStarted)

	var projects []dto.ProjectDTO
	w := s.request(http.MethodGet, "/api/projects", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &projects)

	s.Require().Len(projects, 5)
	titles := make([]string, len(projects))
	for i, p := range projects {
		titles[i] = p.Title
	}
	s.Equal([]string{"active", "started", "research", "idea", "done"}, titles)
}

func (s *ProjectHandlerTestSuite) TestUpdateProject_ReplacesLinkSet() {
	project := s.createProject("tracker", models.ProjectStatusIdea)
	old := &models.ProjectLink{ProjectID: project.ID, Title: "old", URL: "https://example.com/old"}
	s.Require().NoError(s.db.Create(old).Error)

	w := s.request(http.MethodPut, "/api/projects/"+project.ID, map[string]any{
		"title":  "tracker",
		"status": "RESEARCH",
		"links": []map[string]any{
			{"title": "new", "url": "https://example.com/new"},
		},
	})
	s.requireStatus(w, http.StatusOK)

	var updated dto.ProjectDTO
	s.decode(w, &updated)
	s.Equal(models.ProjectStatusResearch, updated.Status)
	s.Require().Len(updated.Links, 1)
	s.Equal("new", updated.Links[0].Title)

	// The old link row is gone, not just detached.
	var count int64
	s.Require().NoError(s.db.Model(&models.ProjectLink{}).Where("project_id = ?", project.ID).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *ProjectHandlerTestSuite) TestUpdateProject_NotFound() {
	w := s.request(http.MethodPut, "/api/projects/missing", map[string]any{
		"title":  "x",
		"status": "IDEA",
	})
	s.requireStatus(w, http.StatusNotFound)
}

func (s *ProjectHandlerTestSuite) TestUpdateStatus() {
	project := s.createProject("tracker", models.ProjectStatusIdea)

	w := s.request(http.MethodPatch, "/api/projects/"+project.ID+"/status", map[string]any{"status": "DONE"})
	s.requireStatus(w, http.StatusOK)

	var stored models.Project
	s.Require().NoError(s.db.First(&stored, "id = ?", project.ID).Error)
	s.Equal(models.ProjectStatusDone, stored.Status)
}

func (s *ProjectHandlerTestSuite) TestUpdateStatus_InvalidStatus() {
	project := s.createProject("tracker", models.ProjectStatusIdea)

	w := s.request(http.MethodPatch, "/api/projects/"+project.ID+"/status", map[string]any{"status": "PAUSED"})
	s.requireStatus(w, http.StatusBadRequest)
}

func (s *ProjectHandlerTestSuite) TestUpdateStatus_NotFound() {
	w := s.request(http.MethodPatch, "/api/projects/missing/status", map[string]any{"status": "DONE"})
	s.requireStatus(w, http.StatusNotFound)
}

func (s *ProjectHandlerTestSuite) TestDeleteProject_RemovesLinks() {
	project := s.createProject("tracker", models.ProjectStatusIdea)
	link := &models.ProjectLink{ProjectID: project.ID, Title: "repo", URL: "https://example.com/repo"}
	s.Require().NoError(s.db.Create(link).Error)

	w := s.request(http.MethodDelete, "/api/projects/"+project.ID, nil)
	s.requireStatus(w, http.StatusOK)

	var count int64
	s.Require().NoError(s.db.Model(&models.Project{}).Count(&count).Error)
	s.EqualValues(0, count)
	s.Require().NoError(s.db.Model(&models.ProjectLink{}).Count(&count).Error)
	s.EqualValues(0, count)
}

func (s *ProjectHandlerTestSuite) TestDeleteProject_NotFound() {
	w := s.request(http.MethodDelete, "/api/projects/missing", nil)
	s.requireStatus(w, http.StatusNotFound)
}

// Projects updated at different times within the same status keep most
// recently updated first.
func (s *ProjectHandlerTestSuite) TestListProjects_RecentFirstWithinStatus() {
	stale := s.createProject("stale", models.ProjectStatusIdea)
	s.Require().NoError(s.db.Model(stale).Update("updated_at", time.Now().Add(-48*time.Hour)).Error)
	s.createProject("fresh", models.ProjectStatusIdea)

	var projects []dto.ProjectDTO
	w := s.request(http.MethodGet, "/api/projects", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &projects)

	s.Require().Len(projects, 2)
	s.Equal("fresh", projects[0].Title)
	s.Equal("stale", projects[1].Title)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
