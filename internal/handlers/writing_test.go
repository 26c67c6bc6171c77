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

type WritingHandlerTestSuite struct {
	handlerSuite
}

func (s *WritingHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()

	h := NewWritingHandler(services.NewWritingService(repository.NewWritingRepository(s.db)))
	s.router.GET("/api/writings", h.ListWritings)
	s.router.POST("/api/writings", h.CreateWriting)
}

func (s *WritingHandlerTestSuite) TestCreateWriting() {
	w := s.request(http.MethodPost, "/api/writings", map[string]any{
		"title":   "on focus",
		"content": "a longer reflection",
	})
	s.requireStatus(w, http.StatusCreated)

	var writing dto.WritingDTO
	s.decode(w, &writing)
	s.Equal("on focus", writing.Title)
	s.NotEmpty(writing.ID)
}

func (s *WritingHandlerTestSuite) TestCreateWriting_RequiresTitleAndContent() {
	w := s.request(http.MethodPost, "/api/writings", map[string]any{"title": "no content"})
	s.requireStatus(w, http.StatusBadRequest)
}

func (s *WritingHandlerTestSuite) TestListWritings_NewestFirst() {
	older := &models.Writing{UserID: s.user.ID, Title: "older", Content: "…", CreatedAt: time.Now().Add(-time.Hour)}
	s.Require().NoError(s.db.Create(older).Error)
	newer := &models.Writing{UserID: s.user.ID, Title: "newer", Content: "…"}
	s.Require().NoError(s.db.Create(newer).Error)

	var writings []dto.WritingDTO
	w := s.request(http.MethodGet, "/api/writings", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &writings)

	s.Require().Len(writings, 2)
	s.Equal("newer", writings[0].Title)
	s.Equal("older", writings[1].Title)
}

func TestWritingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WritingHandlerTestSuite))
}
