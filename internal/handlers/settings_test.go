package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/monjournal/journal-api/internal/constants"
	"github.com/monjournal/journal-api/internal/dto"
	"github.com/monjournal/journal-api/internal/models"
	"github.com/monjournal/journal-api/internal/repository"
	"github.com/monjournal/journal-api/internal/services"
)

type SettingsHandlerTestSuite struct {
	handlerSuite
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()

	h := NewSettingsHandler(services.NewSettingsService(repository.NewUserRepository(s.db)))
	s.router.GET("/api/settings", h.GetSettings)
	s.router.PUT("/api/settings", h.UpdateSettings)
	s.router.GET("/api/counter", h.GetCounter)
	s.router.POST("/api/counter", h.UpdateCounter)
}

func (s *SettingsHandlerTestSuite) TestGetSettings_Defaults() {
	var settings dto.SettingsDTO
	w := s.request(http.MethodGet, "/api/settings", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &settings)

	s.Equal(constants.DefaultBlurLevel, settings.BlurLevel)
	s.Equal(constants.DefaultItemsPerPage, settings.ItemsPerPage)
	s.False(settings.HasPin)
}

func (s *SettingsHandlerTestSuite) TestUpdateSettings_PartialUpdate() {
	var settings dto.SettingsDTO

	w := s.request(http.MethodPut, "/api/settings", map[string]any{"blur_level": 4})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &settings)
	s.Equal(4, settings.BlurLevel)
	s.Equal(constants.DefaultItemsPerPage, settings.ItemsPerPage)

	w = s.request(http.MethodPut, "/api/settings", map[string]any{"items_per_page": 50})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &settings)
	s.Equal(4, settings.BlurLevel)
	s.Equal(50, settings.ItemsPerPage)
}

func (s *SettingsHandlerTestSuite) TestUpdateSettings_SetPinStoresOnlyHash() {
	var settings dto.SettingsDTO

	w := s.request(http.MethodPut, "/api/settings", map[string]any{"pin_code": "4321"})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &settings)
	s.True(settings.HasPin)

	var user models.User
	s.Require().NoError(s.db.First(&user, "id = ?", s.user.ID).Error)
	s.NotEqual("4321", user.PinHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte("4321")))
}

func (s *SettingsHandlerTestSuite) TestUpdateSettings_EmptyPinClearsIt() {
	w := s.request(http.MethodPut, "/api/settings", map[string]any{"pin_code": "4321"})
	s.requireStatus(w, http.StatusOK)

	var settings dto.SettingsDTO
	w = s.request(http.MethodPut, "/api/settings", map[string]any{"pin_code": ""})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &settings)
	s.False(settings.HasPin)
}

func (s *SettingsHandlerTestSuite) TestUpdateSettings_BlurLevelBounds() {
	w := s.request(http.MethodPut, "/api/settings", map[string]any{"blur_level": -1})
	s.requireStatus(w, http.StatusBadRequest)

	w = s.request(http.MethodPut, "/api/settings", map[string]any{"blur_level": 21})
	s.requireStatus(w, http.StatusBadRequest)

	w = s.request(http.MethodPut, "/api/settings", map[string]any{"blur_level": 20})
	s.requireStatus(w, http.StatusOK)
}

func (s *SettingsHandlerTestSuite) TestUpdateSettings_ItemsPerPageBounds() {
	w := s.request(http.MethodPut, "/api/settings", map[string]any{"items_per_page": 4})
	s.requireStatus(w, http.StatusBadRequest)

	w = s.request(http.MethodPut, "/api/settings", map[string]any{"items_per_page": 101})
	s.requireStatus(w, http.StatusBadRequest)

	w = s.request(http.MethodPut, "/api/settings", map[string]any{"items_per_page": 5})
	s.requireStatus(w, http.StatusOK)
}

func (s *SettingsHandlerTestSuite) TestCounter() {
	var resp struct {
		Value int `json:"value"`
	}

	w := s.request(http.MethodGet, "/api/counter", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &resp)
	s.Equal(0, resp.Value)

	w = s.request(http.MethodPost, "/api/counter", map[string]any{"delta": 5})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &resp)
	s.Equal(5, resp.Value)

	w = s.request(http.MethodPost, "/api/counter", map[string]any{"delta": -2})
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &resp)
	s.Equal(3, resp.Value)

	// Survives reload.
	w = s.request(http.MethodGet, "/api/counter", nil)
	s.requireStatus(w, http.StatusOK)
	s.decode(w, &resp)
	s.Equal(3, resp.Value)
}

func TestSettingsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
