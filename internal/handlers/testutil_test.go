package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/monjournal/journal-api/internal/constants"
	"github.com/monjournal/journal-api/internal/models"
)

// handlerSuite carries the shared test fixture: an in-memory sqlite
// database and a router whose first middleware injects the test user,
// standing in for ResolveUser.
type handlerSuite struct {
	suite.Suite
	db     *gorm.DB
	user   *models.User
	router *gin.Engine
}

func (s *handlerSuite) SetupTest() {
	var err error
	s.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	err = s.db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Entry{},
		&models.Image{},
		&models.Goal{},
		&models.Writing{},
		&models.Project{},
		&models.ProjectLink{},
	)
	s.Require().NoError(err)

	s.user = &models.User{
		Email:        constants.DefaultUserEmail,
		PasswordHash: constants.DefaultUserPassword,
		BlurLevel:    constants.DefaultBlurLevel,
		ItemsPerPage: constants.DefaultItemsPerPage,
	}
	s.Require().NoError(s.db.Create(s.user).Error)

	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		// Reload so PIN/preference changes made mid-test are visible.
		var user models.User
		s.Require().NoError(s.db.First(&user, "id = ?", s.user.ID).Error)
		c.Set(constants.ContextKeyUser, &user)
	})
}

func (s *handlerSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *handlerSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlerSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (s *handlerSuite) requireStatus(w *httptest.ResponseRecorder, code int) {
	s.Require().Equalf(code, w.Code, "unexpected status, body: %s", w.Body.String())
}
