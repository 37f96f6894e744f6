package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spendlens/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
	db   *database.DB
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.db = database.SetupTestDB(s.T())
}

func (s *HealthHandlerTestSuite) TestHealthCheck() {
	handler := NewHealthCheckHandler(s.db.DB)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("healthy", response["status"])
	s.NotEmpty(response["time"])
}
