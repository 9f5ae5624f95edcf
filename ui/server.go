// Package ui serves the Measles Monitor HTTP surface: the JSON
// endpoints the dashboard front end consumes, plus the rendered
// assumptions page. Chart construction happens entirely client-side;
// this layer only ships numbers.
package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"measlesmon/app"
	"measlesmon/internal"
	"measlesmon/internal/errors"
)

// Server represents the web server for the Measles Monitor dashboard
type Server struct {
	router   *gin.Engine
	scenario *app.ScenarioService
	logger   *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(scenario *app.ScenarioService, ginMode string) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	s := &Server{
		router:   gin.Default(),
		scenario: scenario,
		logger:   internal.DefaultLogger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/schools", s.handleListSchools)
		api.GET("/scenario", s.handleSchoolScenario)
		api.GET("/scenario/custom", s.handleCustomScenario)
		api.GET("/compare", s.handleCompare)
		api.GET("/calendar", s.handleCalendar)
		api.GET("/assumptions", s.handleAssumptions)
	}
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	s.logger.Info("[ui] listening on :%s", port)
	return s.router.Run(":" + port)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps application error codes onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput, errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeDatasetError:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
