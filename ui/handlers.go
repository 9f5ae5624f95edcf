package ui

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"measlesmon/internal/errors"
)

// handleListSchools returns the listable schools from the coverage
// dataset, ordered by name.
func (s *Server) handleListSchools(c *gin.Context) {
	schools, err := s.scenario.ListSchools(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": schools, "count": len(schools)})
}

// handleSchoolScenario runs the outbreak scenario for a named school.
// GET /api/scenario?school=Acacia%20Elementary
func (s *Server) handleSchoolScenario(c *gin.Context) {
	name := c.Query("school")
	if name == "" {
		respondError(c, errors.InvalidInput("school query parameter is required"))
		return
	}

	run, err := s.scenario.RunForSchool(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// handleCustomScenario runs the outbreak scenario for user-entered
// values. GET /api/scenario/custom?enrollment=500&rate=0.85
func (s *Server) handleCustomScenario(c *gin.Context) {
	enrollment, err := strconv.Atoi(c.DefaultQuery("enrollment", "500"))
	if err != nil {
		respondError(c, errors.InvalidInput("enrollment must be an integer"))
		return
	}
	rate, err := strconv.ParseFloat(c.DefaultQuery("rate", "0.85"), 64)
	if err != nil {
		respondError(c, errors.InvalidInput("rate must be a number"))
		return
	}

	run, err := s.scenario.RunCustom(c.Request.Context(), enrollment, rate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// handleCompare runs current vs. what-if coverage for a school.
// GET /api/compare?school=Acacia%20Elementary&rate=0.95
func (s *Server) handleCompare(c *gin.Context) {
	name := c.Query("school")
	if name == "" {
		respondError(c, errors.InvalidInput("school query parameter is required"))
		return
	}
	rate, err := strconv.ParseFloat(c.DefaultQuery("rate", "0.95"), 64)
	if err != nil {
		respondError(c, errors.InvalidInput("rate must be a number"))
		return
	}

	cmp, err := s.scenario.Compare(c.Request.Context(), name, rate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// handleCalendar returns the exclusion calendar starting today, or at
// an explicit start date. GET /api/calendar?start=2026-08-24
func (s *Server) handleCalendar(c *gin.Context) {
	start := time.Now()
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, errors.InvalidInput("start must be YYYY-MM-DD"))
			return
		}
		start = parsed
	}
	c.JSON(http.StatusOK, gin.H{"days": s.scenario.Calendar(start)})
}
