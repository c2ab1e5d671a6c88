package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/utamaduni/catalog"
)

// GET /api/v1/tribes?q=
func (s *Server) searchTribes(c *gin.Context) {
	tribes, err := s.catalog.SearchTribes(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tribes": tribes})
}

// GET /api/v1/tribes/suggest?q=&limit=
func (s *Server) suggestTribes(c *gin.Context) {
	limit := defaultSuggestLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.fail(c, fmt.Errorf("%w: limit must be a positive integer", errBadRequest))
			return
		}
		limit = n
	}

	names, err := s.catalog.SuggestTribes(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": names})
}

// GET /api/v1/tribes/:id
func (s *Server) tribeOverview(c *gin.Context) {
	overview, err := s.catalog.TribeOverview(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newTribeOverviewView(overview))
}

// POST /api/v1/tribes
func (s *Server) submitTribe(c *gin.Context) {
	var sub catalog.TribeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		s.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	tribe, err := s.catalog.SubmitTribe(c.Request.Context(), sub)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.submissions.WithLabelValues("tribe").Inc()
	c.JSON(http.StatusCreated, tribe)
}
