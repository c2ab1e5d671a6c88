package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/admin/stats
func (s *Server) stats(c *gin.Context) {
	stats, err := s.catalog.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// POST /api/v1/admin/tribes
func (s *Server) quickAddTribe(c *gin.Context) {
	var req quickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	tribe, err := s.catalog.AddTribe(c.Request.Context(), req.Name, req.Region)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, tribe)
}

// DELETE /api/v1/admin/tribes/:id
func (s *Server) deleteTribe(c *gin.Context) {
	if err := s.catalog.DeleteTribe(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/v1/admin/assets/:id
func (s *Server) deleteAsset(c *gin.Context) {
	if err := s.catalog.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
