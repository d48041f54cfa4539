package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) HomeHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to the Plazza Catalogue API",
	})
}

func (s *Server) getStatsHandler(c *gin.Context) {
	stats, err := s.catalogueService.Stats(c.Request.Context())
	if err != nil {
		s.logger.Errorf("Ошибка при получении статистики каталога: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, stats)
}
