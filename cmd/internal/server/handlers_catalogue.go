package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
)

func (s *Server) getProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	product, err := s.catalogueService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) updateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req api_models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	product, err := s.catalogueService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	if err := s.catalogueService.DeleteProduct(c.Request.Context(), productID); err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted", "product_id": productID})
}

// respondServiceError переводит типизированные ошибки сервисов в HTTP-статусы.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	var notFoundErr *apierrors.NotFoundError
	var validationErr *apierrors.ValidationError
	switch {
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, errorResponse(err))
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse(err))
	default:
		s.logger.Errorf("внутренняя ошибка сервиса: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
	}
}
