package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
)

// uploadCatalogueCSVHandler принимает CSV партии каталога (multipart поле "file").
// По умолчанию отвечает JSON-итогом партии; с ?report=csv вместо этого
// отдает skip-отчет как text/csv вложение.
func (s *Server) uploadCatalogueCSVHandler(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		s.logger.Errorf("ошибка получения файла из формы: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("файл 'file' не предоставлен")))
		return
	}
	defer file.Close()

	s.logger.Infof("Загрузка партии каталога: %s (%d байт)", header.Filename, header.Size)

	result, err := s.ingestService.IngestCatalogueCSV(c.Request.Context(), file)
	if err != nil {
		s.respondUploadError(c, err)
		return
	}

	if c.Query("report") == "csv" {
		c.Header("Content-Disposition", `attachment; filename="skipped_rows.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(result.SkippedRowsCSV))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) uploadMetadataCSVHandler(c *gin.Context) {
	s.handleOnboardingUpload(c, s.onboardingService.IngestMetadataCSV)
}

func (s *Server) uploadDistributorCSVHandler(c *gin.Context) {
	s.handleOnboardingUpload(c, s.onboardingService.IngestDistributorCSV)
}

func (s *Server) uploadMappingCSVHandler(c *gin.Context) {
	s.handleOnboardingUpload(c, s.onboardingService.IngestMappingCSV)
}

func (s *Server) handleOnboardingUpload(c *gin.Context, stage func(context.Context, io.Reader) (*api_models.OnboardingResult, error)) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		s.logger.Errorf("ошибка получения файла из формы: %v", err)
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("файл 'file' не предоставлен")))
		return
	}
	defer file.Close()

	s.logger.Infof("Загрузка onboarding-файла: %s (%d байт)", header.Filename, header.Size)

	result, err := stage(c.Request.Context(), file)
	if err != nil {
		s.respondUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) respondUploadError(c *gin.Context, err error) {
	var parseErr *apierrors.ParseError
	var emptyErr *apierrors.EmptyInputError
	var validationErr *apierrors.ValidationError
	switch {
	case errors.As(err, &parseErr), errors.As(err, &emptyErr), errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse(err))
	default:
		s.logger.Errorf("ошибка обработки загрузки: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
	}
}
