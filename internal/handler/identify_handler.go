package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/service"
)

// IdentifyHandler handles the two identification endpoints: the Flask
// model proxy and the Plant.id analysis.
type IdentifyHandler struct {
	identifyService *service.IdentifyService
	uploadDir       string
}

// NewIdentifyHandler creates a new IdentifyHandler
func NewIdentifyHandler(identifyService *service.IdentifyService, uploadDir string) *IdentifyHandler {
	return &IdentifyHandler{identifyService: identifyService, uploadDir: uploadDir}
}

// Upload handles POST /upload (authenticated): proxies the image to the
// Flask model service and returns its verdict verbatim.
func (h *IdentifyHandler) Upload(c echo.Context) error {
	file, err := saveUpload(c, "image", h.uploadDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read analysis upload")
		return internalError(c, "Failed to analyze image")
	}
	if file == nil {
		return validationError(c, "Image file is required")
	}
	defer file.Cleanup()

	category := c.FormValue("category")
	if category == "" {
		category = "plants"
	}

	result, err := h.identifyService.AnalyzeWithModel(c.Request().Context(), file.Path, file.Filename, category)
	if err != nil {
		return internalError(c, "Failed to analyze image")
	}

	return c.JSONBlob(http.StatusOK, result)
}

// Analyze handles POST /analyze: submits the image to Plant.id and
// returns the distilled top suggestion.
func (h *IdentifyHandler) Analyze(c echo.Context) error {
	file, err := saveUpload(c, "image", h.uploadDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read analysis upload")
		return internalError(c, "Failed to identify plant")
	}
	if file == nil {
		return validationError(c, "Image file is required")
	}
	defer file.Cleanup()

	data, err := os.ReadFile(file.Path)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read temp upload")
		return internalError(c, "Failed to identify plant")
	}

	result, err := h.identifyService.AnalyzeWithPlantID(c.Request().Context(), data, file.Filename)
	switch {
	case errors.Is(err, domain.ErrNoPlantIdentified):
		return c.JSON(http.StatusNotFound, map[string]string{"message": "No plant identified."})
	case errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrInvalidFormat),
		errors.Is(err, service.ErrInvalidImageData):
		return validationError(c, err.Error())
	case err != nil:
		return internalError(c, "Failed to identify plant")
	}

	return c.JSON(http.StatusOK, result)
}
