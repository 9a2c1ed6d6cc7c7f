package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/service"
)

// ReportHandler handles the per-user report endpoints
type ReportHandler struct {
	reportService *service.ReportService
	uploadDir     string
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService, uploadDir string) *ReportHandler {
	return &ReportHandler{reportService: reportService, uploadDir: uploadDir}
}

// Create handles POST /report/:userId. Every call files a new report; the
// multipart form carries name, date, optionally existingImage, and
// optionally an image file.
func (h *ReportHandler) Create(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return validationError(c, "Invalid user id")
	}

	file, err := saveUpload(c, "image", h.uploadDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read report image upload")
		return internalError(c, "Failed to save report")
	}
	defer file.Cleanup()

	in := service.CreateReportInput{
		UserID:        userID,
		Name:          c.FormValue("name"),
		Date:          c.FormValue("date"),
		ExistingImage: c.FormValue("existingImage"),
	}
	if file != nil {
		in.ImagePath = file.Path
	}

	report, err := h.reportService.Create(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Report create failed")
		return internalError(c, "Failed to save report")
	}

	return c.JSON(http.StatusOK, report)
}

// List handles GET /report/:userId, returning reports newest date first.
// A user with no reports gets a persisted blank placeholder wrapped in a
// one-element array.
func (h *ReportHandler) List(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return validationError(c, "Invalid user id")
	}

	reports, err := h.reportService.ListOrdered(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Report list failed")
		return internalError(c, "Server error")
	}

	return c.JSON(http.StatusOK, reports)
}
