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

// ProfileHandler handles the per-user profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
	uploadDir      string
}

// NewProfileHandler creates a new ProfileHandler; uploadDir is where
// request-scoped temp files are written.
func NewProfileHandler(profileService *service.ProfileService, uploadDir string) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, uploadDir: uploadDir}
}

// Update handles POST /profile/:userId. The multipart form carries name,
// phone, bio, location, email, optionally existingImage, and optionally an
// image file. The profile document is fully replaced with what was sent.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return validationError(c, "Invalid user id")
	}

	file, err := saveUpload(c, "image", h.uploadDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read profile image upload")
		return internalError(c, "Failed to update profile")
	}
	defer file.Cleanup()

	in := service.UpsertProfileInput{
		UserID:        userID,
		Name:          c.FormValue("name"),
		Phone:         c.FormValue("phone"),
		Bio:           c.FormValue("bio"),
		Location:      c.FormValue("location"),
		Email:         c.FormValue("email"),
		ExistingImage: c.FormValue("existingImage"),
	}
	if file != nil {
		in.ImagePath = file.Path
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Profile upsert failed")
		return internalError(c, "Failed to update profile")
	}

	return c.JSON(http.StatusOK, profile)
}

// Get handles GET /profile/:userId, materializing a default profile on
// the first read for a user.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return validationError(c, "Invalid user id")
	}

	profile, err := h.profileService.GetOrCreateDefault(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Profile read failed")
		return internalError(c, "Server error")
	}

	return c.JSON(http.StatusOK, profile)
}
