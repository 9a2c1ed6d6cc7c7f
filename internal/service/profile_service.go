package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/repository/storage"
	"github.com/natureshield/natureshield-backend/internal/util"
)

// profileImageFolder is the blob-store folder for profile photos.
const profileImageFolder = "profiles"

// ProfileService orchestrates profile writes: optional blob upload, URL
// transform, then a full-replace upsert.
type ProfileService struct {
	profileRepo domain.ProfileRepository
	blobs       storage.BlobStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo domain.ProfileRepository, blobs storage.BlobStore) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, blobs: blobs}
}

// UpsertProfileInput carries the client-sent profile fields. ImagePath is
// the local temp file of a freshly uploaded photo ("" if none was sent);
// ExistingImage is the fallback URL for updates that keep the old photo.
type UpsertProfileInput struct {
	UserID        uuid.UUID
	Name          string
	Phone         string
	Bio           string
	Location      string
	Email         string
	ExistingImage string
	ImagePath     string
}

// Upsert replaces the user's profile with exactly the fields sent. When a
// new photo is attached it is uploaded to the blob store (which consumes
// and deletes the temp file) and its delivery URL gets the square-crop
// transform. Without a new photo, ExistingImage is kept, or the image is
// unset. If the upload succeeds and the repository write fails, the remote
// image stays orphaned; no rollback is attempted.
func (s *ProfileService) Upsert(ctx context.Context, in UpsertProfileInput) (*domain.Profile, error) {
	var image *string
	switch {
	case in.ImagePath != "":
		url, err := s.blobs.UploadFile(ctx, in.ImagePath, profileImageFolder)
		if err != nil {
			log.Error().Err(err).Str("user_id", in.UserID.String()).Msg("Profile image upload failed")
			return nil, err
		}
		transformed := util.TransformImageURL(url, util.ProfileImageTransform)
		image = &transformed
	case in.ExistingImage != "":
		image = &in.ExistingImage
	}

	return s.profileRepo.Upsert(ctx, &domain.Profile{
		UserID:   in.UserID,
		Name:     in.Name,
		Phone:    in.Phone,
		Bio:      in.Bio,
		Location: in.Location,
		Image:    image,
		Email:    in.Email,
	})
}

// GetOrCreateDefault returns the user's profile, materializing and
// persisting an empty default on the first read.
func (s *ProfileService) GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profileRepo.GetOrCreateDefault(ctx, userID)
}
