package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/repository/storage"
	"github.com/natureshield/natureshield-backend/internal/util"
)

// reportImageFolder is the blob-store folder for report photos.
const reportImageFolder = "reports"

// ReportService orchestrates report writes the same way ProfileService
// does for profiles, except every write creates a new record.
type ReportService struct {
	reportRepo domain.ReportRepository
	blobs      storage.BlobStore
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo domain.ReportRepository, blobs storage.BlobStore) *ReportService {
	return &ReportService{reportRepo: reportRepo, blobs: blobs}
}

// CreateReportInput carries the client-sent report fields. ImagePath and
// ExistingImage behave as in UpsertProfileInput.
type CreateReportInput struct {
	UserID        uuid.UUID
	Name          string
	Date          string
	ExistingImage string
	ImagePath     string
}

// Create inserts a new report. An attached photo is uploaded and its
// delivery URL gets the wide-crop transform; otherwise ExistingImage is
// kept, or the image stays unset.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (*domain.Report, error) {
	var image *string
	switch {
	case in.ImagePath != "":
		url, err := s.blobs.UploadFile(ctx, in.ImagePath, reportImageFolder)
		if err != nil {
			log.Error().Err(err).Str("user_id", in.UserID.String()).Msg("Report image upload failed")
			return nil, err
		}
		transformed := util.TransformImageURL(url, util.ReportImageTransform)
		image = &transformed
	case in.ExistingImage != "":
		image = &in.ExistingImage
	}

	return s.reportRepo.Create(ctx, &domain.Report{
		UserID: in.UserID,
		Name:   in.Name,
		Date:   in.Date,
		Image:  image,
	})
}

// ListOrdered returns the user's reports newest date first, materializing
// a persisted blank placeholder when the user has none.
func (s *ReportService) ListOrdered(ctx context.Context, userID uuid.UUID) ([]*domain.Report, error) {
	return s.reportRepo.ListOrdered(ctx, userID)
}
