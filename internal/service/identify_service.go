package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/client"
	"github.com/natureshield/natureshield-backend/internal/domain"
	"github.com/natureshield/natureshield-backend/internal/invasive"
)

// IdentifyService routes photos to the two identification backends: the
// self-hosted Flask model service and Plant.id.
type IdentifyService struct {
	model   *client.ModelClient
	plantID *client.PlantIDClient
	images  *ImageService
}

// NewIdentifyService creates a new IdentifyService
func NewIdentifyService(model *client.ModelClient, plantID *client.PlantIDClient, images *ImageService) *IdentifyService {
	return &IdentifyService{model: model, plantID: plantID, images: images}
}

// AnalyzeWithModel forwards the photo at filePath to the Flask model
// service and returns its JSON verdict verbatim. The caller owns the temp
// file's lifecycle.
func (s *IdentifyService) AnalyzeWithModel(ctx context.Context, filePath, filename, category string) (json.RawMessage, error) {
	result, err := s.model.Identify(ctx, filePath, filename, category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Model service analysis failed")
		return nil, err
	}
	return result, nil
}

// AnalyzeWithPlantID validates and downscales the photo, submits it to
// Plant.id, and distills the top suggestion. The invasive flag is set when
// the suggestion's wiki description mentions "invasive" or the scientific
// name is on the embedded watch list. Returns domain.ErrNoPlantIdentified
// when Plant.id has no suggestions.
func (s *IdentifyService) AnalyzeWithPlantID(ctx context.Context, data []byte, filename string) (*domain.Identification, error) {
	prepared, err := s.images.PrepareForAnalysis(data, filename)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.plantID.Identify(ctx, base64.StdEncoding.EncodeToString(prepared))
	if err != nil {
		log.Error().Err(err).Msg("Plant.id analysis failed")
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, domain.ErrNoPlantIdentified
	}

	top := suggestions[0]
	wikiDesc := strings.ToLower(top.PlantDetails.WikiDescription.Value)

	return &domain.Identification{
		ScientificName:    top.PlantName,
		ConfidencePercent: fmt.Sprintf("%.2f", top.Probability*100),
		Invasive:          strings.Contains(wikiDesc, "invasive") || invasive.Contains(top.PlantName),
	}, nil
}
