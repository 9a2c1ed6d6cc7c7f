package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/natureshield/natureshield-backend/internal/client"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// WikiService fetches species summaries for the detail screen
type WikiService struct {
	wiki *client.WikipediaClient
}

// NewWikiService creates a new WikiService
func NewWikiService(wiki *client.WikipediaClient) *WikiService {
	return &WikiService{wiki: wiki}
}

// Snippet returns the Wikipedia summary extract for a scientific name.
func (s *WikiService) Snippet(ctx context.Context, scientificName string) (string, error) {
	if scientificName == "" {
		return "", domain.ErrInvalidInput
	}

	snippet, err := s.wiki.Summary(ctx, scientificName)
	if err != nil {
		log.Error().Err(err).Str("name", scientificName).Msg("Wikipedia fetch failed")
		return "", err
	}
	return snippet, nil
}
