package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/natureshield/natureshield-backend/internal/client"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

func plantIDServer(t *testing.T, suggestionsJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"suggestions": %s}`, suggestionsJSON)
	}))
}

func newIdentifyService(srv *httptest.Server) *IdentifyService {
	plantID := client.NewPlantIDClient(srv.URL, "test-key", srv.Client())
	return NewIdentifyService(nil, plantID, NewImageService())
}

func TestAnalyzeWithPlantID_TopSuggestion(t *testing.T) {
	srv := plantIDServer(t, `[
		{"plant_name": "Quercus robur", "probability": 0.93521,
		 "plant_details": {"wiki_description": {"value": "The English oak is a large deciduous tree."}}},
		{"plant_name": "Quercus petraea", "probability": 0.02}
	]`)
	defer srv.Close()

	s := newIdentifyService(srv)
	result, err := s.AnalyzeWithPlantID(context.Background(), encodePNG(t, 32, 32), "leaf.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.ScientificName != "Quercus robur" {
		t.Errorf("Expected top suggestion, got %s", result.ScientificName)
	}
	if result.ConfidencePercent != "93.52" {
		t.Errorf("Expected two-decimal confidence '93.52', got %s", result.ConfidencePercent)
	}
	if result.Invasive {
		t.Error("Did not expect English oak to be flagged invasive")
	}
}

func TestAnalyzeWithPlantID_InvasiveFromWikiDescription(t *testing.T) {
	srv := plantIDServer(t, `[
		{"plant_name": "Some unlisted plant", "probability": 0.8,
		 "plant_details": {"wiki_description": {"value": "An Invasive species in many regions."}}}
	]`)
	defer srv.Close()

	s := newIdentifyService(srv)
	result, err := s.AnalyzeWithPlantID(context.Background(), encodePNG(t, 32, 32), "leaf.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.Invasive {
		t.Error("Expected invasive flag from wiki description")
	}
}

func TestAnalyzeWithPlantID_InvasiveFromWatchList(t *testing.T) {
	srv := plantIDServer(t, `[
		{"plant_name": "Pueraria montana", "probability": 0.9,
		 "plant_details": {"wiki_description": {"value": "A climbing vine."}}}
	]`)
	defer srv.Close()

	s := newIdentifyService(srv)
	result, err := s.AnalyzeWithPlantID(context.Background(), encodePNG(t, 32, 32), "leaf.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.Invasive {
		t.Error("Expected invasive flag from the watch list")
	}
}

func TestAnalyzeWithPlantID_NoSuggestions(t *testing.T) {
	srv := plantIDServer(t, `[]`)
	defer srv.Close()

	s := newIdentifyService(srv)
	_, err := s.AnalyzeWithPlantID(context.Background(), encodePNG(t, 32, 32), "leaf.png")
	if !errors.Is(err, domain.ErrNoPlantIdentified) {
		t.Errorf("Expected ErrNoPlantIdentified, got %v", err)
	}
}

func TestAnalyzeWithPlantID_InvalidImage(t *testing.T) {
	srv := plantIDServer(t, `[]`)
	defer srv.Close()

	s := newIdentifyService(srv)
	_, err := s.AnalyzeWithPlantID(context.Background(), []byte("not an image"), "leaf.png")
	if !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("Expected ErrInvalidImageData, got %v", err)
	}
}
