package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultPlantIDURL is the Plant.id v2 identification endpoint.
const DefaultPlantIDURL = "https://api.plant.id/v2/identify"

// PlantIDClient calls the Plant.id identification API.
type PlantIDClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// PlantIDSuggestion is one candidate species returned by Plant.id.
type PlantIDSuggestion struct {
	PlantName    string  `json:"plant_name"`
	Probability  float64 `json:"probability"`
	PlantDetails struct {
		WikiDescription struct {
			Value string `json:"value"`
		} `json:"wiki_description"`
	} `json:"plant_details"`
}

type plantIDRequest struct {
	APIKey        string   `json:"api_key"`
	Images        []string `json:"images"`
	Modifiers     []string `json:"modifiers"`
	PlantLanguage string   `json:"plant_language"`
	PlantDetails  []string `json:"plant_details"`
}

type plantIDResponse struct {
	Suggestions []PlantIDSuggestion `json:"suggestions"`
}

// NewPlantIDClient creates a PlantIDClient. An empty baseURL uses the
// public Plant.id endpoint; a nil httpClient gets a default with a 30s
// timeout.
func NewPlantIDClient(baseURL, apiKey string, httpClient *http.Client) *PlantIDClient {
	if baseURL == "" {
		baseURL = DefaultPlantIDURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &PlantIDClient{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// Identify submits a base64-encoded image and returns the candidate
// suggestions, best match first.
func (c *PlantIDClient) Identify(ctx context.Context, imageBase64 string) ([]PlantIDSuggestion, error) {
	payload := plantIDRequest{
		APIKey:        c.apiKey,
		Images:        []string{imageBase64},
		Modifiers:     []string{"crops_fast", "similar_images"},
		PlantLanguage: "en",
		PlantDetails: []string{
			"common_names",
			"url",
			"name_authority",
			"wiki_description",
			"taxonomy",
			"synonyms",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plant.id request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("plant.id returned status %d", resp.StatusCode)
	}

	var parsed plantIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode plant.id response: %w", err)
	}

	return parsed.Suggestions, nil
}
