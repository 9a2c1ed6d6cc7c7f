package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultWikipediaBaseURL is the English Wikipedia REST API root.
const DefaultWikipediaBaseURL = "https://en.wikipedia.org"

// WikipediaClient fetches page summaries from the Wikipedia REST API.
type WikipediaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewWikipediaClient creates a WikipediaClient. An empty baseURL uses
// English Wikipedia; a nil httpClient gets a default with a 30s timeout.
func NewWikipediaClient(baseURL string, httpClient *http.Client) *WikipediaClient {
	if baseURL == "" {
		baseURL = DefaultWikipediaBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &WikipediaClient{baseURL: strings.TrimSuffix(baseURL, "/"), httpClient: httpClient}
}

// Summary returns the extract text of the page for the given title.
// Spaces become underscores per Wikipedia's title convention.
func (c *WikipediaClient) Summary(ctx context.Context, title string) (string, error) {
	formatted := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, formatted)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode wikipedia response: %w", err)
	}

	return parsed.Extract, nil
}
