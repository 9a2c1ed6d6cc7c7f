// Package client holds the thin HTTP clients for the external collaborators:
// the Flask model service, Plant.id, and Wikipedia.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

// ModelClient calls the Flask model service with an image and returns its
// verdict verbatim.
type ModelClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewModelClient creates a ModelClient for the given service URL. A nil
// httpClient gets a default with a 30s timeout.
func NewModelClient(baseURL string, httpClient *http.Client) *ModelClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &ModelClient{baseURL: baseURL, httpClient: httpClient}
}

// Identify sends the image at filePath to the model service as a multipart
// form with the given category and original filename, and returns the raw
// JSON response body.
func (c *ModelClient) Identify(ctx context.Context, filePath, filename, category string) (json.RawMessage, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("category", category); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model service request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model service response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	return json.RawMessage(data), nil
}
