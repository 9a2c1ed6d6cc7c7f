package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/natureshield/natureshield-backend/internal/client"
	"github.com/natureshield/natureshield-backend/internal/service"
)

func newIdentifyHandler(t *testing.T, modelURL, plantIDURL string) *IdentifyHandler {
	t.Helper()
	identifyService := service.NewIdentifyService(
		client.NewModelClient(modelURL, nil),
		client.NewPlantIDClient(plantIDURL, "test-key", nil),
		service.NewImageService(),
	)
	return NewIdentifyHandler(identifyService, t.TempDir())
}

func TestUpload_ProxiesModelVerdict(t *testing.T) {
	e := echo.New()

	var gotCategory string
	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("Expected multipart request: %v", err)
		}
		gotCategory = r.FormValue("category")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"class": "Pueraria montana", "confidence": 0.97}`)
	}))
	defer model.Close()

	handler := newIdentifyHandler(t, model.URL, "")

	req := newMultipartRequest(t, "/upload", map[string]string{"category": "vines"}, "image", "leaf.jpg", testJPEG(t, 40, 40))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if gotCategory != "vines" {
		t.Errorf("Expected category 'vines' forwarded, got %s", gotCategory)
	}

	var verdict map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if verdict["class"] != "Pueraria montana" {
		t.Errorf("Expected model verdict passed through, got %v", verdict)
	}
}

func TestUpload_DefaultCategory(t *testing.T) {
	e := echo.New()

	var gotCategory string
	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseMultipartForm(32 << 20)
		gotCategory = r.FormValue("category")
		io.WriteString(w, `{}`)
	}))
	defer model.Close()

	handler := newIdentifyHandler(t, model.URL, "")

	req := newMultipartRequest(t, "/upload", nil, "image", "leaf.jpg", testJPEG(t, 40, 40))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotCategory != "plants" {
		t.Errorf("Expected default category 'plants', got %s", gotCategory)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	e := echo.New()
	handler := newIdentifyHandler(t, "http://model.invalid", "")

	req := newMultipartRequest(t, "/upload", map[string]string{"category": "plants"}, "", "", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpload_ModelServiceDown(t *testing.T) {
	e := echo.New()

	model := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer model.Close()

	handler := newIdentifyHandler(t, model.URL, "")

	req := newMultipartRequest(t, "/upload", nil, "image", "leaf.jpg", testJPEG(t, 40, 40))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Upload(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	var response errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Error != "Failed to analyze image" {
		t.Errorf("Expected error 'Failed to analyze image', got %s", response.Error)
	}
}

func TestAnalyze_Success(t *testing.T) {
	e := echo.New()

	plantID := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"suggestions": [{"plant_name": "Fallopia japonica", "probability": 0.9352, "plant_details": {"wiki_description": {"value": "A highly invasive knotweed."}}}]}`)
	}))
	defer plantID.Close()

	handler := newIdentifyHandler(t, "", plantID.URL)

	req := newMultipartRequest(t, "/analyze", nil, "image", "leaf.jpg", testJPEG(t, 40, 40))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Analyze(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var result struct {
		ScientificName    string `json:"scientific_name"`
		ConfidencePercent string `json:"confidence_percent"`
		Invasive          bool   `json:"invasive"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.ScientificName != "Fallopia japonica" {
		t.Errorf("Expected scientific name 'Fallopia japonica', got %s", result.ScientificName)
	}
	if result.ConfidencePercent != "93.52" {
		t.Errorf("Expected confidence '93.52', got %s", result.ConfidencePercent)
	}
	if !result.Invasive {
		t.Error("Expected invasive flag to be set")
	}
}

func TestAnalyze_NoPlantIdentified(t *testing.T) {
	e := echo.New()

	plantID := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"suggestions": []}`)
	}))
	defer plantID.Close()

	handler := newIdentifyHandler(t, "", plantID.URL)

	req := newMultipartRequest(t, "/analyze", nil, "image", "leaf.jpg", testJPEG(t, 40, 40))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Analyze(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["message"] != "No plant identified." {
		t.Errorf("Expected message 'No plant identified.', got %s", response["message"])
	}
}

func TestAnalyze_InvalidImage(t *testing.T) {
	e := echo.New()
	handler := newIdentifyHandler(t, "", "http://plantid.invalid")

	req := newMultipartRequest(t, "/analyze", nil, "image", "notes.txt", []byte("not an image"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Analyze(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	e := echo.New()
	handler := newIdentifyHandler(t, "", "http://plantid.invalid")

	req := newMultipartRequest(t, "/analyze", nil, "", "", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Analyze(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
