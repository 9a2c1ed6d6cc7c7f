package handler

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/natureshield/natureshield-backend/internal/auth"
	"github.com/natureshield/natureshield-backend/internal/middleware"
)

// setIdentity plants a verified identity on the request context the way
// the auth middleware does after token verification.
func setIdentity(c echo.Context, email, userID string) {
	ctx := context.WithValue(c.Request().Context(), middleware.IdentityKey, &auth.Identity{Email: email, UserID: userID})
	c.SetRequest(c.Request().WithContext(ctx))
}

// newMultipartRequest builds a multipart POST with the given form fields
// and, when fileField is non-empty, one file part.
func newMultipartRequest(t *testing.T, target string, fields map[string]string, fileField, filename string, fileData []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("Failed to write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// testJPEG returns a decodable JPEG photo
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)), nil); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}
