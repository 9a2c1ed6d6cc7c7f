package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// upload is a multipart file saved to local temp storage. Its lifetime is
// one request: Cleanup must run on every exit path, and it stays safe to
// call after the blob store has already consumed and removed the file.
type upload struct {
	Path     string
	Filename string
}

// Cleanup removes the temp file if it still exists
func (u *upload) Cleanup() {
	if u == nil {
		return
	}
	if err := os.Remove(u.Path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", u.Path).Msg("Failed to remove temp upload")
	}
}

// saveUpload writes the request's file field to a uniquely named temp file
// under dir, keeping the original extension. A request without that field
// returns (nil, nil).
func saveUpload(c echo.Context, field, dir string) (*upload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, uuid.New().String()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, err
	}

	return &upload{Path: path, Filename: header.Filename}, nil
}
