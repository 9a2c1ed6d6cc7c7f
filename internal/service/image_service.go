package service

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// MaxImageSize bounds a submitted photo at 10MB.
	MaxImageSize = 10 * 1024 * 1024
	// MaxAnalysisWidth is the widest image forwarded to the
	// identification APIs; larger photos are downscaled first.
	MaxAnalysisWidth = 1280
	// JPEGQuality is the re-encode quality for downscaled photos.
	JPEGQuality = 85
)

var (
	ErrImageTooLarge    = errors.New("file too large. Maximum size is 10MB")
	ErrInvalidFormat    = errors.New("invalid format. Supported: JPEG, PNG")
	ErrInvalidImageData = errors.New("invalid image data")
)

// allowedExtensions are the photo formats the mobile clients produce.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageService validates and normalizes uploaded photos before they are
// sent to the identification services.
type ImageService struct{}

// NewImageService creates a new ImageService
func NewImageService() *ImageService {
	return &ImageService{}
}

// PrepareForAnalysis validates the photo and returns JPEG bytes no wider
// than MaxAnalysisWidth. Already-small photos are still re-encoded so the
// upstream APIs always receive JPEG.
func (s *ImageService) PrepareForAnalysis(data []byte, filename string) ([]byte, error) {
	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > MaxAnalysisWidth {
		img = imaging.Resize(img, MaxAnalysisWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, ErrInvalidImageData
	}
	return buf.Bytes(), nil
}

// validateAndDecode checks size and extension and decodes the image
func (s *ImageService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrInvalidFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImageData
	}
	return img, nil
}
