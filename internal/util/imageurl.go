package util

import "strings"

// Delivery transform presets. Each descriptor is inserted into an image URL
// immediately after the upload-root marker so the CDN serves a cropped,
// auto-quality rendition instead of the original bytes.
const (
	// ProfileImageTransform is the square-crop preset for profile photos.
	ProfileImageTransform = "w_400,h_400,c_fill,q_auto,f_auto"
	// ReportImageTransform is the wide-crop preset for report photos.
	ReportImageTransform = "w_600,h_300,c_fill,q_auto,f_auto"
)

// uploadMarker is the path segment marking the upload root in delivery URLs.
const uploadMarker = "/upload/"

// TransformImageURL inserts the transform descriptor immediately after the
// upload-root marker. It is deterministic and idempotent for a given
// descriptor: applying the same preset to an already-transformed URL is a
// no-op. URLs without the marker are returned unchanged.
func TransformImageURL(rawURL, transform string) string {
	if rawURL == "" || transform == "" {
		return rawURL
	}
	if strings.Contains(rawURL, uploadMarker+transform+"/") {
		return rawURL
	}
	if !strings.Contains(rawURL, uploadMarker) {
		return rawURL
	}
	return strings.Replace(rawURL, uploadMarker, uploadMarker+transform+"/", 1)
}
