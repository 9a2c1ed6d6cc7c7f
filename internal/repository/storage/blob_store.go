package storage

import (
	"context"
	"mime"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// uploadRoot is the fixed key prefix marking the upload root. Delivery URLs
// contain it as a path segment, and the URL transform in internal/util
// inserts its descriptor immediately after it.
const uploadRoot = "upload"

// BlobStore uploads a local temporary file to remote image hosting and
// returns the durable public URL. Implementations delete the local file
// when the call finishes, whether it succeeded or not; deletion is
// best-effort and never affects the reported result. Calls are independent
// and safe to run concurrently.
type BlobStore interface {
	UploadFile(ctx context.Context, localPath, folder string) (string, error)
}

// GenerateObjectKey creates a unique object key under the upload root,
// keeping the original file's extension.
func GenerateObjectKey(folder, filename string) string {
	ext := filepath.Ext(filename)
	return path.Join(uploadRoot, folder, uuid.New().String()+ext)
}

// contentTypeForFile guesses a Content-Type from the file extension,
// defaulting to a generic binary type.
func contentTypeForFile(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
