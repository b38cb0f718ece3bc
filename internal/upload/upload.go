// Package upload stores product images and hands back stable URLs. Two
// backends implement the same interface: AWS S3 for deployments and a local
// directory served under /uploads for everything else.
package upload

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"clothing-store/internal/model"
)

// Uploader stores raw image bytes under a folder namespace and returns a
// retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, folder string) (string, error)
}

// Remover is implemented by backends that can also delete stored images.
type Remover interface {
	Remove(ctx context.Context, folder, filename string) error
}

// allowedExtensions is the fixed set of accepted raster image types.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// contentTypes maps accepted extensions to their MIME types.
var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ValidateExtension checks a filename against the image whitelist and
// returns its lower-cased extension. Rejection happens before any upload
// attempt.
func ValidateExtension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", model.ErrInvalidFileType
	}
	return ext, nil
}
