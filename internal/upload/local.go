package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// localUploader implements Uploader by writing files below a base directory
// that the server exposes under /uploads.
type localUploader struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalUploader creates a filesystem-backed image uploader rooted at dir.
func NewLocalUploader(dir string, logger zerolog.Logger) (Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	logger = logger.With().Str("component", "local-uploader").Logger()
	logger.Info().Str("dir", dir).Msg("local uploader initialised")

	return &localUploader{
		dir:    dir,
		logger: logger,
	}, nil
}

// Upload validates the file type, writes the content under a generated
// filename and returns the relative path the router serves it from.
func (u *localUploader) Upload(ctx context.Context, filename string, content io.Reader, folder string) (string, error) {
	ext, err := ValidateExtension(filename)
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(u.dir, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory %s: %w", targetDir, err)
	}

	name := uuid.NewString() + ext
	targetPath := filepath.Join(targetDir, name)

	f, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", targetPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(targetPath)
		return "", fmt.Errorf("failed to write file %s: %w", targetPath, err)
	}

	u.logger.Info().Str("path", targetPath).Msg("image stored locally")

	return "/uploads/" + folder + "/" + name, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (u *localUploader) Remove(ctx context.Context, folder, filename string) error {
	// Reject path traversal in caller-supplied names.
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid filename: %s", filename)
	}

	target := filepath.Join(u.dir, folder, filename)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", target, err)
	}

	u.logger.Info().Str("path", target).Msg("image removed")

	return nil
}
