package handler

import (
	"net/http"

	"clothing-store/internal/upload"

	"github.com/rs/zerolog"
)

// UploadHandler handles product image uploads.
type UploadHandler struct {
	uploader upload.Uploader
	maxSize  int64
	logger   zerolog.Logger
}

// NewUploadHandler creates a new upload handler. maxSize caps the accepted
// request body in bytes.
func NewUploadHandler(uploader upload.Uploader, maxSize int64, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		maxSize:  maxSize,
		logger:   logger.With().Str("handler", "upload").Logger(),
	}
}

// UploadImage handles POST /api/products/upload-image requests. The image
// arrives as the multipart field "file"; the stored URL comes back in the
// response.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required", h.logger)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, file, "products")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Image uploaded successfully",
		"filename": header.Filename,
		"path":     url,
		"url":      url,
	})
}

// DeleteImage handles DELETE /api/products/image/{filename} requests for
// backends that support removal.
func (h *UploadHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	remover, ok := h.uploader.(upload.Remover)
	if !ok {
		writeError(w, http.StatusNotFound, "image deletion is not supported by this storage backend", h.logger)
		return
	}

	filename := r.PathValue("filename")
	if err := remover.Remove(r.Context(), "products", filename); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Image deleted successfully",
		"filename": filename,
	})
}
