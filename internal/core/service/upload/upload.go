package upload

import (
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"chunkstream/internal/config"
	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/port"
)

type uploadService struct {
	storage port.ObjectStorage
	objects port.ObjectRepository
	cfg     config.UploadConfig
	logger  *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(storage port.ObjectStorage, objects port.ObjectRepository, cfg config.UploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{storage: storage, objects: objects, cfg: cfg, logger: logger}
}

func (u *uploadService) validateMetadata(fileName string, contentType string, sizeBytes int64) error {
	if strings.TrimSpace(fileName) == "" {
		return fmt.Errorf("%w: file name is required", domain.ErrValidation)
	}

	if sizeBytes <= 0 {
		return fmt.Errorf("%w: file size must be positive", domain.ErrValidation)
	}
	if sizeBytes > u.cfg.MaxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", domain.ErrFileSizeTooBig, sizeBytes, u.cfg.MaxFileSize)
	}

	mimeType := extractMimeType(contentType)
	if mimeType == "" {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedContentType, contentType)
	}
	for _, prefix := range u.cfg.AllowedContentTypes {
		if strings.HasPrefix(mimeType, prefix) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, mimeType)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mimeType
}
