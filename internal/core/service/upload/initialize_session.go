package upload

import (
	"context"
	"fmt"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// InitializeSession validates the upload metadata, derives a
// collision-resistant object key and opens a multipart session at the
// store. Session data is reconstructable from the store plus the returned
// key, so nothing is persisted locally.
func (u *uploadService) InitializeSession(ctx context.Context, fileName string, contentType string, sizeBytes int64, chunkSize int64) (*domain.UploadSession, error) {

	plan, err := u.PlanUpload(fileName, contentType, sizeBytes, chunkSize)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("uploads/%s/%s", uuid.New().String(), fileName)

	sessionID, err := u.storage.CreateMultipartSession(ctx, objectKey, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open session: %w", domain.ErrStore, err)
	}

	return &domain.UploadSession{
		SessionID:     sessionID,
		ObjectKey:     objectKey,
		PartSize:      plan.ChunkSize,
		MinPartNumber: 1,
		MaxPartNumber: plan.PartCount,
	}, nil
}
