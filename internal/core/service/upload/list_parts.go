package upload

import (
	"context"

	"chunkstream/internal/core/domain"
)

// ListUploadedParts returns the parts the store has already committed for
// the session
func (u *uploadService) ListUploadedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error) {
	return u.storage.ListCommittedParts(ctx, sessionID, objectKey)
}
