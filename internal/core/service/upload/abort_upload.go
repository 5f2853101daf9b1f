package upload

import (
	"context"
	"fmt"

	"chunkstream/internal/core/domain"
)

// AbortUpload releases the store-side session and its partial storage.
// Aborting an unknown or already-gone session is a no-op: the storage
// adapter swallows the store's not-found answer, so abort is idempotent.
func (u *uploadService) AbortUpload(ctx context.Context, sessionID string, objectKey string) error {
	if err := u.storage.AbortMultipartUpload(ctx, sessionID, objectKey); err != nil {
		return fmt.Errorf("%w: could not abort session: %w", domain.ErrStore, err)
	}

	u.logger.Info("upload aborted", "sessionID", sessionID, "objectKey", objectKey)
	return nil
}
