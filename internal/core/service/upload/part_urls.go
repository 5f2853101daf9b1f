package upload

import (
	"context"
	"fmt"

	"chunkstream/internal/core/domain"
)

// PartUploadURLs issues one time-limited upload URL per part in the
// inclusive [startPart, endPart] range, in ascending part-number order.
// If signing fails for any part the partial result is discarded.
func (u *uploadService) PartUploadURLs(ctx context.Context, sessionID string, objectKey string, startPart int, endPart int) ([]domain.UploadPart, error) {

	if startPart < 1 || endPart < 1 {
		return nil, fmt.Errorf("%w: part numbers must be positive", domain.ErrValidation)
	}
	if endPart < startPart {
		return nil, fmt.Errorf("%w: end part %d before start part %d", domain.ErrValidation, endPart, startPart)
	}
	if count := endPart - startPart + 1; count > u.cfg.MaxPresignBatch {
		return nil, fmt.Errorf("%w: %d parts requested, at most %d per call", domain.ErrValidation, count, u.cfg.MaxPresignBatch)
	}

	parts := make([]domain.UploadPart, 0, endPart-startPart+1)
	for partNumber := startPart; partNumber <= endPart; partNumber++ {
		url, expiresAt, err := u.storage.PresignPartUpload(ctx, sessionID, objectKey, partNumber)
		if err != nil {
			return nil, fmt.Errorf("%w: could not presign part %d: %w", domain.ErrStore, partNumber, err)
		}
		parts = append(parts, domain.UploadPart{
			PartNumber:   partNumber,
			PresignedURL: url,
			ExpiresAt:    expiresAt,
		})
	}

	return parts, nil
}
