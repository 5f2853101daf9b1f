package upload

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// CompleteUpload finalizes a multipart session. The part list is validated
// and the idempotency guard checked before any remote call. From the
// complete attempt onward, any failure triggers a best-effort abort so a
// failed completion never leaves partial storage behind.
func (u *uploadService) CompleteUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (*domain.FinalizedObject, error) {

	if err := ValidatePartList(parts); err != nil {
		return nil, err
	}

	existing, err := u.objects.FindByKey(ctx, objectKey)
	if err != nil && !errors.Is(err, domain.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyCompleted, objectKey)
	}

	sorted := make([]domain.UploadPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PartNumber < sorted[j].PartNumber
	})

	if _, err := u.storage.CompleteMultipartUpload(ctx, sessionID, objectKey, sorted); err != nil {
		u.cleanup(ctx, sessionID, objectKey)
		return nil, fmt.Errorf("%w: could not complete upload: %w", domain.ErrStore, err)
	}

	stat, err := u.storage.StatObject(ctx, objectKey)
	if err != nil {
		u.cleanup(ctx, sessionID, objectKey)
		return nil, fmt.Errorf("%w: could not stat finalized object: %w", domain.ErrStore, err)
	}

	object := domain.FinalizedObject{
		ID:        uuid.New(),
		FileName:  path.Base(objectKey),
		SizeBytes: stat.SizeBytes,
		ObjectKey: objectKey,
		Status:    domain.ObjectStatusCompleted,
		ETag:      stat.ETag,
		CreatedAt: time.Now(),
	}
	if err := u.objects.Create(ctx, object); err != nil {
		u.cleanup(ctx, sessionID, objectKey)
		return nil, err
	}

	url, expiresAt, err := u.storage.PresignDownload(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: could not presign download: %w", domain.ErrStore, err)
	}
	object.DownloadURL = url
	object.DownloadExpiresAt = expiresAt

	return &object, nil
}

func (u *uploadService) cleanup(ctx context.Context, sessionID string, objectKey string) {
	if err := u.storage.AbortMultipartUpload(ctx, sessionID, objectKey); err != nil {
		u.logger.Error("failed to abort session during cleanup",
			"sessionID", sessionID, "objectKey", objectKey, "error", err)
	}
}
