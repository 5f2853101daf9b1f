package port

import (
	"context"
	"time"

	"chunkstream/internal/core/domain"
)

// ObjectStorage is an interface over the backing store's multipart
// upload primitives (S3-compatible)
type ObjectStorage interface {
	CreateMultipartSession(ctx context.Context, objectKey string, contentType string) (string, error)
	PresignPartUpload(ctx context.Context, sessionID string, objectKey string, partNumber int) (string, *time.Time, error)
	UploadPart(ctx context.Context, sessionID string, objectKey string, partNumber int, data []byte) (string, error)
	ListCommittedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error)
	CompleteMultipartUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (string, error)
	AbortMultipartUpload(ctx context.Context, sessionID string, objectKey string) error
	StatObject(ctx context.Context, objectKey string) (*domain.ObjectStat, error)
	PresignDownload(ctx context.Context, objectKey string) (string, *time.Time, error)
}
